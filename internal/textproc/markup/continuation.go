package markup

import "strings"

// Line continuation markers written by the typesetting export.
const (
	// HyphenJoin ends a line that was broken inside a word; a trailing
	// print hyphen before it is dropped.
	HyphenJoin = "<->"
	// MarkedHyphenJoin is a hyphen fused with the join marker; both go.
	MarkedHyphenJoin = "-<&>"
	// Join concatenates the next line as is.
	Join = "<&>"
)

// JoinContinuations concatenates lines that end in a continuation marker
// with the line that follows them.
func JoinContinuations(text string) string {
	if !strings.Contains(text, HyphenJoin) && !strings.Contains(text, Join) {
		return text
	}

	var (
		out    []string
		buffer strings.Builder
	)
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimRight(line, " \t\r")
		switch {
		case strings.HasSuffix(stripped, HyphenJoin):
			l := strings.TrimSuffix(stripped, HyphenJoin)
			buffer.WriteString(strings.TrimSuffix(l, "-"))
		case strings.HasSuffix(stripped, MarkedHyphenJoin):
			buffer.WriteString(strings.TrimSuffix(stripped, MarkedHyphenJoin))
		case strings.HasSuffix(stripped, Join):
			buffer.WriteString(strings.TrimSuffix(stripped, Join))
		default:
			buffer.WriteString(line)
			out = append(out, buffer.String())
			buffer.Reset()
		}
	}
	if buffer.Len() > 0 {
		out = append(out, buffer.String())
	}
	return strings.Join(out, "\n")
}
