// Package blocks formats the typed blocks of a verse (transliteration,
// word-for-word synonyms, prose, quoted verse) on top of the markup resolver.
package blocks

import (
	"regexp"
	"strings"

	"vedaimport/internal/textproc/lines"
	"vedaimport/internal/textproc/markup"
)

var (
	anyWhitespace = regexp.MustCompile(`\s+`)

	lineBreakSpace = regexp.MustCompile(`<_R><_>`)
	lineBreak      = regexp.MustCompile(`<_?R>`)
	spaceMarker    = regexp.MustCompile(`<_>`)

	// <MI><_dt>term<_/dt><D> – <_dd>meaning<_/dd>; the term may hold nested italics.
	emphasizedPair = regexp.MustCompile(`<MI><_dt>(.*?)<_/dt></?D>\s*[-–—]?\s*<_dd>([^<]*)<_/dd>`)
	plainPair      = regexp.MustCompile(`<_dt>([^<]*)<_/dt>\s*[-–—]?\s*<_dd>([^<]*)<_/dd>`)
	numberingOnly  = regexp.MustCompile(`<N\|?>|<_N>`)
	paragraphSplit = regexp.MustCompile(`\n{2,}`)
)

func singleLine(text string) string {
	return strings.ReplaceAll(markup.JoinContinuations(text), "\n", " ")
}

func squash(text string) string {
	return strings.TrimSpace(anyWhitespace.ReplaceAllString(text, " "))
}

// Transliteration keeps one output line per pāda and never emits HTML.
func Transliteration(text string) string {
	result := markup.JoinContinuations(text)
	result = lineBreakSpace.ReplaceAllString(result, "\n")
	result = lineBreak.ReplaceAllString(result, "\n")
	result = spaceMarker.ReplaceAllString(result, " ")
	result = markup.Resolve(result, false)
	return strings.Join(lines.TrimAll(lines.Split(result)), "\n")
}

// Synonyms rebuilds the word-for-word block as "<em>term</em> — meaning"
// pairs on a single line.
func Synonyms(text string) string {
	result := singleLine(text)
	result = numberingOnly.ReplaceAllString(result, "")
	result = emphasizedPair.ReplaceAllString(result, "<em>$1</em> — $2")
	result = plainPair.ReplaceAllString(result, "<em>$1</em> — $2")
	result = markup.Resolve(result, true)
	result = squash(result)
	result = strings.ReplaceAll(result, " – ", " — ")
	result = strings.ReplaceAll(result, " - ", " — ")
	return result
}

// Prose joins the block into one line and resolves markup.
func Prose(text string, keepHTML bool) string {
	return squash(markup.Resolve(singleLine(text), keepHTML))
}

// Quote formats a verse quoted inside commentary: lines joined by <br>,
// stanzas separated by paragraph breaks, italics always kept.
func Quote(text string) string {
	result := markup.JoinContinuations(text)
	result = lineBreakSpace.ReplaceAllString(result, "\n")
	result = lineBreak.ReplaceAllString(result, "\n")
	result = spaceMarker.ReplaceAllString(result, " ")
	result = markup.Resolve(result, true)

	var stanzas []string
	for _, para := range paragraphSplit.Split(result, -1) {
		if ls := lines.TrimAll(lines.Split(para)); len(ls) > 0 {
			stanzas = append(stanzas, strings.Join(ls, "<br>\n"))
		}
	}
	return strings.Join(stanzas, "</p>\n<p>")
}

// FirstParagraph formats the opening commentary paragraph with a drop cap
// on its first visible letter.
func FirstParagraph(text string) string {
	result := Prose(text, true)

	var leading strings.Builder
	for i := 0; i < len(result); {
		if result[i] == '<' {
			end := strings.IndexByte(result[i:], '>')
			if end < 0 {
				break
			}
			leading.WriteString(result[i : i+end+1])
			i += end + 1
			continue
		}
		first, rest := splitFirstRune(result[i:])
		return `<p class="purport first">` + leading.String() +
			`<span class="drop-cap">` + first + `</span>` + rest + `</p>`
	}
	return `<p class="purport first">` + result + `</p>`
}

func splitFirstRune(s string) (string, string) {
	for i := range s {
		if i > 0 {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// Paragraph wraps already formatted HTML in a <p>, with an optional class.
func Paragraph(html, class string) string {
	if html == "" {
		return ""
	}
	if class == "" {
		return "<p>" + html + "</p>"
	}
	return `<p class="` + class + `">` + html + `</p>`
}

// JoinParagraphs joins non-empty HTML blocks with a blank line.
func JoinParagraphs(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}
