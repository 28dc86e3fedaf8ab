// Package markup resolves the inline control tags of legacy typesetting
// exports into plain text or a small HTML subset.
package markup

import (
	"regexp"
	"strings"

	"vedaimport/internal/textproc/pua"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

func apply(text string, rules []rule) string {
	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}

var structural = []rule{
	{regexp.MustCompile(`<->\s*`), ""},
	{regexp.MustCompile(`<&>\s*`), ""},
	{regexp.MustCompile(`<=>\s*`), ""},
	{regexp.MustCompile(`<_?R>`), "\n"},
	{regexp.MustCompile(`<N\|?>`), ""},
	{regexp.MustCompile(`<S>`), " "},
	{regexp.MustCompile(`<_>`), " "},
	{regexp.MustCompile(`<_oneletter>([^<]*)<_N>`), "$1 "},
}

var emphasisHTML = []rule{
	{regexp.MustCompile(`<BI>([^<]*)</?D>`), "<strong><em>$1</em></strong>"},
	{regexp.MustCompile(`<B>([^<]*)</?D>`), "<strong>$1</strong>"},
	{regexp.MustCompile(`<B>`), "<strong>"},
	{regexp.MustCompile(`<MI>([^<]*)</?D>`), "<em>$1</em>"},
	{regexp.MustCompile(`<MI>`), "<em>"},
	{regexp.MustCompile(`</?D>`), "</em>"},
	{regexp.MustCompile(`</em>\s*<em>([,.;:])`), "$1"},
	{regexp.MustCompile(`</strong>\s*<strong>([,.;:])`), "$1"},
	{regexp.MustCompile(`<em></em>`), ""},
	{regexp.MustCompile(`<strong></strong>`), ""},
	{regexp.MustCompile(`</em>\s*<em>`), " "},
	{regexp.MustCompile(`</strong>\s*<strong>`), " "},
	{regexp.MustCompile(`\s+</em>`), "</em>"},
	{regexp.MustCompile(`\s+</strong>`), "</strong>"},
	{regexp.MustCompile(`<em></em>`), ""},
	{regexp.MustCompile(`<strong></strong>`), ""},
}

var emphasisPlain = []rule{
	{regexp.MustCompile(`<BI>([^<]*)</?D>`), "$1"},
	{regexp.MustCompile(`<B>([^<]*)</?D>`), "$1"},
	{regexp.MustCompile(`<B>`), ""},
	{regexp.MustCompile(`<MI>([^<]*)</?D>`), "$1"},
	{regexp.MustCompile(`<MI>`), ""},
	{regexp.MustCompile(`</?D>`), ""},
}

var definitions = []rule{
	{regexp.MustCompile(`<_qm>`), ""},
	{regexp.MustCompile(`</_qm>`), ""},
	{regexp.MustCompile(`<_dt>([^<]*)<_/dt>`), "$1"},
	{regexp.MustCompile(`<_dt>|<_/dt>`), ""},
	{regexp.MustCompile(`<_dd>|<_/dd>`), ""},
	{regexp.MustCompile(`<_slash>/<_/slash>`), "/"},
	{regexp.MustCompile(`<mon>[^<]*</mon>`), ""},
}

var (
	bookTitle = regexp.MustCompile(`<_bt>([^<]*)<_/bt>`)

	residualVentura = regexp.MustCompile(`<_[^>]*>`)
	residualUpper   = regexp.MustCompile(`</?[A-Z][^>]*>`)
	residualAny     = regexp.MustCompile(`<[^>]*>`)

	horizontalSpace = regexp.MustCompile(`[ \t]+`)
	blankLines      = regexp.MustCompile(`\n\s*\n`)
)

// Resolve converts the inline tags of text. With keepHTML the emphasis tags
// become <strong>/<em> and lowercase HTML already present is kept; without
// it every tag is stripped. PUA glyphs are decoded once structural tags are
// gone, and whitespace is normalized last.
func Resolve(text string, keepHTML bool) string {
	result := JoinContinuations(text)
	result = strings.ReplaceAll(result, "<u003C>", "<")
	result = apply(result, structural)

	if keepHTML {
		result = apply(result, emphasisHTML)
	} else {
		result = apply(result, emphasisPlain)
	}

	result = bookTitle.ReplaceAllStringFunc(result, func(m string) string {
		title := formatBookTitle(bookTitle.FindStringSubmatch(m)[1])
		if keepHTML {
			return "<strong>" + title + "</strong>"
		}
		return title
	})

	result = apply(result, definitions)
	result = pua.Decode(result)

	if keepHTML {
		result = residualVentura.ReplaceAllString(result, "")
		result = residualUpper.ReplaceAllString(result, "")
	} else {
		result = residualAny.ReplaceAllString(result, "")
	}

	return NormalizeWhitespace(result)
}

// formatBookTitle wraps a title in guillemets exactly once.
func formatBookTitle(raw string) string {
	t := strings.TrimSpace(raw)
	t = strings.TrimLeft(t, "«")
	t = strings.TrimRight(t, "»")
	return "«" + t + "»"
}

// NormalizeWhitespace collapses horizontal whitespace runs to one space and
// blank-line runs to a single blank line, then trims the result.
func NormalizeWhitespace(text string) string {
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
