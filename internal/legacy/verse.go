package legacy

import (
	"regexp"
	"strings"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/segment"
	"vedaimport/internal/textproc/blocks"
)

var (
	verseHeading = regexp.MustCompile(`(?i)(?:Вірш[иі]?|ВІРШ[ИІ]?)\s*(\d+(?:\s*[-–—]\s*\d+)?)`)
	anyRange     = regexp.MustCompile(`\d+(?:\s*[-–—]\s*\d+)?`)
	rangeSpacing = regexp.MustCompile(`\s*[-–—]\s*`)
)

// Tags carrying running heads, logos and the Devanagari duplicate of the
// transliteration.
var ignoredTags = map[string]bool{
	"rh-verso": true, "rh-recto": true, "logo": true, "text-rh": true, "special": true,
	"d-uvaca": true, "d-anustubh": true, "d-tristubh": true,
}

func tagIn(tag string, set ...string) bool {
	for _, s := range set {
		if tag == s {
			return true
		}
	}
	return false
}

// verseBuilder accumulates the blocks of one verse.
type verseBuilder struct {
	verse      scripture.Verse
	commentary []string
}

func (b *verseBuilder) addCommentary(html string) {
	if html != "" {
		b.commentary = append(b.commentary, html)
	}
}

func (b *verseBuilder) build() scripture.Verse {
	v := b.verse
	v.Commentary = blocks.JoinParagraphs(b.commentary...)
	return v
}

// ParseVerseChapter reads a chapter of a verse book. The chapter number is
// taken from the ordinal heading and is 0 when none is present.
func ParseVerseChapter(text string) scripture.Chapter {
	var (
		number  int
		title   string
		verses  []scripture.Verse
		current *verseBuilder
	)
	flush := func() {
		if current != nil {
			verses = append(verses, current.build())
			current = nil
		}
	}

	for _, b := range ScanBlocks(text) {
		if ignoredTags[b.Tag] || b.Content == "" {
			continue
		}
		switch {
		case b.Tag == "h1-number":
			number, _ = segment.ParseChapterNumber(b.Content)
		case b.Tag == "h1":
			title = blocks.Prose(b.Content, false)
		case tagIn(b.Tag, "h2-number", "h2-number-2", "ch"):
			flush()
			current = &verseBuilder{verse: scripture.Verse{Number: scripture.NumberedVerse(verseNumber(b.Content))}}
		case current == nil:
			// Blocks before the first verse heading have no home.
		case tagIn(b.Tag, "v-uvaca", "v-anustubh", "v-tristubh"):
			current.verse.Transliteration = joinNonEmpty("\n", current.verse.Transliteration, blocks.Transliteration(b.Content))
		case b.Tag == "eqs":
			current.verse.Synonyms = joinNonEmpty(" ", current.verse.Synonyms, blocks.Synonyms(b.Content))
		case b.Tag == "translation":
			current.verse.Translation = blocks.Prose(b.Content, false)
		case b.Tag == "p-indent":
			if p := blocks.Prose(b.Content, true); p != "" {
				current.addCommentary(blocks.FirstParagraph(b.Content))
			}
		case tagIn(b.Tag, "p", "p0", "p1"):
			current.addCommentary(blocks.Paragraph(blocks.Prose(b.Content, true), "purport"))
		case tagIn(b.Tag, "ql", "q", "q-p"):
			if q := blocks.Quote(b.Content); q != "" {
				current.addCommentary(`<blockquote class="verse-quote"><p>` + q + `</p></blockquote>`)
			}
		case tagIn(b.Tag, "p-anustubh", "p-uvaca", "p-tristubh", "p-gayatri", "p-indravajra", "p-sakkari"):
			if t := blocks.Transliteration(b.Content); t != "" {
				current.addCommentary(`<blockquote class="verse-quote verse-translit">` + t + `</blockquote>`)
			}
		case b.Tag == "p-outro":
			current.addCommentary(`<p class="purport-outro"><em>` + blocks.Prose(b.Content, true) + `</em></p>`)
		}
	}
	flush()

	return scripture.NewVerseChapter(number, title, verses)
}

// verseNumber reads "Вірш 12" or "ВІРШІ 16-18" headings, falling back to
// the first number in the text.
func verseNumber(text string) string {
	if m := verseHeading.FindStringSubmatch(text); m != nil {
		return rangeSpacing.ReplaceAllString(m[1], "-")
	}
	if m := anyRange.FindString(text); m != "" {
		return rangeSpacing.ReplaceAllString(m, "-")
	}
	return strings.TrimSpace(text)
}

func joinNonEmpty(sep, a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + sep + b
}

// ParseChapter reads a Ventura chapter file whose book is not known in
// advance. Files with verse headings are parsed as verse chapters, anything
// else as prose. fallback numbers chapters that carry no ordinal heading.
func ParseChapter(text string, fallback int) scripture.Chapter {
	for _, b := range ScanBlocks(text) {
		if tagIn(b.Tag, "h2-number", "h2-number-2", "ch") {
			ch := ParseVerseChapter(text)
			if ch.Number == 0 {
				ch.Number = fallback
			}
			if ch.Title == "" {
				ch.Title = segment.DefaultChapterTitle(ch.Number)
			}
			return ch
		}
	}
	return ParseProseChapter(text, fallback)
}
