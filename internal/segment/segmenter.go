// Package segment splits a flat document into chapters and verses using
// the header patterns of an import template.
//
// Segmentation never fails: a document that matches nothing still yields
// one chapter, a chapter without verses is kept as free text and a verse
// whose number cannot be read is dropped. Diagnostics go to the injected
// logger.
package segment

import (
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/textproc/lines"
	"vedaimport/internal/textproc/markup"
)

// Segmenter holds only a logger and is safe for concurrent use.
type Segmenter struct {
	logger *slog.Logger
}

// New returns a Segmenter. A nil logger discards diagnostics.
func New(logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Segmenter{logger: logger}
}

// DefaultChapterTitle is used when no title line follows a chapter heading.
func DefaultChapterTitle(n int) string {
	return "Глава " + strconv.Itoa(n)
}

// SplitChapters segments text into chapters in document order.
func (s *Segmenter) SplitChapters(text string, tpl *Template) []scripture.Chapter {
	matches := nonEmptyMatches(tpl.chapter, text)
	s.logger.Debug("chapter markers",
		"template", tpl.Name,
		"markers", len(matches),
		"text_length", len(text),
	)

	if len(matches) == 0 {
		verses := s.SplitVerses(text, tpl)
		if len(verses) == 0 {
			s.logger.Debug("no chapter or verse markers, keeping document as text")
			return []scripture.Chapter{scripture.NewTextChapter(1, DefaultChapterTitle(1), strings.TrimSpace(text))}
		}
		return []scripture.Chapter{scripture.NewVerseChapter(1, DefaultChapterTitle(1), verses)}
	}

	chapters := make([]scripture.Chapter, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		span := text[m[0]:end]
		heading := text[m[0]:m[1]]

		if fm, ok := LookupFrontMatter(heading); ok {
			s.logger.Debug("front matter chapter", "number", fm.Number, "title", fm.Title)
			chapters = append(chapters, scripture.NewTextChapter(fm.Number, fm.Title, strings.TrimSpace(span)))
			continue
		}

		number := chapterNumber(text, m, i)
		title := s.chapterTitle(span, number, tpl)

		verses := s.SplitVerses(span, tpl)
		if len(verses) == 0 {
			s.logger.Debug("chapter without verses kept as text", "number", number, "title", title)
			chapters = append(chapters, scripture.NewTextChapter(number, title, strings.TrimSpace(span)))
			continue
		}

		s.logger.Debug("chapter parsed", "number", number, "title", title, "verses", len(verses))
		chapters = append(chapters, scripture.NewVerseChapter(number, title, verses))
	}
	return chapters
}

// chapterNumber reads the captured numeral of a chapter match, falling back
// to the 1-based position of the match.
func chapterNumber(text string, m []int, index int) int {
	raw := text[m[0]:m[1]]
	if len(m) >= 4 && m[2] >= 0 {
		raw = text[m[2]:m[3]]
	}
	if n, ok := ParseChapterNumber(raw); ok {
		return n
	}
	return index + 1
}

var sameLineTitle = regexp.MustCompile(`^[^:\n]*:\s*(\S[^\n]*)$`)

// chapterTitle looks for a title on the heading line after a colon, then on
// the next non-blank line if it starts with an upper-case letter.
func (s *Segmenter) chapterTitle(span string, number int, tpl *Template) string {
	spanLines := lines.TrimAll(lines.Split(span))
	if len(spanLines) == 0 {
		return DefaultChapterTitle(number)
	}

	title, _, ok := FirstSuccess(
		Strategy[string]{Name: "same line", Try: func() (string, bool) {
			m := sameLineTitle.FindStringSubmatch(spanLines[0])
			if m == nil {
				return "", false
			}
			return m[1], true
		}},
		Strategy[string]{Name: "next line", Try: func() (string, bool) {
			if len(spanLines) < 2 {
				return "", false
			}
			next := spanLines[1]
			first, _ := utf8.DecodeRuneInString(next)
			if !unicode.IsUpper(first) || tpl.verseLine(next) || tpl.headerLine(next) {
				return "", false
			}
			return next, true
		}},
	)
	if ok {
		if t := markup.Resolve(title, false); t != "" {
			return t
		}
	}
	return DefaultChapterTitle(number)
}

// nonEmptyMatches returns all submatch index slices of re in text, skipping
// zero-width matches.
func nonEmptyMatches(re *regexp.Regexp, text string) [][]int {
	if re == nil {
		return nil
	}
	all := re.FindAllStringSubmatchIndex(text, -1)
	out := all[:0]
	for _, m := range all {
		if m[1] > m[0] {
			out = append(out, m)
		}
	}
	return out
}
