package segment

import (
	"regexp"
	"strings"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/textproc/blocks"
	"vedaimport/internal/textproc/lines"
	"vedaimport/internal/textproc/script"
)

var (
	untitledKeyword = regexp.MustCompile(`(?i)ЗВЕРНЕННЯ|UNTITLED`)
	labelPrefix     = regexp.MustCompile(`(?i)^\s*(?:ВІРШ[ИІ]?|ТЕКСТ[И]?|VERSES?|TEXTS?|МАНТРА|MANTRA)\s*`)

	// Lines starting with a section label never belong to a transliteration.
	sectionLabel = regexp.MustCompile(`(?i)^\s*(?:ВІРШ[ИІ]?|ТЕКСТ[И]?|МАНТР[АИ]|ПОСЛІВНИЙ\s+ПЕРЕКЛАД|ПЕРЕКЛАД|ПОЯСНЕННЯ|КОМЕНТАР|VERSES?|TEXTS?|MANTRAS?|SYNONYMS|TRANSLATION|PURPORT|COMMENTARY)(?:[\s:.\d]|$)`)
)

// SplitVerses segments one chapter span into verses. The template's verse
// pattern is tried as written, then without its line anchor, then as the
// legacy keyword pattern; the first that matches anything wins.
func (s *Segmenter) SplitVerses(text string, tpl *Template) []scripture.Verse {
	run := func(re *regexp.Regexp) func() ([][]int, bool) {
		return func() ([][]int, bool) {
			m := nonEmptyMatches(re, text)
			return m, len(m) > 0
		}
	}
	chain := []Strategy[[][]int]{{Name: "template", Try: run(tpl.verse)}}
	if tpl.verseLoose != nil {
		chain = append(chain, Strategy[[][]int]{Name: "unanchored", Try: run(tpl.verseLoose)})
	}
	chain = append(chain, Strategy[[][]int]{Name: "legacy keywords", Try: run(legacyVersePattern)})

	matches, strategy, ok := FirstSuccess(chain...)
	if !ok {
		s.logger.Debug("no verse markers", "template", tpl.Name)
		return nil
	}
	s.logger.Debug("verse markers", "strategy", strategy, "markers", len(matches))

	verses := make([]scripture.Verse, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		number := verseNumber(text, m)
		if number.IsZero() {
			s.logger.Warn("dropping verse without number",
				"index", i,
				"marker", strings.TrimSpace(text[m[0]:m[1]]),
			)
			continue
		}
		verses = append(verses, ParseVerse(number, text[m[0]:end], tpl))
	}
	return verses
}

// verseNumber reads the verse number of a verse marker match.
func verseNumber(text string, m []int) scripture.VerseNumber {
	whole := text[m[0]:m[1]]
	if untitledKeyword.MatchString(whole) {
		return scripture.UntitledVerse()
	}

	group := func(n int) (string, bool) {
		if len(m) < 2*n+2 || m[2*n] < 0 {
			return "", false
		}
		return text[m[2*n]:m[2*n+1]], true
	}

	if g, ok := group(1); ok && strings.TrimSpace(g) != "" {
		return scripture.NumberedVerse(NormalizeVerseNumber(g))
	}
	if _, ok := group(2); ok {
		return scripture.SpecialVerse()
	}
	rest := labelPrefix.ReplaceAllString(whole, "")
	return scripture.NumberedVerse(NormalizeVerseNumber(rest))
}

// ParseVerse extracts the five text fields from one verse span. Line 0 is
// the verse heading. Missing headers leave their field empty.
func ParseVerse(number scripture.VerseNumber, span string, tpl *Template) scripture.Verse {
	v := scripture.Verse{Number: number}
	content := lines.NonBlank(lines.Split(span))

	stop := func(l string) bool { return tpl.headerLine(l) }

	sc := lines.NewScanner(content)
	sc.Seek(1)
	translitStart := 1
	if sc.SkipUntil(func(l string) bool { return stop(l) || script.HasIndic(l) }) {
		if line, _ := sc.Peek(); !stop(line) {
			sanskrit := sc.TakeWhile(func(l string) bool { return script.HasIndic(l) && !stop(l) })
			v.Sanskrit = strings.Join(lines.TrimAll(sanskrit), "\n")
			translitStart = sc.Pos()
		}
	}

	sc.Seek(translitStart)
	var translit []string
	for _, l := range sc.TakeWhile(func(l string) bool { return !stop(l) }) {
		if !sectionLabel.MatchString(l) {
			translit = append(translit, l)
		}
	}
	if len(translit) > 0 {
		v.Transliteration = blocks.Transliteration(strings.Join(translit, "\n"))
	}

	bodyStart := len(span)
	if i := strings.IndexByte(span, '\n'); i >= 0 {
		bodyStart = i + 1
	}

	v.Synonyms = blocks.Synonyms(section(span, bodyStart, tpl.synonyms, tpl.translation, tpl.commentary))
	v.Translation = blocks.Prose(section(span, bodyStart, tpl.translation, tpl.commentary), false)
	v.Commentary = blocks.Prose(section(span, bodyStart, tpl.commentary), true)
	return v
}

// section returns the text after the first match of h, up to the nearest
// following match of any of the closing headers or the end of span.
func section(span string, from int, h header, closers ...header) string {
	_, start, ok := h.find(span, from)
	if !ok {
		return ""
	}
	end := len(span)
	for _, c := range closers {
		if cs, _, ok := c.find(span, start); ok && cs < end {
			end = cs
		}
	}
	return strings.TrimSpace(span[start:end])
}
