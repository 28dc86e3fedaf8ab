package segment

import (
	"fmt"
	"regexp"

	"vedaimport/internal/domain/models/scripture"
)

// legacyVersePattern matches the two historical verse keywords directly and
// is the last resort of the verse cascade.
var legacyVersePattern = regexp.MustCompile(`(?im)(?:ВІРШ[ИІ]?|ТЕКСТ[И]?)\s+(\d+(?:\s*[-–—]\s*\d+)?)`)

// header locates a section header (synonyms, translation, commentary).
// Both variants are nil when the template leaves the pattern empty.
type header struct {
	anchored   *regexp.Regexp
	unanchored *regexp.Regexp
}

func compileHeader(p scripture.Pattern) (header, error) {
	if p.IsEmpty() {
		return header{}, nil
	}
	anchored, err := p.CompileAnchored()
	if err != nil {
		return header{}, err
	}
	unanchored, err := p.CompileUnanchored()
	if err != nil {
		return header{}, err
	}
	return header{anchored: anchored, unanchored: unanchored}, nil
}

// find returns the bounds of the first header match at or after from,
// trying the anchored variant before the unanchored one.
func (h header) find(text string, from int) (start, end int, ok bool) {
	if h.unanchored == nil || from > len(text) {
		return 0, 0, false
	}
	try := func(re *regexp.Regexp) func() ([2]int, bool) {
		return func() ([2]int, bool) {
			loc := re.FindStringIndex(text[from:])
			if loc == nil {
				return [2]int{}, false
			}
			return [2]int{from + loc[0], from + loc[1]}, true
		}
	}
	loc, _, ok := FirstSuccess(
		Strategy[[2]int]{Name: "anchored", Try: try(h.anchored)},
		Strategy[[2]int]{Name: "unanchored", Try: try(h.unanchored)},
	)
	return loc[0], loc[1], ok
}

// matches reports whether line contains the header anywhere.
func (h header) matches(line string) bool {
	return h.unanchored != nil && h.unanchored.MatchString(line)
}

// Template is an ImportTemplate with every pattern compiled. It is
// immutable and safe for concurrent use.
type Template struct {
	Name string

	chapter     *regexp.Regexp
	verse       *regexp.Regexp
	verseLoose  *regexp.Regexp
	synonyms    header
	translation header
	commentary  header
}

// Compile prepares a template for segmentation.
func Compile(t scripture.ImportTemplate) (*Template, error) {
	ct := &Template{Name: t.Name}

	var err error
	if !t.Chapter.IsEmpty() {
		if ct.chapter, err = t.Chapter.Compile(); err != nil {
			return nil, fmt.Errorf("chapter pattern: %w", err)
		}
	}
	if !t.Verse.IsEmpty() {
		if ct.verse, err = t.Verse.Compile(); err != nil {
			return nil, fmt.Errorf("verse pattern: %w", err)
		}
		if t.Verse.Anchored {
			if ct.verseLoose, err = t.Verse.CompileUnanchored(); err != nil {
				return nil, fmt.Errorf("verse pattern: %w", err)
			}
		}
	}
	if ct.synonyms, err = compileHeader(t.Synonyms); err != nil {
		return nil, fmt.Errorf("synonyms pattern: %w", err)
	}
	if ct.translation, err = compileHeader(t.Translation); err != nil {
		return nil, fmt.Errorf("translation pattern: %w", err)
	}
	if ct.commentary, err = compileHeader(t.Commentary); err != nil {
		return nil, fmt.Errorf("commentary pattern: %w", err)
	}
	return ct, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// templates defined in code and tests.
func MustCompile(t scripture.ImportTemplate) *Template {
	ct, err := Compile(t)
	if err != nil {
		panic(err)
	}
	return ct
}

// CustomTemplate builds a template from four raw patterns typed by a user,
// with chapters marked by "CHAPTER N" lines.
func CustomTemplate(verse, synonyms, translation, commentary string) scripture.ImportTemplate {
	return scripture.ImportTemplate{
		ID:          "custom",
		Name:        "Користувацький",
		Chapter:     scripture.ParsePattern(`^CHAPTER\s+(\d+)`),
		Verse:       scripture.ParsePattern(verse),
		Synonyms:    scripture.ParsePattern(synonyms),
		Translation: scripture.ParsePattern(translation),
		Commentary:  scripture.ParsePattern(commentary),
	}
}

// headerLine reports whether line opens a synonyms, translation or
// commentary section.
func (t *Template) headerLine(line string) bool {
	return t.synonyms.matches(line) || t.translation.matches(line) || t.commentary.matches(line)
}

// verseLine reports whether line looks like a verse heading.
func (t *Template) verseLine(line string) bool {
	for _, re := range []*regexp.Regexp{t.verse, t.verseLoose, legacyVersePattern} {
		if re != nil && re.MatchString(line) {
			return true
		}
	}
	return false
}
