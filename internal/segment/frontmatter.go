package segment

import (
	"strings"

	"vedaimport/internal/domain/models/scripture"
)

// FrontMatter is a known section that precedes chapter 1.
type FrontMatter struct {
	Number   int
	Title    string
	Keywords []string
}

// frontMatter is checked in order; the first keyword found in the heading wins.
var frontMatter = []FrontMatter{
	{scripture.ChapterDedication, "Посвята", []string{"ПОСВЯТА", "DEDICATION"}},
	{scripture.ChapterBackground, "Передісторія «Бгаґавад-ґіти»", []string{"ПЕРЕДІСТОРІЯ", "BACKGROUND"}},
	{scripture.ChapterPreface, "Передмова до англійського видання", []string{"ПЕРЕДМОВА", "PREFACE"}},
	{scripture.ChapterSecondNote, "Коментар до другого англійського видання", []string{"КОМЕНТАР ДО ДРУГОГО", "NOTE TO THE SECOND"}},
	{scripture.ChapterIntroduction, "Вступ", []string{"ВСТУП", "INTRODUCTION"}},
}

// LookupFrontMatter matches a chapter heading against the front-matter
// titles, ignoring case.
func LookupFrontMatter(heading string) (FrontMatter, bool) {
	h := normalizeWords(heading)
	for _, fm := range frontMatter {
		for _, kw := range fm.Keywords {
			if strings.Contains(h, kw) {
				return fm, true
			}
		}
	}
	return FrontMatter{}, false
}
