package legacy

import (
	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/textproc/blocks"
)

// IntroPage maps a front- or back-matter file to its chapter slot.
type IntroPage struct {
	Prefix string
	Slug   string
	Title  string
	Number int
}

// introPages are the non-chapter files of a verse book, in output order.
// Front matter uses the sentinel chapter numbers; back matter sorts after
// every chapter.
var introPages = []IntroPage{
	{"00DC", "dedication", "Посвята", scripture.ChapterDedication},
	{"00SS", "background", "Передісторія «Бгаґавад-ґіти»", scripture.ChapterBackground},
	{"00PF", "preface", "Передмова до англійського видання", scripture.ChapterPreface},
	{"00NT", "note", "Коментар до другого англійського видання", scripture.ChapterSecondNote},
	{"00ID", "introduction", "Вступ", scripture.ChapterIntroduction},
	{"00DS", "disciplic-succession", "Ланцюг учнівської послідовності", 100},
	{"00AU", "about-author", "Про автора", 101},
	{"00KU", "reviews", "Відгуки про «Бгаґавад-ґіту як вона є»", 102},
	{"00PG", "pronunciation", "Як читати санскрит", 103},
	{"00GL", "glossary", "Словничок імен і термінів", 104},
	{"00QV", "verse-index", "Покажчик цитованих віршів", 105},
	{"00RF", "references", "Список цитованої літератури", 107},
	{"00BL", "books", "Книги Його Божественної Милості", 108},
}

// IntroPages returns the intro page table.
func IntroPages() []IntroPage {
	return append([]IntroPage(nil), introPages...)
}

// ParseIntroPage reads a front- or back-matter file into a text chapter.
// It reports false when the file holds no printable paragraphs.
func ParseIntroPage(text string, page IntroPage) (scripture.Chapter, bool) {
	title := page.Title
	var paragraphs []string

	for _, b := range ScanBlocks(text) {
		if b.Content == "" {
			continue
		}
		switch {
		case tagIn(b.Tag, "h1-fb", "h1", "h1-pg", "h1-rv", "h1-bl", "h1-ds"):
			if t := blocks.Prose(b.Content, false); t != "" {
				title = t
			}
		case tagIn(b.Tag, "h2", "h2-gl", "h2-rv"):
			if sub := blocks.Prose(b.Content, true); sub != "" {
				paragraphs = append(paragraphs, "<strong>"+sub+"</strong>")
			}
		case tagIn(b.Tag, "p0", "p", "p1", "p-indent", "p-gl", "p-au", "p-rv", "p-bl", "p0-ku", "p1-ku"):
			paragraphs = append(paragraphs, blocks.Paragraph(blocks.Prose(b.Content, true), ""))
		case b.Tag == "ku-signature":
			// Signatures and dedications keep their line breaks.
			if sig := blocks.Quote(b.Content); sig != "" {
				paragraphs = append(paragraphs, `<p class="signature"><em>`+sig+`</em></p>`)
			}
		case b.Tag == "dc":
			paragraphs = append(paragraphs, blocks.Paragraph(blocks.Quote(b.Content), "dedication"))
		case tagIn(b.Tag, "ql", "q", "q-p"):
			if q := blocks.Quote(b.Content); q != "" {
				paragraphs = append(paragraphs, "<blockquote><p>"+q+"</p></blockquote>")
			}
		}
	}

	content := blocks.JoinParagraphs(paragraphs...)
	if content == "" {
		return scripture.Chapter{}, false
	}
	return scripture.NewTextChapter(page.Number, title, content), true
}
