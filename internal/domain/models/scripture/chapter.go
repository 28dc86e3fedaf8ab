package scripture

// ChapterType tells consumers whether a chapter carries verses or free text.
type ChapterType string

const (
	ChapterTypeVerses ChapterType = "verses"
	ChapterTypeText   ChapterType = "text"
)

// Front-matter chapter numbers. Ordinary chapters are numbered from 1.
const (
	ChapterDedication   = -4
	ChapterBackground   = -3
	ChapterPreface      = -2
	ChapterSecondNote   = -1
	ChapterIntroduction = 0
)

// Chapter is a segmented chapter. Text chapters carry Content and no verses.
type Chapter struct {
	Number      int         `json:"chapter_number"`
	Title       string      `json:"title"`
	TitleEN     string      `json:"title_en,omitempty"`
	Type        ChapterType `json:"chapter_type"`
	Verses      []Verse     `json:"verses"`
	Content     string      `json:"content,omitempty"`
	CantoNumber *int        `json:"canto_number,omitempty"`
}

// NewTextChapter builds a free-text chapter.
func NewTextChapter(number int, title, content string) Chapter {
	return Chapter{
		Number:  number,
		Title:   title,
		Type:    ChapterTypeText,
		Verses:  []Verse{},
		Content: content,
	}
}

// NewVerseChapter builds a verse chapter. A nil slice is stored as empty.
func NewVerseChapter(number int, title string, verses []Verse) Chapter {
	if verses == nil {
		verses = []Verse{}
	}
	return Chapter{
		Number: number,
		Title:  title,
		Type:   ChapterTypeVerses,
		Verses: verses,
	}
}

// IsFrontMatter reports whether the chapter uses a front-matter number.
func (c Chapter) IsFrontMatter() bool {
	return c.Number <= ChapterIntroduction
}
