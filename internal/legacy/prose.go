package legacy

import (
	"regexp"
	"strconv"
	"strings"

	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/segment"
	"vedaimport/internal/textproc/blocks"
)

var numberedParagraphTag = regexp.MustCompile(`^p\d*$`)

// proseTitleTags are tried in order for the chapter title.
var proseTitleTags = [][]string{
	{"chapterhead", "chaptertitle"},
	{"h1"},
}

func isProseContentTag(tag string) bool {
	switch {
	case strings.HasPrefix(tag, "purp"),
		strings.HasPrefix(tag, "p-speech"),
		strings.HasPrefix(tag, "p-intro"),
		strings.HasPrefix(tag, "text-"),
		numberedParagraphTag.MatchString(tag),
		tag == "h4", tag == "translation", tag == "eqs":
		return true
	}
	return false
}

func isProseVerseTag(tag string) bool {
	return strings.HasPrefix(tag, "verse") || tag == "h3-verse"
}

// ParseProseChapter reads a chapter of a prose book. Content paragraphs
// become <p> elements joined by blank lines; quoted Sanskrit verses are kept
// as numbered verses carrying only the original text.
func ParseProseChapter(text string, number int) scripture.Chapter {
	blockList := ScanBlocks(text)

	title := proseTitle(blockList)
	if title == "" {
		title = segment.DefaultChapterTitle(number)
	}

	var (
		paragraphs []string
		verses     []scripture.Verse
	)
	for _, b := range blockList {
		switch {
		case isProseVerseTag(b.Tag):
			if sanskrit := blocks.Prose(b.Content, false); sanskrit != "" {
				verses = append(verses, scripture.Verse{
					Number:   scripture.NumberedVerse(strconv.Itoa(len(verses) + 1)),
					Sanskrit: sanskrit,
				})
			}
		case isProseContentTag(b.Tag):
			paragraphs = append(paragraphs, blocks.Paragraph(blocks.Prose(b.Content, true), ""))
		}
	}

	ch := scripture.NewTextChapter(number, title, blocks.JoinParagraphs(paragraphs...))
	if len(verses) > 0 {
		ch.Verses = verses
	}
	return ch
}

func proseTitle(blockList []Block) string {
	for _, tags := range proseTitleTags {
		for _, b := range blockList {
			for _, tag := range tags {
				if b.Tag == tag {
					if t := blocks.Prose(b.Content, false); t != "" {
						return t
					}
				}
			}
		}
	}
	return ""
}
