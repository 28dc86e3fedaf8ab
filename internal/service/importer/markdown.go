package importer

import (
	"fmt"
	"html"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"vedaimport/internal/domain/models/scripture"
	importSvc "vedaimport/internal/domain/services/importer"
	"vedaimport/internal/service/importer/converter/sanitizer"
)

var (
	markdownConverter  = md.NewConverter("", true, nil)
	commentarySanitize = sanitizer.NewCommentaryHTMLSanitizer()
	titleSanitize      = sanitizer.NewStrictHTMLSanitizer()
)

// plainTitle strips markup that scraped or uploaded headings may carry
func plainTitle(title string) string {
	return strings.TrimSpace(html.UnescapeString(titleSanitize.Sanitize(title)))
}

// htmlToMarkdown renders importer HTML (paragraphs, emphasis, quotes) as
// Markdown. Markup outside that set is dropped first.
func htmlToMarkdown(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	out, err := markdownConverter.ConvertString(commentarySanitize.Sanitize(src))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ChapterMarkdown returns a copy of ch whose content and verse commentary
// are Markdown instead of HTML.
func ChapterMarkdown(ch scripture.Chapter) (scripture.Chapter, error) {
	content, err := htmlToMarkdown(ch.Content)
	if err != nil {
		return ch, fmt.Errorf("chapter %d content: %w", ch.Number, err)
	}
	ch.Content = content

	verses := make([]scripture.Verse, len(ch.Verses))
	for i, v := range ch.Verses {
		commentary, err := htmlToMarkdown(v.Commentary)
		if err != nil {
			return ch, fmt.Errorf("chapter %d verse %s: %w", ch.Number, v.Number, err)
		}
		v.Commentary = commentary
		verses[i] = v
	}
	ch.Verses = verses
	return ch, nil
}

// chaptersInFormat converts chapters when the markdown format is requested
func chaptersInFormat(chapters []scripture.Chapter, format string) ([]scripture.Chapter, error) {
	if format != importSvc.FormatMarkdown {
		return chapters, nil
	}
	out := make([]scripture.Chapter, len(chapters))
	for i, ch := range chapters {
		converted, err := ChapterMarkdown(ch)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}
