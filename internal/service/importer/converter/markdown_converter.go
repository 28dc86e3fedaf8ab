package converter

import (
	"context"
	"regexp"
	"strings"

	importSvc "vedaimport/internal/domain/services/importer"
	"vedaimport/internal/legacy"
)

var (
	mdHeading  = regexp.MustCompile(`(?m)^[ \t]{0,3}#{1,6}[ \t]+`)
	mdEmphasis = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	mdItalic   = regexp.MustCompile(`(^|[^*\w])[*_]([^*_\n]+)[*_]`)
	mdEscape   = regexp.MustCompile(`\\([\\*_#\-.\[\]()])`)
)

// markdownConverter reduces markdown to plain lines so heading patterns
// such as "ТЕКСТ 1" match lines written as "## **ТЕКСТ 1**". A YAML front
// matter block is dropped.
type markdownConverter struct{}

// NewMarkdownConverter creates a new markdown converter.
func NewMarkdownConverter() importSvc.ContentConverter {
	return &markdownConverter{}
}

func (c *markdownConverter) Convert(ctx context.Context, input []byte) (string, error) {
	text, err := legacy.Decode(input)
	if err != nil {
		return "", err
	}
	if _, body, ok := SplitFrontmatter(text); ok {
		text = body
	}
	return StripMarkdown(text), nil
}

func (c *markdownConverter) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

func (c *markdownConverter) Name() string {
	return "markdown"
}

// StripMarkdown removes heading markers, emphasis and escapes, keeping the
// line structure intact.
func StripMarkdown(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = mdHeading.ReplaceAllString(text, "")
	text = mdEmphasis.ReplaceAllString(text, "$2")
	text = mdItalic.ReplaceAllString(text, "$1$2")
	return mdEscape.ReplaceAllString(text, "$1")
}
