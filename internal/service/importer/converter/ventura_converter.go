package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"vedaimport/internal/domain/models/scripture"
	importSvc "vedaimport/internal/domain/services/importer"
	"vedaimport/internal/legacy"
	"vedaimport/internal/textproc/markup"
)

// Trailing chapter digits in legacy names such as "UKBG02XT" or "UKSO0014"
var fileChapter = regexp.MustCompile(`(\d+)(?:XT)?$`)

// venturaConverter reads legacy Ventura Publisher chapter files. The
// typesetting tags give chapter structure directly, so it implements
// ChapterParser and bypasses the template segmenter.
type venturaConverter struct{}

// NewVenturaConverter creates a new Ventura converter.
func NewVenturaConverter() importSvc.ContentConverter {
	return &venturaConverter{}
}

// Convert flattens the tagged blocks to plain paragraphs.
func (c *venturaConverter) Convert(ctx context.Context, input []byte) (string, error) {
	text, err := legacy.Decode(input)
	if err != nil {
		return "", fmt.Errorf("decode ventura file: %w", err)
	}

	var parts []string
	for _, b := range legacy.ScanBlocks(text) {
		if p := markup.Resolve(b.Content, false); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// ParseChapters implements ChapterParser.
func (c *venturaConverter) ParseChapters(ctx context.Context, filename string, input []byte) ([]scripture.Chapter, error) {
	text, err := legacy.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("decode ventura file: %w", err)
	}

	ch := legacy.ParseChapter(text, chapterFromFilename(filename))
	if ch.Type == scripture.ChapterTypeVerses && len(ch.Verses) == 0 {
		return []scripture.Chapter{}, nil
	}
	if ch.Type == scripture.ChapterTypeText && ch.Content == "" && len(ch.Verses) == 0 {
		return []scripture.Chapter{}, nil
	}
	return []scripture.Chapter{ch}, nil
}

// Legacy files end in the typesetter's ".Hnn" extension.
func (c *venturaConverter) SupportedExtensions() []string {
	exts := []string{".ven", ".vp"}
	for i := 0; i < 100; i++ {
		exts = append(exts, fmt.Sprintf(".h%02d", i))
	}
	return exts
}

func (c *venturaConverter) Name() string {
	return "ventura"
}

func chapterFromFilename(filename string) int {
	base := strings.ToUpper(filepath.Base(filename))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if m := fileChapter.FindStringSubmatch(base); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	return 1
}
