package converter

import (
	"context"
	"fmt"

	importSvc "vedaimport/internal/domain/services/importer"
	"vedaimport/internal/legacy"
)

// textConverter reads plain text files. UTF-16 and BOM-prefixed UTF-8
// files are decoded the same way as legacy chapter files.
type textConverter struct{}

// NewTextConverter creates a new text converter.
func NewTextConverter() importSvc.ContentConverter {
	return &textConverter{}
}

func (c *textConverter) Convert(ctx context.Context, input []byte) (string, error) {
	text, err := legacy.Decode(input)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return text, nil
}

func (c *textConverter) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

func (c *textConverter) Name() string {
	return "plaintext"
}
