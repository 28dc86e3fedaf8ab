package legacy

import (
	"regexp"
	"strings"

	"vedaimport/internal/textproc/lines"
	"vedaimport/internal/textproc/markup"
)

// Block is one tagged paragraph of a Ventura file: "@tag = content"
// followed by any untagged continuation lines.
type Block struct {
	Tag     string
	Content string
}

var tagLine = regexp.MustCompile(`^@([\w -]+?)\s*=\s*(.*)$`)

// isTagLine reports whether line opens a new block.
func isTagLine(line string) bool {
	return strings.HasPrefix(line, "@") && tagLine.MatchString(strings.TrimRight(line, " \t\r"))
}

// ScanBlocks groups the lines of text into tagged blocks. Tags are lowered
// and internal spaces removed, so "@Chapter Head =" becomes "chapterhead".
// Continuation markers are resolved and the block is folded onto one line.
// Text before the first tag is ignored.
func ScanBlocks(text string) []Block {
	var blocks []Block
	for _, g := range lines.GroupBy(lines.Split(text), isTagLine) {
		if g.Header == "" {
			continue
		}
		m := tagLine.FindStringSubmatch(strings.TrimRight(g.Header, " \t\r"))
		parts := make([]string, 0, len(g.Body)+1)
		if first := strings.TrimSpace(m[2]); first != "" {
			parts = append(parts, first)
		}
		for _, l := range g.Body {
			if l != "" {
				parts = append(parts, l)
			}
		}
		content := markup.JoinContinuations(strings.Join(parts, "\n"))
		content = strings.TrimSpace(strings.ReplaceAll(content, "\n", " "))
		blocks = append(blocks, Block{Tag: normalizeTag(m[1]), Content: content})
	}
	return blocks
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.Join(strings.Fields(tag), ""))
}
