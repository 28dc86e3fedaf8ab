package converter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the optional YAML header of a markdown upload. Unknown
// keys are ignored.
type Frontmatter struct {
	Title    string `yaml:"title"`
	Chapter  int    `yaml:"chapter"`
	Template string `yaml:"template"`
}

// SplitFrontmatter separates a leading "---" YAML block from the body.
// Text without a well-formed block is returned unchanged with ok false, so
// a markdown horizontal rule on the first line is never swallowed.
func SplitFrontmatter(text string) (meta Frontmatter, body string, ok bool) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return meta, text, false
	}

	lines := strings.Split(normalized, "\n")
	closing := 0
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing == 0 {
		return meta, text, false
	}

	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:closing], "\n")), &meta); err != nil {
		return Frontmatter{}, text, false
	}
	return meta, strings.Join(lines[closing+1:], "\n"), true
}
