package scripture

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pattern is a header pattern in template form. Source never carries the
// leading "^"; Anchored records whether the author wrote one.
type Pattern struct {
	Source        string `yaml:"source" json:"source"`
	Anchored      bool   `yaml:"anchored" json:"anchored"`
	CaseSensitive bool   `yaml:"case_sensitive,omitempty" json:"case_sensitive,omitempty"`
}

// ParsePattern converts a raw regular expression into a Pattern, moving a
// leading "^" into the Anchored flag.
func ParsePattern(raw string) Pattern {
	if src, ok := strings.CutPrefix(raw, "^"); ok {
		return Pattern{Source: src, Anchored: true}
	}
	return Pattern{Source: raw}
}

// UnmarshalYAML accepts either a plain regular expression string or the
// {source, anchored, case_sensitive} mapping.
func (p *Pattern) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*p = ParsePattern(node.Value)
		return nil
	}
	type plain Pattern
	var out plain
	if err := node.Decode(&out); err != nil {
		return err
	}
	*p = Pattern(out)
	return nil
}

// UnmarshalJSON accepts the same two forms as UnmarshalYAML.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*p = ParsePattern(raw)
		return nil
	}
	type plain Pattern
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	*p = Pattern(out)
	return nil
}

// String returns the pattern as the author wrote it.
func (p Pattern) String() string {
	if p.Anchored {
		return "^" + p.Source
	}
	return p.Source
}

// IsEmpty reports whether the pattern is unset.
func (p Pattern) IsEmpty() bool {
	return strings.TrimSpace(p.Source) == ""
}

func (p Pattern) flags() string {
	if p.CaseSensitive {
		return "(?m)"
	}
	return "(?im)"
}

// Compile returns the multiline regexp in the form the author wrote it.
func (p Pattern) Compile() (*regexp.Regexp, error) {
	if p.Anchored {
		return p.CompileAnchored()
	}
	return p.CompileUnanchored()
}

// CompileAnchored returns the variant that only matches at a line start.
func (p Pattern) CompileAnchored() (*regexp.Regexp, error) {
	re, err := regexp.Compile(p.flags() + "^(?:" + p.Source + ")")
	if err != nil {
		return nil, fmt.Errorf("compile anchored %q: %w", p.Source, err)
	}
	return re, nil
}

// CompileUnanchored returns the variant that matches anywhere in a line.
func (p Pattern) CompileUnanchored() (*regexp.Regexp, error) {
	re, err := regexp.Compile(p.flags() + "(?:" + p.Source + ")")
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", p.Source, err)
	}
	return re, nil
}

// ImportTemplate is a named set of header patterns describing one book layout.
type ImportTemplate struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Chapter     Pattern `yaml:"chapter" json:"chapter"`
	Verse       Pattern `yaml:"verse" json:"verse"`
	Synonyms    Pattern `yaml:"synonyms" json:"synonyms"`
	Translation Pattern `yaml:"translation" json:"translation"`
	Commentary  Pattern `yaml:"commentary" json:"commentary"`
}
