package templates

import (
	"gopkg.in/yaml.v3"

	"vedaimport/internal/domain/models/scripture"
)

// TemplateFile is one YAML file of templates sharing a language.
type TemplateFile struct {
	Language  string                     `yaml:"language" json:"language"`
	Templates []scripture.ImportTemplate `yaml:"-" json:"templates"` // Ordered slice, populated by custom unmarshaler
}

// UnmarshalYAML decodes the templates mapping while keeping the file order.
// Map keys become template IDs.
func (f *TemplateFile) UnmarshalYAML(node *yaml.Node) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "language" {
			f.Language = node.Content[i+1].Value
			break
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "templates" {
			continue
		}
		entries := node.Content[i+1]
		// entries.Content alternates: key, value, key, value...
		for j := 0; j+1 < len(entries.Content); j += 2 {
			var tpl scripture.ImportTemplate
			if err := entries.Content[j+1].Decode(&tpl); err != nil {
				return err
			}
			tpl.ID = entries.Content[j].Value
			f.Templates = append(f.Templates, tpl)
		}
		break
	}
	return nil
}
