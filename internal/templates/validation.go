package templates

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"vedaimport/internal/config"
	"vedaimport/internal/domain/models/scripture"
)

var templateID = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validate checks that a template is complete and that every pattern
// compiles and cannot match an empty string.
func Validate(t scripture.ImportTemplate) error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required, validation.Length(1, config.MaxTemplateIDLength), validation.Match(templateID)),
		validation.Field(&t.Name, validation.Required, validation.Length(1, config.MaxTemplateNameLength)),
		validation.Field(&t.Chapter, validation.By(validPattern)),
		validation.Field(&t.Verse, validation.By(validPattern)),
		validation.Field(&t.Synonyms, validation.By(validPattern)),
		validation.Field(&t.Translation, validation.By(validPattern)),
		validation.Field(&t.Commentary, validation.By(validPattern)),
	)
}

func validPattern(value interface{}) error {
	p, ok := value.(scripture.Pattern)
	if !ok {
		return fmt.Errorf("must be a pattern")
	}
	if strings.TrimSpace(p.Source) == "" {
		return errors.New("cannot be blank")
	}
	if len(p.Source) > config.MaxPatternLength {
		return fmt.Errorf("must be at most %d bytes", config.MaxPatternLength)
	}
	re, err := p.Compile()
	if err != nil {
		return fmt.Errorf("invalid regular expression: %v", err)
	}
	if re.MatchString("") {
		return errors.New("must not match an empty string")
	}
	return nil
}
