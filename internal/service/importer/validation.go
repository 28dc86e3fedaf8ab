package importer

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"vedaimport/internal/config"
	importSvc "vedaimport/internal/domain/services/importer"
)

var (
	bookSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	httpURL  = regexp.MustCompile(`^https?://[^\s/$.?#][^\s]*$`)
	formats  = []interface{}{"", importSvc.FormatHTML, importSvc.FormatMarkdown}
)

func validatePreviewRequest(req *importSvc.PreviewRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Text,
			validation.Required,
			validation.Length(1, config.MaxDocumentBytes),
		),
		validation.Field(&req.TemplateID, validation.Length(0, config.MaxTemplateIDLength)),
		validation.Field(&req.Format, validation.In(formats...)),
	)
}

func validateSiteRequest(req *importSvc.SiteRequest, sources []string) error {
	names := make([]interface{}, len(sources))
	for i, s := range sources {
		names[i] = s
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.Source,
			validation.Required,
			validation.In(names...).Error(fmt.Sprintf("must be one of %v", sources)),
		),
		validation.Field(&req.URL,
			validation.Required,
			validation.Match(httpURL).Error("must be an http(s) URL"),
		),
		validation.Field(&req.Format, validation.In(formats...)),
	)
}

func validatePersistRequest(req *importSvc.PersistRequest) error {
	if err := validation.ValidateStruct(&req.Book,
		validation.Field(&req.Book.Slug,
			validation.Required,
			validation.Length(1, config.MaxBookSlugLength),
			validation.Match(bookSlug).Error("must be lowercase words joined by hyphens"),
		),
		validation.Field(&req.Book.TitleUK, validation.Length(0, config.MaxTemplateNameLength)),
		validation.Field(&req.Book.TitleEN, validation.Length(0, config.MaxTemplateNameLength)),
	); err != nil {
		return fmt.Errorf("book: %w", err)
	}

	return validation.ValidateStruct(req,
		validation.Field(&req.CantoNumber, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&req.Chapters, validation.Required),
	)
}
