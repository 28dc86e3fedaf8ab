package config

const (
	// MaxTemplateIDLength is the maximum length for template IDs.
	MaxTemplateIDLength = 64

	// MaxTemplateNameLength is the maximum length for template names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255).
	MaxTemplateNameLength = 255

	// MaxPatternLength is the maximum length of a single template pattern.
	MaxPatternLength = 1024

	// MaxDocumentBytes caps the text accepted for one segmentation run.
	// Legacy Ventura chapter files are well under 2 MiB.
	MaxDocumentBytes = 8 << 20

	// MaxUploadBytes caps a multipart upload, zip archives included.
	MaxUploadBytes = 64 << 20

	// MaxBookSlugLength is the maximum length for book slugs.
	MaxBookSlugLength = 100

	// PersistBatchSize is the number of verse rows upserted per batch.
	PersistBatchSize = 50
)
