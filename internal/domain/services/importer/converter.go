package importer

import (
	"context"
	"io"

	"vedaimport/internal/domain/models/scripture"
)

// ContentConverter turns an uploaded file into document text the segmenter
// can read. Each converter handles one family of file types.
//
// Implementations should be stateless and thread-safe.
type ContentConverter interface {
	// Convert transforms input content to plain document text.
	Convert(ctx context.Context, input []byte) (text string, err error)

	// SupportedExtensions returns file extensions this converter handles.
	// Extensions should include the leading dot (e.g., [".html", ".htm"]).
	SupportedExtensions() []string

	// Name returns a human-readable converter name for logging/debugging.
	Name() string
}

// FileProcessor defines the strategy interface for processing uploaded files.
// Different implementations handle different upload shapes (zip, individual files).
type FileProcessor interface {
	// CanProcess returns true if this processor can handle the given filename
	CanProcess(filename string) bool

	// Process converts and segments the upload, appending to result.
	// Per-file failures are recorded in result, not returned.
	Process(ctx context.Context, file io.Reader, filename string, seg SegmentFunc, result *ImportResult) error

	// Name returns the processor name for logging
	Name() string
}

// SegmentFunc segments converted document text into result chapters.
type SegmentFunc func(text string) []scripture.Chapter

// UploadedFile represents a file uploaded by the user for import
type UploadedFile struct {
	Filename string
	Content  io.Reader
}
