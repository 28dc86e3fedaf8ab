package importer

import (
	"context"

	"vedaimport/internal/domain/models/scripture"
)

// ImportService runs imports from pasted text, uploaded files and remote
// sites, and optionally persists the result.
type ImportService interface {
	// Preview segments pasted text with a registered or inline template
	Preview(ctx context.Context, req *PreviewRequest) (*ImportResult, error)

	// ProcessFiles converts and segments uploaded files (zip or individual).
	// Per-file failures are reported in the result, not returned.
	ProcessFiles(ctx context.Context, files []UploadedFile, opts *FileOptions) (*ImportResult, error)

	// ImportSite fetches and parses a page from a supported site
	ImportSite(ctx context.Context, req *SiteRequest) (*ImportResult, error)

	// Persist upserts a book and its chapters.
	// Returns domain.ErrUnavailable when no database is configured.
	Persist(ctx context.Context, req *PersistRequest) (*PersistResult, error)

	// Templates lists the registered templates
	Templates() []TemplateInfo

	// Sources lists the supported site sources
	Sources() []string
}

// Output formats for chapter content and commentary
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// PreviewRequest is the body of POST /api/import/preview
type PreviewRequest struct {
	Text       string                    `json:"text"`
	TemplateID string                    `json:"template_id,omitempty"`
	Template   *scripture.ImportTemplate `json:"template,omitempty"`
	Format     string                    `json:"-"`
}

// FileOptions configures a file upload import
type FileOptions struct {
	TemplateID string
	Format     string
}

// SiteRequest is the body of POST /api/import/site
type SiteRequest struct {
	Source string `json:"source"`
	URL    string `json:"url"`
	Format string `json:"-"`
}

// BookRef identifies the book chapters are persisted into
type BookRef struct {
	Slug    string `json:"slug"`
	TitleUK string `json:"title_uk"`
	TitleEN string `json:"title_en"`
}

// PersistRequest is the body of POST /api/import/persist
type PersistRequest struct {
	Book        BookRef             `json:"book"`
	CantoNumber *int                `json:"canto_number,omitempty"`
	Chapters    []scripture.Chapter `json:"chapters"`
}

// ImportResult is the outcome of one import job
type ImportResult struct {
	JobID    string              `json:"job_id"`
	Chapters []scripture.Chapter `json:"chapters"`
	Stats    ImportStats         `json:"stats"`
	Files    []ImportFile        `json:"files,omitempty"`
	Errors   []ImportError       `json:"errors,omitempty"`
}

// ImportStats contains aggregate counts for an import
type ImportStats struct {
	Chapters     int `json:"chapters"`
	TextChapters int `json:"text_chapters"`
	FrontMatter  int `json:"front_matter,omitempty"`
	Verses       int `json:"verses"`
	Files        int `json:"files,omitempty"`
	Skipped      int `json:"skipped,omitempty"`
	Failed       int `json:"failed,omitempty"`
}

// ImportFile reports what happened to one uploaded file
type ImportFile struct {
	File      string `json:"file"`
	Converter string `json:"converter,omitempty"`
	Chapters  int    `json:"chapters"`
	Action    string `json:"action"` // "parsed", "skipped" or "failed"
}

// ImportError represents a per-file failure
type ImportError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// PersistResult summarises a persistence run
type PersistResult struct {
	BookID   string `json:"book_id"`
	Chapters int    `json:"chapters"`
	Verses   int    `json:"verses"`
}

// TemplateInfo describes a registered template
type TemplateInfo struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Language           string `json:"language,omitempty"`
	Builtin            bool   `json:"builtin"`
	ChapterPattern     string `json:"chapter_pattern"`
	VersePattern       string `json:"verse_pattern"`
	SynonymsPattern    string `json:"synonyms_pattern"`
	TranslationPattern string `json:"translation_pattern"`
	CommentaryPattern  string `json:"commentary_pattern"`
}
