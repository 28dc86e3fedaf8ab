package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vedaimport/internal/domain"
	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/domain/repositories"
	importSvc "vedaimport/internal/domain/services/importer"
	"vedaimport/internal/fetch"
	"vedaimport/internal/segment"
	"vedaimport/internal/service/importer/converter"
	"vedaimport/internal/sources"
	"vedaimport/internal/templates"
)

// DefaultTemplateID is used when a request names no template
const DefaultTemplateID = "bhagavad-gita"

// DefaultSiteTimeout bounds a whole site import when none is configured
const DefaultSiteTimeout = 10 * time.Minute

// Config holds the collaborators of the import service. Repo and TxManager
// are nil when persistence is disabled.
type Config struct {
	Templates   *templates.Registry
	Converters  *converter.Registry
	Sources     *sources.Registry
	Repo        repositories.ScriptureRepository
	TxManager   repositories.TransactionManager
	SiteTimeout time.Duration
	Logger      *slog.Logger
}

// importService implements the ImportService interface
type importService struct {
	templates   *templates.Registry
	segmenter   *segment.Segmenter
	converters  *converter.Registry
	processors  *FileProcessorRegistry
	sources     *sources.Registry
	repo        repositories.ScriptureRepository
	txManager   repositories.TransactionManager
	siteTimeout time.Duration
	logger      *slog.Logger
}

// NewImportService creates a new import service
func NewImportService(cfg Config) importSvc.ImportService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	converters := cfg.Converters
	if converters == nil {
		converters = converter.NewRegistry()
	}
	srcs := cfg.Sources
	if srcs == nil {
		srcs = sources.NewRegistry()
	}
	timeout := cfg.SiteTimeout
	if timeout <= 0 {
		timeout = DefaultSiteTimeout
	}

	// Zip first: the individual processor would otherwise reject .zip
	processors := NewFileProcessorRegistry()
	processors.Register(NewZipFileProcessor(converters, logger))
	processors.Register(NewIndividualFileProcessor(converters, logger))

	return &importService{
		templates:   cfg.Templates,
		segmenter:   segment.New(logger.With("component", "segmenter")),
		converters:  converters,
		processors:  processors,
		sources:     srcs,
		repo:        cfg.Repo,
		txManager:   cfg.TxManager,
		siteTimeout: timeout,
		logger:      logger,
	}
}

// Preview segments pasted text
func (s *importService) Preview(ctx context.Context, req *importSvc.PreviewRequest) (*importSvc.ImportResult, error) {
	if err := validatePreviewRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	tpl, err := s.resolveTemplate(req.TemplateID, req.Template)
	if err != nil {
		return nil, err
	}

	result := newResult()
	result.Chapters = s.segmenter.SplitChapters(req.Text, tpl)
	if err := s.finish(result, req.Format); err != nil {
		return nil, err
	}

	s.logger.Info("preview complete",
		"job_id", result.JobID,
		"template", tpl.Name,
		"chapters", result.Stats.Chapters,
		"verses", result.Stats.Verses,
	)
	return result, nil
}

// ProcessFiles converts and segments uploaded files
func (s *importService) ProcessFiles(ctx context.Context, files []importSvc.UploadedFile, opts *importSvc.FileOptions) (*importSvc.ImportResult, error) {
	if opts == nil {
		opts = &importSvc.FileOptions{}
	}
	if len(files) == 0 {
		return nil, &domain.ValidationError{Message: "no files provided"}
	}

	tpl, err := s.resolveTemplate(opts.TemplateID, nil)
	if err != nil {
		return nil, err
	}
	seg := func(text string) []scripture.Chapter {
		return s.segmenter.SplitChapters(text, tpl)
	}

	result := newResult()
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		processor := s.processors.GetProcessor(file.Filename)
		if processor == nil {
			s.logger.Debug("no processor for file", "filename", file.Filename)
			recordSkip(result, file.Filename)
			continue
		}

		if err := processor.Process(ctx, file.Content, file.Filename, seg, result); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			recordFailure(result, file.Filename, "", err.Error())
			s.logger.Warn("file processing failed",
				"processor", processor.Name(),
				"filename", file.Filename,
				"error", err,
			)
		}
	}

	if err := s.finish(result, opts.Format); err != nil {
		return nil, err
	}

	s.logger.Info("file import complete",
		"job_id", result.JobID,
		"template", tpl.Name,
		"files", result.Stats.Files,
		"failed", result.Stats.Failed,
		"chapters", result.Stats.Chapters,
	)
	return result, nil
}

// ImportSite fetches and parses a supported site
func (s *importService) ImportSite(ctx context.Context, req *importSvc.SiteRequest) (*importSvc.ImportResult, error) {
	if err := validateSiteRequest(req, s.sources.Names()); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	src, err := s.sources.Get(req.Source)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.siteTimeout)
	defer cancel()

	started := time.Now()
	chapters, err := src.Import(ctx, req.URL)
	if err != nil {
		return nil, siteError(req, err)
	}

	result := newResult()
	result.Chapters = chapters
	if err := s.finish(result, req.Format); err != nil {
		return nil, err
	}

	s.logger.Info("site import complete",
		"job_id", result.JobID,
		"source", req.Source,
		"url", req.URL,
		"chapters", result.Stats.Chapters,
		"verses", result.Stats.Verses,
		"duration", time.Since(started),
	)
	return result, nil
}

// Templates lists the registered templates
func (s *importService) Templates() []importSvc.TemplateInfo {
	entries := s.templates.List()
	out := make([]importSvc.TemplateInfo, 0, len(entries))
	for _, e := range entries {
		t := e.Template
		out = append(out, importSvc.TemplateInfo{
			ID:                 t.ID,
			Name:               t.Name,
			Language:           e.Language,
			Builtin:            e.Builtin,
			ChapterPattern:     t.Chapter.String(),
			VersePattern:       t.Verse.String(),
			SynonymsPattern:    t.Synonyms.String(),
			TranslationPattern: t.Translation.String(),
			CommentaryPattern:  t.Commentary.String(),
		})
	}
	return out
}

// Sources lists the supported site sources
func (s *importService) Sources() []string {
	return s.sources.Names()
}

// resolveTemplate compiles an inline template or looks up a registered one
func (s *importService) resolveTemplate(id string, inline *scripture.ImportTemplate) (*segment.Template, error) {
	if inline != nil {
		tpl := *inline
		if tpl.ID == "" {
			tpl.ID = "custom"
		}
		if tpl.Name == "" {
			tpl.Name = "Користувацький"
		}
		entry, err := templates.Prepare(tpl)
		if err != nil {
			return nil, err
		}
		return entry.Compiled, nil
	}

	if id == "" {
		id = DefaultTemplateID
	}
	entry, err := s.templates.Get(id)
	if err != nil {
		return nil, err
	}
	return entry.Compiled, nil
}

// finish converts the output format and fills in the stats
func (s *importService) finish(result *importSvc.ImportResult, format string) error {
	chapters, err := chaptersInFormat(result.Chapters, format)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	result.Chapters = chapters

	result.Stats.Chapters = len(chapters)
	for i := range chapters {
		ch := &chapters[i]
		ch.Title = plainTitle(ch.Title)
		ch.TitleEN = plainTitle(ch.TitleEN)

		if ch.Type == scripture.ChapterTypeText {
			result.Stats.TextChapters++
		}
		if ch.IsFrontMatter() {
			result.Stats.FrontMatter++
		}
		result.Stats.Verses += len(ch.Verses)
	}
	return nil
}

func newResult() *importSvc.ImportResult {
	return &importSvc.ImportResult{
		JobID:    uuid.NewString(),
		Chapters: []scripture.Chapter{},
	}
}

// siteError maps fetch failures of the entry page to domain errors
func siteError(req *importSvc.SiteRequest, err error) error {
	var statusErr *fetch.StatusError
	switch {
	case errors.As(err, &statusErr) && statusErr.NotFound():
		return &domain.NotFoundError{Message: fmt.Sprintf("page not found: %s", req.URL)}
	case errors.Is(err, context.DeadlineExceeded):
		return &domain.UnavailableError{Message: fmt.Sprintf("%s import timed out", req.Source)}
	case errors.Is(err, context.Canceled):
		return err
	default:
		return &domain.UnavailableError{Message: fmt.Sprintf("%s import failed: %v", req.Source, err)}
	}
}
