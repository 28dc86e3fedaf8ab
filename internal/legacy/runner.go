package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"vedaimport/internal/domain/models/scripture"
)

// Runner parses one book from DocsDir and writes "<slug>-parsed.json" to
// OutputDir.
type Runner struct {
	DocsDir   string
	OutputDir string
	logger    *slog.Logger
	now       func() time.Time
}

// NewRunner creates a Runner. A nil logger discards progress output.
func NewRunner(docsDir, outputDir string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{DocsDir: docsDir, OutputDir: outputDir, logger: logger, now: time.Now}
}

// Result describes a finished run.
type Result struct {
	Book       scripture.Book
	OutputPath string
}

// Parse reads every chapter file of the book with the given code. Missing
// chapter files are logged and skipped.
func (r *Runner) Parse(ctx context.Context, code string) (*scripture.Book, error) {
	book, err := LookupBook(code)
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(r.DocsDir, book.Folder)
	log := r.logger.With("book", book.Code)
	log.Info("parsing book", "title", book.TitleUK, "folder", dir)

	files := book.Files
	if book.Discover {
		if files, err = DiscoverFiles(dir, book.Prefix); err != nil {
			return nil, err
		}
	}

	chapters := []scripture.Chapter{}
	for i, suffix := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		index := i + 1
		pattern := book.Prefix + suffix
		path, ok, err := FindFile(dir, pattern)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Warn("chapter file not found", "chapter", index, "pattern", pattern)
			continue
		}
		text, err := ReadFile(path)
		if err != nil {
			log.Warn("chapter file unreadable", "chapter", index, "file", filepath.Base(path), "error", err)
			continue
		}

		ch, keep := r.parseChapter(book, text, index)
		if !keep {
			log.Warn("no verses found", "chapter", index, "file", filepath.Base(path))
			continue
		}
		chapters = append(chapters, ch)
		log.Info("chapter parsed",
			"chapter", ch.Number,
			"file", filepath.Base(path),
			"title", ch.Title,
			"verses", len(ch.Verses),
			"content_chars", len([]rune(ch.Content)),
		)
	}

	if book.Kind == VerseBook {
		chapters = append(chapters, r.parseIntroPages(log, dir, book)...)
	}

	log.Info("book parsed", "chapters", len(chapters))
	return &scripture.Book{
		Code:        book.Slug,
		TitleUK:     book.TitleUK,
		TitleEN:     book.TitleEN,
		Chapters:    chapters,
		GeneratedAt: r.now().UTC(),
	}, nil
}

func (r *Runner) parseChapter(book Book, text string, index int) (scripture.Chapter, bool) {
	if book.Kind == ProseBook {
		return ParseProseChapter(text, index), true
	}
	ch := ParseVerseChapter(text)
	if ch.Number == 0 {
		ch.Number = index
	}
	return ch, len(ch.Verses) > 0
}

func (r *Runner) parseIntroPages(log *slog.Logger, dir string, book Book) []scripture.Chapter {
	var pages []scripture.Chapter
	for _, page := range introPages {
		path, ok, err := FindFile(dir, book.Prefix+page.Prefix)
		if err != nil || !ok {
			continue
		}
		text, err := ReadFile(path)
		if err != nil {
			log.Warn("intro file unreadable", "file", filepath.Base(path), "error", err)
			continue
		}
		if ch, ok := ParseIntroPage(text, page); ok {
			pages = append(pages, ch)
			log.Info("intro parsed", "slug", page.Slug, "title", ch.Title)
		}
	}
	return pages
}

// Run parses the book and writes it as indented JSON.
func (r *Runner) Run(ctx context.Context, code string) (*Result, error) {
	book, err := r.Parse(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode book: %w", err)
	}
	out := filepath.Join(r.OutputDir, book.Code+"-parsed.json")
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", out, err)
	}
	r.logger.Info("output written", "path", out, "chapters", len(book.Chapters))
	return &Result{Book: *book, OutputPath: out}, nil
}
