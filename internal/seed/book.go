// Package seed loads books produced by the batch tool into the database.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"vedaimport/internal/domain/models/scripture"
	importSvc "vedaimport/internal/domain/services/importer"
)

// LoadBook reads a "<slug>-parsed.json" file written by the batch tool.
func LoadBook(path string) (*scripture.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var book scripture.Book
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(book.Chapters) == 0 {
		return nil, fmt.Errorf("%s: book has no chapters", path)
	}
	return &book, nil
}

// Options override the book identity stored in the file
type Options struct {
	Slug  string // Defaults to the file's book_code
	Canto int    // Zero means no canto
}

// PersistRequest builds the persistence request for book
func PersistRequest(book *scripture.Book, opts Options) *importSvc.PersistRequest {
	slug := opts.Slug
	if slug == "" {
		slug = strings.ToLower(book.Code)
	}
	req := &importSvc.PersistRequest{
		Book: importSvc.BookRef{
			Slug:    slug,
			TitleUK: book.TitleUK,
			TitleEN: book.TitleEN,
		},
		Chapters: book.Chapters,
	}
	if opts.Canto > 0 {
		canto := opts.Canto
		req.CantoNumber = &canto
	}
	return req
}

// BookSeeder persists batch output through the import service
type BookSeeder struct {
	importService importSvc.ImportService
	logger        *slog.Logger
}

// NewBookSeeder creates a new book seeder
func NewBookSeeder(importService importSvc.ImportService, logger *slog.Logger) *BookSeeder {
	return &BookSeeder{
		importService: importService,
		logger:        logger,
	}
}

// SeedFile loads path and upserts its chapters
func (s *BookSeeder) SeedFile(ctx context.Context, path string, opts Options) (*importSvc.PersistResult, error) {
	book, err := LoadBook(path)
	if err != nil {
		return nil, err
	}
	req := PersistRequest(book, opts)

	s.logger.Info("seeding book", "slug", req.Book.Slug, "chapters", len(req.Chapters), "file", path)
	result, err := s.importService.Persist(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", req.Book.Slug, err)
	}
	s.logger.Info("book seeded", "slug", req.Book.Slug, "book_id", result.BookID, "chapters", result.Chapters, "verses", result.Verses)
	return result, nil
}
