package importer

import (
	"context"
	"fmt"

	"vedaimport/internal/domain"
	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/domain/repositories"
	importSvc "vedaimport/internal/domain/services/importer"
)

// Persist upserts the book, its cantos, chapters and verses in one
// transaction.
func (s *importService) Persist(ctx context.Context, req *importSvc.PersistRequest) (*importSvc.PersistResult, error) {
	if s.repo == nil || s.txManager == nil {
		return nil, &domain.UnavailableError{Message: "persistence is disabled: DATABASE_URL is not set"}
	}
	if err := validatePersistRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	result := &importSvc.PersistResult{}
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		book := &repositories.BookRecord{
			Slug:    req.Book.Slug,
			TitleUK: req.Book.TitleUK,
			TitleEN: req.Book.TitleEN,
		}
		if err := s.repo.UpsertBook(ctx, book); err != nil {
			return err
		}
		result.BookID = book.ID

		cantoIDs := make(map[int]string)
		for _, ch := range req.Chapters {
			cantoID, err := s.cantoID(ctx, book.ID, cantoFor(ch, req.CantoNumber), cantoIDs)
			if err != nil {
				return err
			}

			rec := &repositories.ChapterRecord{BookID: book.ID, CantoID: cantoID, Chapter: ch}
			if err := s.repo.UpsertChapter(ctx, rec); err != nil {
				return err
			}

			verses := dedupeVerses(ch.Verses)
			if err := s.repo.UpsertVerses(ctx, rec.ID, verses); err != nil {
				return fmt.Errorf("chapter %d: %w", ch.Number, err)
			}
			result.Chapters++
			result.Verses += len(verses)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("persist failed", "book", req.Book.Slug, "error", err)
		return nil, err
	}

	s.logger.Info("book persisted",
		"book", req.Book.Slug,
		"book_id", result.BookID,
		"chapters", result.Chapters,
		"verses", result.Verses,
	)
	return result, nil
}

// cantoID returns the canto row for number, creating it on first use.
// A nil number means the book has no cantos.
func (s *importService) cantoID(ctx context.Context, bookID string, number *int, cache map[int]string) (*string, error) {
	if number == nil {
		return nil, nil
	}
	if id, ok := cache[*number]; ok {
		return &id, nil
	}
	id, err := s.repo.UpsertCanto(ctx, bookID, *number)
	if err != nil {
		return nil, err
	}
	cache[*number] = id
	return &id, nil
}

// cantoFor prefers the canto a chapter carries over the request default
func cantoFor(ch scripture.Chapter, fallback *int) *int {
	if ch.CantoNumber != nil {
		return ch.CantoNumber
	}
	return fallback
}

// dedupeVerses keeps one verse per sort key. The last occurrence wins but
// takes the position of the first.
func dedupeVerses(verses []scripture.Verse) []scripture.Verse {
	out := make([]scripture.Verse, 0, len(verses))
	index := make(map[string]int, len(verses))
	for _, v := range verses {
		key := scripture.VerseSortKey(v.Number.String())
		if i, ok := index[key]; ok {
			out[i] = v
			continue
		}
		index[key] = len(out)
		out = append(out, v)
	}
	return out
}
