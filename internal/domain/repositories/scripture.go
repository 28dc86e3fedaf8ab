package repositories

import (
	"context"

	"vedaimport/internal/domain/models/scripture"
)

// BookRecord is the persisted identity of a book
type BookRecord struct {
	ID      string
	Slug    string
	TitleUK string
	TitleEN string
}

// ChapterRecord ties a chapter to its book and optional canto
type ChapterRecord struct {
	ID      string
	BookID  string
	CantoID *string
	Chapter scripture.Chapter
}

// ScriptureRepository upserts imported books. Every method keys on natural
// identifiers (slug, canto number, chapter number, verse sort key), so
// re-running an import updates rows in place. Calls participate in the
// transaction stored in ctx, if any.
type ScriptureRepository interface {
	// UpsertBook inserts or updates a book by slug and sets book.ID
	UpsertBook(ctx context.Context, book *BookRecord) error

	// UpsertCanto inserts or updates a canto by (book, number) and returns its ID
	UpsertCanto(ctx context.Context, bookID string, number int) (string, error)

	// UpsertChapter inserts or updates a chapter by (book, canto, number) and sets rec.ID
	UpsertChapter(ctx context.Context, rec *ChapterRecord) error

	// UpsertVerses inserts or updates verses by (chapter, sort key).
	// Verses must already be de-duplicated by sort key.
	UpsertVerses(ctx context.Context, chapterID string, verses []scripture.Verse) error
}
