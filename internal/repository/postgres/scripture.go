package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vedaimport/internal/config"
	"vedaimport/internal/domain/models/scripture"
	"vedaimport/internal/domain/repositories"
)

// ScriptureRepository implements repositories.ScriptureRepository
type ScriptureRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewScriptureRepository creates a new scripture repository
func NewScriptureRepository(cfg *RepositoryConfig) repositories.ScriptureRepository {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ScriptureRepository{
		pool:   cfg.Pool,
		tables: cfg.Tables,
		logger: logger,
	}
}

// UpsertBook inserts or updates a book by slug
func (r *ScriptureRepository) UpsertBook(ctx context.Context, book *repositories.BookRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (slug, title_uk, title_en)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE
		SET title_uk = COALESCE(NULLIF(EXCLUDED.title_uk, ''), %[1]s.title_uk),
		    title_en = COALESCE(NULLIF(EXCLUDED.title_en, ''), %[1]s.title_en),
		    updated_at = NOW()
		RETURNING id
	`, r.tables.Books)

	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, book.Slug, book.TitleUK, book.TitleEN).Scan(&book.ID); err != nil {
		return wrapError("upsert book", "book", err)
	}
	return nil
}

// UpsertCanto inserts or updates a canto by (book, number)
func (r *ScriptureRepository) UpsertCanto(ctx context.Context, bookID string, number int) (string, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (book_id, canto_number)
		VALUES ($1, $2)
		ON CONFLICT (book_id, canto_number) DO UPDATE
		SET canto_number = EXCLUDED.canto_number
		RETURNING id
	`, r.tables.Cantos)

	var id string
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, bookID, number).Scan(&id); err != nil {
		return "", wrapError("upsert canto", "canto", err)
	}
	return id, nil
}

// UpsertChapter inserts or updates a chapter. Text chapters store content;
// verse chapters leave it NULL.
func (r *ScriptureRepository) UpsertChapter(ctx context.Context, rec *repositories.ChapterRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (book_id, canto_id, chapter_number, title_uk, title_en, chapter_type, content_uk)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (book_id, canto_id, chapter_number) DO UPDATE
		SET title_uk = EXCLUDED.title_uk,
		    title_en = COALESCE(NULLIF(EXCLUDED.title_en, ''), %[1]s.title_en),
		    chapter_type = EXCLUDED.chapter_type,
		    content_uk = EXCLUDED.content_uk,
		    updated_at = NOW()
		RETURNING id
	`, r.tables.Chapters)

	ch := rec.Chapter
	var content *string
	if ch.Type == scripture.ChapterTypeText {
		content = &ch.Content
	}

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		rec.BookID,
		rec.CantoID,
		ch.Number,
		ch.Title,
		ch.TitleEN,
		string(ch.Type),
		content,
	).Scan(&rec.ID)
	if err != nil {
		return wrapError("upsert chapter", "chapter", err)
	}
	return nil
}

// UpsertVerses writes verses in batches of config.PersistBatchSize.
func (r *ScriptureRepository) UpsertVerses(ctx context.Context, chapterID string, verses []scripture.Verse) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (chapter_id, verse_number, verse_number_sort, sanskrit, transliteration, synonyms, translation, commentary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (chapter_id, verse_number_sort) DO UPDATE
		SET verse_number = EXCLUDED.verse_number,
		    sanskrit = EXCLUDED.sanskrit,
		    transliteration = EXCLUDED.transliteration,
		    synonyms = EXCLUDED.synonyms,
		    translation = EXCLUDED.translation,
		    commentary = EXCLUDED.commentary,
		    updated_at = NOW()
	`, r.tables.Verses)

	executor := GetExecutor(ctx, r.pool)
	for start := 0; start < len(verses); start += config.PersistBatchSize {
		end := min(start+config.PersistBatchSize, len(verses))

		batch := &pgx.Batch{}
		for _, v := range verses[start:end] {
			number := v.Number.String()
			batch.Queue(query,
				chapterID,
				number,
				scripture.VerseSortKey(number),
				nullable(v.Sanskrit),
				nullable(v.Transliteration),
				nullable(v.Synonyms),
				nullable(v.Translation),
				nullable(v.Commentary),
			)
		}

		if err := executor.SendBatch(ctx, batch).Close(); err != nil {
			return wrapError("upsert verses", "verse", err)
		}

		r.logger.Debug("verse batch upserted",
			"chapter_id", chapterID,
			"from", start,
			"count", end-start,
		)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
