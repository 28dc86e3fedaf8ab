package postgres

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"vedaimport/internal/domain"
)

func TestNewTableNames(t *testing.T) {
	tables := NewTableNames("test_")
	assert.Equal(t, "test_books", tables.Books)
	assert.Equal(t, "test_cantos", tables.Cantos)
	assert.Equal(t, "test_chapters", tables.Chapters)
	assert.Equal(t, "test_verses", tables.Verses)
}

func TestSchema(t *testing.T) {
	ddl := Schema(NewTableNames("dev_"))

	assert.NotContains(t, ddl, "{{")
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS dev_books")
	assert.Contains(t, ddl, "REFERENCES dev_chapters(id)")
	assert.Contains(t, ddl, "UNIQUE (chapter_id, verse_number_sort)")
	assert.Equal(t, 4, strings.Count(ddl, "CREATE TABLE"))
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   error
	}{
		{"duplicate", &pgconn.PgError{Code: "23505"}, domain.ErrConflict},
		{"foreign key", &pgconn.PgError{Code: "23503"}, domain.ErrValidation},
		{"check", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"not null", &pgconn.PgError{Code: "23502"}, domain.ErrValidation},
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, wrapError("upsert book", "book", tt.err), tt.is)
		})
	}

	other := errors.New("connection reset")
	wrapped := wrapError("upsert verses", "verse", other)
	assert.ErrorIs(t, wrapped, other)
	assert.EqualError(t, wrapped, "upsert verses: connection reset")
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	if assert.NotNil(t, nullable("x")) {
		assert.Equal(t, "x", *nullable("x"))
	}
}
