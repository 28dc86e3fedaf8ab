package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL for the import tables with prefixed names.
func Schema(tables *TableNames) string {
	return strings.NewReplacer(
		"{{books}}", tables.Books,
		"{{cantos}}", tables.Cantos,
		"{{chapters}}", tables.Chapters,
		"{{verses}}", tables.Verses,
	).Replace(schemaSQL)
}

// EnsureSchema creates the import tables when they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	if _, err := pool.Exec(ctx, Schema(tables)); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
