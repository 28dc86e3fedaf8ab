package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"vedaimport/internal/domain"
)

// SQLSTATE codes mapped to domain errors
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// pgCode returns the SQLSTATE of a server error, or ""
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsPgDuplicateError reports a unique constraint violation
func IsPgDuplicateError(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// IsPgNoRowsError reports an empty QueryRow result
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsPgForeignKeyError reports a foreign key violation
func IsPgForeignKeyError(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// isPgConstraintError reports a CHECK or NOT NULL violation, i.e. a row the
// schema rejects outright
func isPgConstraintError(err error) bool {
	code := pgCode(err)
	return code == codeCheckViolation || code == codeNotNullViolation
}

// wrapError converts driver errors into domain errors where one fits
func wrapError(op, resource string, err error) error {
	switch {
	case IsPgDuplicateError(err):
		return &domain.ConflictError{
			Message:      fmt.Sprintf("%s: %s already exists", op, resource),
			ResourceType: resource,
		}
	case IsPgForeignKeyError(err):
		return &domain.ValidationError{Message: fmt.Sprintf("%s: %s references a missing row", op, resource)}
	case isPgConstraintError(err):
		return &domain.ValidationError{Message: fmt.Sprintf("%s: invalid %s", op, resource)}
	case IsPgNoRowsError(err):
		return &domain.NotFoundError{Message: fmt.Sprintf("%s: %s not found", op, resource)}
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
