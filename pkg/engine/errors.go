package engine

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the store distinguishes.
// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
	codeUndefinedTable      = "42P01"
	codeUndefinedColumn     = "42703"
	codeQueryCanceled       = "57014"
)

// DatabaseError reports a statement the engine rejected or failed.
// It is raised only after the enclosing batch has been rolled back.
type DatabaseError struct {
	Op     string // "execute", "query"
	Code   string // PostgreSQL error code, empty for driver-level failures
	Detail string
	Err    error
}

func (e *DatabaseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s failed: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// IsConstraintViolation reports whether the failure was a unique,
// foreign-key, not-null or check constraint rejection.
func (e *DatabaseError) IsConstraintViolation() bool {
	switch e.Code {
	case codeUniqueViolation, codeForeignKeyViolation, codeNotNullViolation, codeCheckViolation:
		return true
	}
	return false
}

// mapDatabaseError converts a pgx failure into a DatabaseError, pulling
// the code and detail out of the PgError when one is present.
func mapDatabaseError(err error, op string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return &DatabaseError{Op: op, Err: err}
	}

	detail := ""
	switch pgErr.Code {
	case codeUniqueViolation:
		detail = "unique constraint violation"
	case codeForeignKeyViolation:
		detail = "foreign key constraint violation"
	case codeNotNullViolation:
		detail = fmt.Sprintf("column %q must not be null", pgErr.ColumnName)
	case codeCheckViolation:
		detail = fmt.Sprintf("check constraint %q violated", pgErr.ConstraintName)
	case codeUndefinedTable:
		detail = "table does not exist, run migrations first"
	case codeUndefinedColumn:
		detail = "column does not exist"
	case codeQueryCanceled:
		detail = "query canceled"
	}

	return &DatabaseError{Op: op, Code: pgErr.Code, Detail: detail, Err: err}
}
