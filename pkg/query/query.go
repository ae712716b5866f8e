// Package query builds parameterized SQL statements from structured
// filter and update descriptions. It owns no connection: every function
// returns a Statement for pkg/engine to execute, which lets handlers
// assemble several statements before committing any of them.
package query

import "fmt"

// Statement is a single parameterized SQL statement.
type Statement struct {
	// SQL uses $1..$n placeholders.
	SQL  string
	Args []any

	// Returning names the generated-key column to report after an
	// INSERT, or is empty when the statement generates no identifier.
	Returning string
}

// Condition describes a WHERE predicate as column → filter value.
//
// Supported values per column:
//   - scalar          → col = $n
//   - nil             → col IS NULL
//   - []any (scalars) → col IN ($n, ...)
//   - []Condition     → OR-group: ((a=$1 AND b=$2) OR (a=$3 AND b=$4))
//   - Operators       → comparison predicates (>, <, >=, <=, like, ilike)
//   - Condition       → nested condition, flattened into the AND chain
//
// Top-level columns are ANDed. A value of any other type fails with
// GenerationError.
type Condition map[string]any

// Operators maps a comparison or arithmetic operator to its operand, e.g.
// {">": "2022-01-01", "<": "2022-03-03"} or {"+": 420}.
type Operators map[string]any

// Set describes UPDATE assignments as column → value. A scalar assigns
// directly; Operators keyed by + - * / assign relative to the current
// column value (col = col + $n). Lists are rejected: updates are flat.
type Set map[string]any

// GenerationError reports a condition, update or row shape that violates
// the builder's structural rules. It is raised before any statement
// reaches the database and is never retried.
type GenerationError struct {
	Reason string
}

func (e *GenerationError) Error() string {
	return "query generation failed: " + e.Reason
}

func generationErrorf(format string, args ...any) error {
	return &GenerationError{Reason: fmt.Sprintf(format, args...)}
}
