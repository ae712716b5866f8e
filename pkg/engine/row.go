package engine

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Row represents a single result row as a map of column name → value.
// Values carry the driver's types: string, int64, int32, float64, bool,
// nil, time.Time, and pgtype.Numeric for NUMERIC columns.
type Row map[string]any

// Get returns the value of a column
func (r Row) Get(column string) any {
	return r[column]
}

// String returns the string value of a column, or empty string if not found
func (r Row) String(column string) string {
	v, ok := r[column]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	return s
}

// Int returns the int64 value of a column, or 0 if not found/not numeric
func (r Row) Int(column string) int64 {
	v, ok := r[column]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case pgtype.Numeric:
		f, err := n.Float64Value()
		if err != nil || !f.Valid {
			return 0
		}
		return int64(f.Float64)
	default:
		return 0
	}
}

// Float returns the float64 value of a column, or 0 if not found/not
// numeric. NUMERIC columns arrive from the driver as pgtype.Numeric;
// string representations are parsed.
func (r Row) Float(column string) float64 {
	v, ok := r[column]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case pgtype.Numeric:
		f, err := n.Float64Value()
		if err != nil || !f.Valid {
			return 0
		}
		return f.Float64
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case int:
		return float64(n)
	case string:
		var f float64
		if _, err := fmt.Sscanf(n, "%g", &f); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

// Time returns the time.Time value of a column, or the zero time
func (r Row) Time(column string) time.Time {
	v, ok := r[column]
	if !ok {
		return time.Time{}
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}
	}
	return t
}

// IsNull reports whether the column is absent or NULL
func (r Row) IsNull(column string) bool {
	v, ok := r[column]
	return !ok || v == nil
}
