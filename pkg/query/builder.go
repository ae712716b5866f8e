package query

import (
	"sort"
	"strings"
)

// Insert builds a multi-row INSERT. The first row fixes the column set
// and order; every row must carry exactly those columns and only scalar
// (or nil) values. Rows are emitted in input order.
func Insert(table string, rows []map[string]any) (Statement, error) {
	return InsertReturning(table, rows, "")
}

// InsertReturning is Insert with a RETURNING clause on the named
// generated-key column, so the store can report the identifier the
// database assigned.
func InsertReturning(table string, rows []map[string]any, idColumn string) (Statement, error) {
	if len(rows) == 0 {
		return Statement{}, generationErrorf("insert into %s has no rows", table)
	}

	cols := make([]string, 0, len(rows[0]))
	for col := range rows[0] {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	args := &argList{}
	tuples := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(cols) {
			return Statement{}, generationErrorf("insert into %s: rows have differing column sets", table)
		}
		placeholders := make([]string, 0, len(cols))
		for _, col := range cols {
			v, ok := row[col]
			if !ok {
				return Statement{}, generationErrorf("insert into %s: row is missing column %q", table, col)
			}
			if v == nil {
				placeholders = append(placeholders, "NULL")
				continue
			}
			if !isScalar(v) {
				return Statement{}, generationErrorf("insert into %s: value of column %q is either list or dict", table, col)
			}
			placeholders = append(placeholders, args.bind(v))
		}
		tuples = append(tuples, "("+strings.Join(placeholders, ", ")+")")
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES ")
	b.WriteString(strings.Join(tuples, ", "))
	if idColumn != "" {
		b.WriteString(" RETURNING ")
		b.WriteString(idColumn)
	}

	return Statement{SQL: b.String(), Args: args.vals, Returning: idColumn}, nil
}

// Select builds a SELECT over table, which may be a pre-joined
// expression such as "accounts NATURAL JOIN distributors". An empty
// condition omits the WHERE clause entirely, distinguishing "no filter"
// from "filter on a falsy value".
func Select(table string, columns []string, cond Condition, groupBy ...string) (Statement, error) {
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(table)

	args := &argList{}
	if len(cond) > 0 {
		where, err := compileWhere(cond, args)
		if err != nil {
			return Statement{}, err
		}
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if len(groupBy) > 0 {
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(groupBy, ", "))
	}

	return Statement{SQL: b.String(), Args: args.vals}, nil
}

// Update builds an UPDATE. An empty condition updates every row in the
// table; callers must never omit the condition unintentionally.
func Update(table string, cond Condition, set Set) (Statement, error) {
	args := &argList{}
	assigns, err := compileSet(set, args)
	if err != nil {
		return Statement{}, err
	}

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	b.WriteString(assigns)

	if len(cond) > 0 {
		where, err := compileWhere(cond, args)
		if err != nil {
			return Statement{}, err
		}
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	return Statement{SQL: b.String(), Args: args.vals}, nil
}

// Delete builds a DELETE. As with Update, an empty condition matches
// every row.
func Delete(table string, cond Condition) (Statement, error) {
	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(table)

	args := &argList{}
	if len(cond) > 0 {
		where, err := compileWhere(cond, args)
		if err != nil {
			return Statement{}, err
		}
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	return Statement{SQL: b.String(), Args: args.vals}, nil
}
