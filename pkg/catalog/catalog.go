// Package catalog declares the persisted schema as data: every table
// the handlers touch, with its ordered columns and constraints. The
// query layer treats these descriptors as configuration, never as
// logic, and the migrate command generates DDL from them.
package catalog

import "strings"

// Column describes one table column.
type Column struct {
	Name       string
	Type       string
	Constraint string
}

// Table describes one table. SerialKey names the auto-generated
// identifier column, or is empty when the table has none.
type Table struct {
	Name      string
	Columns   []Column
	SerialKey string
}

// ColumnNames returns the declared column names in order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// HasColumn reports whether the table declares the named column.
func (t Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col.Name == name {
			return true
		}
	}
	return false
}

// DDL renders the CREATE TABLE statement for the table.
func (t Table) DDL() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(t.Name)
	b.WriteString(" (\n")
	for i, col := range t.Columns {
		b.WriteString("    ")
		b.WriteString(col.Name)
		b.WriteString(" ")
		b.WriteString(col.Type)
		if col.Constraint != "" {
			b.WriteString(" ")
			b.WriteString(col.Constraint)
		}
		if i < len(t.Columns)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");")
	return b.String()
}

// DDL renders the CREATE TABLE statements for the whole schema, in
// dependency order.
func DDL() string {
	stmts := make([]string, len(All))
	for i, t := range All {
		stmts[i] = t.DDL()
	}
	return strings.Join(stmts, "\n\n")
}

// Lookup returns the table descriptor by name.
func Lookup(name string) (Table, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
