package catalog

import (
	"strings"
	"testing"
)

func TestAll_NamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, table := range All {
		if seen[table.Name] {
			t.Errorf("Duplicate table name %q", table.Name)
		}
		seen[table.Name] = true
	}
}

func TestAll_SerialKeyIsDeclared(t *testing.T) {
	for _, table := range All {
		if table.SerialKey == "" {
			continue
		}
		if !table.HasColumn(table.SerialKey) {
			t.Errorf("Table %q: serial key %q is not a declared column", table.Name, table.SerialKey)
		}
	}
}

func TestAll_DependencyOrder(t *testing.T) {
	index := map[string]int{}
	for i, table := range All {
		index[table.Name] = i
	}

	// Referenced tables must be created before their dependents.
	deps := map[string]string{
		"accounts":               "distributors",
		"account_bills":          "accounts",
		"account_payments":       "accounts",
		"orders":                 "accounts",
		"book_orders_info":       "orders",
		"periodical_orders_info": "orders",
		"books":                  "publications",
		"periodicals":            "publications",
		"chapters":               "publications",
		"articles":               "publications",
		"authors":                "employees",
		"editors":                "employees",
		"salary_payments":        "employees",
	}
	for dependent, required := range deps {
		di, ok := index[dependent]
		if !ok {
			t.Fatalf("Table %q missing from All", dependent)
		}
		ri, ok := index[required]
		if !ok {
			t.Fatalf("Table %q missing from All", required)
		}
		if ri > di {
			t.Errorf("Table %q must be created before %q", required, dependent)
		}
	}
}

func TestTableDDL(t *testing.T) {
	table, ok := Lookup("distributors")
	if !ok {
		t.Fatal("distributors table not declared")
	}

	ddl := table.DDL()
	if !strings.HasPrefix(ddl, "CREATE TABLE IF NOT EXISTS distributors (") {
		t.Errorf("Unexpected DDL header: %q", ddl)
	}
	if !strings.Contains(ddl, "distributor_id serial") {
		t.Errorf("Expected serial primary key, got: %q", ddl)
	}
	if !strings.Contains(ddl, "is_active boolean") {
		t.Errorf("Expected is_active flag, got: %q", ddl)
	}
	if !strings.HasSuffix(ddl, ");") {
		t.Errorf("DDL must be terminated: %q", ddl)
	}
}

func TestDDL_CoversEveryTable(t *testing.T) {
	ddl := DDL()
	for _, table := range All {
		if !strings.Contains(ddl, "CREATE TABLE IF NOT EXISTS "+table.Name+" (") {
			t.Errorf("Schema DDL is missing table %q", table.Name)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("no_such_table"); ok {
		t.Error("Expected lookup miss for unknown table")
	}
}
