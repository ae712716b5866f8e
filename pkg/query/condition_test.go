package query

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func compile(t *testing.T, cond Condition) (string, []any) {
	t.Helper()
	args := &argList{}
	where, err := compileWhere(cond, args)
	if err != nil {
		t.Fatalf("compileWhere failed: %v", err)
	}
	return where, args.vals
}

func TestCompileWhere_Scalar(t *testing.T) {
	where, args := compile(t, Condition{"account_id": 7})

	if where != "account_id = $1" {
		t.Errorf("Expected 'account_id = $1', got %q", where)
	}
	if !reflect.DeepEqual(args, []any{7}) {
		t.Errorf("Expected args [7], got %v", args)
	}
}

func TestCompileWhere_ColumnsSorted(t *testing.T) {
	where, args := compile(t, Condition{
		"name":           "Barnes",
		"city":           "Raleigh",
		"distributor_id": 3,
	})

	expected := "city = $1 AND distributor_id = $2 AND name = $3"
	if where != expected {
		t.Errorf("Expected %q, got %q", expected, where)
	}
	if !reflect.DeepEqual(args, []any{"Raleigh", 3, "Barnes"}) {
		t.Errorf("Unexpected arg order: %v", args)
	}
}

func TestCompileWhere_NilIsNull(t *testing.T) {
	where, args := compile(t, Condition{"received_date": nil})

	if where != "received_date IS NULL" {
		t.Errorf("Expected 'received_date IS NULL', got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("IS NULL should bind nothing, got %v", args)
	}
}

func TestCompileWhere_InList(t *testing.T) {
	where, args := compile(t, Condition{"city": []any{"Durham", "Raleigh", "Cary"}})

	if where != "city IN ($1, $2, $3)" {
		t.Errorf("Expected IN-list, got %q", where)
	}
	if !reflect.DeepEqual(args, []any{"Durham", "Raleigh", "Cary"}) {
		t.Errorf("IN-list args out of order: %v", args)
	}
}

func TestCompileWhere_OperatorMap(t *testing.T) {
	where, args := compile(t, Condition{
		"order_date": Operators{"<": "2021-04-01", ">": "2021-01-01"},
	})

	// Operators on one column are ANDed in fixed order.
	expected := "order_date > $1 AND order_date < $2"
	if where != expected {
		t.Errorf("Expected %q, got %q", expected, where)
	}
	if !reflect.DeepEqual(args, []any{"2021-01-01", "2021-04-01"}) {
		t.Errorf("Unexpected args: %v", args)
	}
}

func TestCompileWhere_LikeOperators(t *testing.T) {
	where, _ := compile(t, Condition{"name": Operators{"like": "B%"}})
	if where != "name LIKE $1" {
		t.Errorf("Expected LIKE, got %q", where)
	}

	where, _ = compile(t, Condition{"name": Operators{"ilike": "b%"}})
	if where != "name ILIKE $1" {
		t.Errorf("Expected ILIKE, got %q", where)
	}
}

func TestCompileWhere_TimeOperand(t *testing.T) {
	cutoff := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	where, args := compile(t, Condition{"order_date": Operators{">": cutoff}})

	if where != "order_date > $1" {
		t.Errorf("Expected 'order_date > $1', got %q", where)
	}
	if !args[0].(time.Time).Equal(cutoff) {
		t.Errorf("Expected bound time %v, got %v", cutoff, args[0])
	}
}

func TestCompileWhere_OrGroupPreservesOrder(t *testing.T) {
	where, args := compile(t, Condition{
		"items": []Condition{
			{"title": "Dune", "edition": 2},
			{"title": "Emma", "edition": 1},
		},
	})

	expected := "((edition = $1 AND title = $2) OR (edition = $3 AND title = $4))"
	if where != expected {
		t.Errorf("Expected %q, got %q", expected, where)
	}
	if !reflect.DeepEqual(args, []any{2, "Dune", 1, "Emma"}) {
		t.Errorf("OR-group args out of order: %v", args)
	}
}

func TestCompileWhere_OrGroupFromAnySlice(t *testing.T) {
	where, _ := compile(t, Condition{
		"items": []any{
			map[string]any{"title": "Dune"},
			map[string]any{"title": "Emma"},
		},
	})

	expected := "((title = $1) OR (title = $2))"
	if where != expected {
		t.Errorf("Expected %q, got %q", expected, where)
	}
}

func TestCompileWhere_OrGroupCombinesWithScalars(t *testing.T) {
	where, args := compile(t, Condition{
		"is_available": true,
		"items": []Condition{
			{"title": "Dune"},
		},
	})

	expected := "is_available = $1 AND ((title = $2))"
	if where != expected {
		t.Errorf("Expected %q, got %q", expected, where)
	}
	if !reflect.DeepEqual(args, []any{true, "Dune"}) {
		t.Errorf("Unexpected args: %v", args)
	}
}

func TestCompileWhere_NestedConditionFlattens(t *testing.T) {
	where, _ := compile(t, Condition{
		"account": Condition{"account_id": 1, "is_active": true},
	})

	// Plain nested maps join the enclosing AND chain unparenthesized.
	expected := "account_id = $1 AND is_active = $2"
	if where != expected {
		t.Errorf("Expected %q, got %q", expected, where)
	}
}

func TestCompileWhere_Errors(t *testing.T) {
	cases := []struct {
		name string
		cond Condition
	}{
		{"unsupported value type", Condition{"col": struct{}{}}},
		{"empty operator map", Condition{"col": Operators{}}},
		{"mixed operator and column keys", Condition{"col": map[string]any{">": 1, "name": "x"}}},
		{"non-scalar operand", Condition{"col": Operators{">": []any{1}}}},
		{"empty IN-list", Condition{"col": []any{}}},
		{"non-scalar IN-list element", Condition{"col": []any{1, []any{2}}}},
		{"empty OR-group", Condition{"col": []Condition{}}},
		{"empty nested condition", Condition{"col": map[string]any{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := &argList{}
			_, err := compileWhere(tc.cond, args)
			if err == nil {
				t.Fatal("Expected error")
			}
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Errorf("Expected GenerationError, got %T: %v", err, err)
			}
		})
	}
}

func TestCompileSet_Scalars(t *testing.T) {
	args := &argList{}
	assigns, err := compileSet(Set{"city": "Durham", "name": "Barnes"}, args)
	if err != nil {
		t.Fatalf("compileSet failed: %v", err)
	}

	if assigns != "city = $1, name = $2" {
		t.Errorf("Expected sorted assignments, got %q", assigns)
	}
	if !reflect.DeepEqual(args.vals, []any{"Durham", "Barnes"}) {
		t.Errorf("Unexpected args: %v", args.vals)
	}
}

func TestCompileSet_Arithmetic(t *testing.T) {
	args := &argList{}
	assigns, err := compileSet(Set{"balance": Operators{"+": 106.0}}, args)
	if err != nil {
		t.Fatalf("compileSet failed: %v", err)
	}

	if assigns != "balance = balance + $1" {
		t.Errorf("Expected relative assignment, got %q", assigns)
	}
	if !reflect.DeepEqual(args.vals, []any{106.0}) {
		t.Errorf("Unexpected args: %v", args.vals)
	}
}

func TestCompileSet_ArithmeticOperatorOrder(t *testing.T) {
	args := &argList{}
	assigns, err := compileSet(Set{"balance": Operators{"*": 2, "-": 5}}, args)
	if err != nil {
		t.Fatalf("compileSet failed: %v", err)
	}

	expected := "balance = balance - $1, balance = balance * $2"
	if assigns != expected {
		t.Errorf("Expected %q, got %q", expected, assigns)
	}
}

func TestCompileSet_NullAssignment(t *testing.T) {
	args := &argList{}
	assigns, err := compileSet(Set{"received_date": nil}, args)
	if err != nil {
		t.Fatalf("compileSet failed: %v", err)
	}

	if assigns != "received_date = NULL" {
		t.Errorf("Expected NULL assignment, got %q", assigns)
	}
	if len(args.vals) != 0 {
		t.Errorf("NULL assignment should bind nothing, got %v", args.vals)
	}
}

func TestCompileSet_Errors(t *testing.T) {
	cases := []struct {
		name    string
		set     Set
		wantMsg string
	}{
		{"empty set", Set{}, "no assignments"},
		{"list value", Set{"col": []any{1, 2}}, "list value not supported"},
		{"non-arithmetic map", Set{"col": map[string]any{"like": "x"}}, "without arithmetic operators"},
		{"mixed arithmetic keys", Set{"col": Operators{"+": 1, "bogus": 2}}, "mixes arithmetic operators"},
		{"empty arithmetic map", Set{"col": Operators{}}, "empty operator map"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := &argList{}
			_, err := compileSet(tc.set, args)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("Expected error containing %q, got: %v", tc.wantMsg, err)
			}
		})
	}
}
