package query

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// comparisonOps lists the recognized WHERE operators in the order they
// are emitted when several apply to one column.
var comparisonOps = []string{">", "<", ">=", "<=", "like", "ilike"}

var comparisonSQL = map[string]string{
	">":     ">",
	"<":     "<",
	">=":    ">=",
	"<=":    "<=",
	"like":  "LIKE",
	"ilike": "ILIKE",
}

// arithmeticOps lists the recognized SET operators for relative
// assignments (col = col <op> value).
var arithmeticOps = []string{"+", "-", "*", "/"}

// argList accumulates bound values and hands out $n placeholders.
type argList struct {
	vals []any
}

func (a *argList) bind(v any) string {
	a.vals = append(a.vals, v)
	return fmt.Sprintf("$%d", len(a.vals))
}

// isScalar reports whether v can be bound directly as a single value.
func isScalar(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time:
		return true
	}
	return false
}

// compileWhere translates a Condition into a WHERE predicate, binding
// values into args. Columns are sorted so the same condition always
// compiles to the same SQL.
func compileWhere(cond Condition, args *argList) (string, error) {
	cols := make([]string, 0, len(cond))
	for col := range cond {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	var parts []string
	for _, col := range cols {
		part, err := compileColumn(col, cond[col], args)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " AND "), nil
}

func compileColumn(col string, value any, args *argList) (string, error) {
	switch v := value.(type) {
	case nil:
		return col + " IS NULL", nil

	case Operators:
		return compileComparison(col, map[string]any(v), args)

	case Condition:
		return compileNested(col, map[string]any(v), args)

	case map[string]any:
		if hasComparisonKey(v) {
			return compileComparison(col, v, args)
		}
		return compileNested(col, v, args)

	case []Condition:
		return compileOrGroup(col, v, args)

	case []map[string]any:
		conds := make([]Condition, len(v))
		for i, m := range v {
			conds[i] = Condition(m)
		}
		return compileOrGroup(col, conds, args)

	case []any:
		return compileList(col, v, args)

	default:
		if isScalar(v) {
			return col + " = " + args.bind(v), nil
		}
		return "", generationErrorf("value of column %q is not in a supported format (%T)", col, value)
	}
}

// compileComparison handles operator maps like {">": a, "<": b}. The
// operators present for one column are ANDed. Mixing operator keys with
// plain column keys is ambiguous and rejected.
func compileComparison(col string, ops map[string]any, args *argList) (string, error) {
	for key := range ops {
		if _, ok := comparisonSQL[key]; !ok {
			return "", generationErrorf("column %q mixes comparison operators with key %q", col, key)
		}
	}
	var parts []string
	for _, op := range comparisonOps {
		operand, ok := ops[op]
		if !ok {
			continue
		}
		if !isScalar(operand) {
			return "", generationErrorf("operand of %q on column %q is not a scalar", op, col)
		}
		parts = append(parts, fmt.Sprintf("%s %s %s", col, comparisonSQL[op], args.bind(operand)))
	}
	if len(parts) == 0 {
		return "", generationErrorf("column %q has an empty operator map", col)
	}
	return strings.Join(parts, " AND "), nil
}

// compileNested treats the map itself as a Condition and flattens it
// into the enclosing AND chain without parentheses.
func compileNested(col string, nested map[string]any, args *argList) (string, error) {
	if len(nested) == 0 {
		return "", generationErrorf("column %q has an empty nested condition", col)
	}
	if hasComparisonKey(nested) {
		// Some keys are operators, some are not: ambiguous.
		return "", generationErrorf("column %q mixes comparison operators with nested columns", col)
	}
	return compileWhere(Condition(nested), args)
}

// compileOrGroup ORs the AND-chain of each element, preserving input
// order, and wraps the whole group in parentheses.
func compileOrGroup(col string, group []Condition, args *argList) (string, error) {
	if len(group) == 0 {
		return "", generationErrorf("column %q has an empty OR-group", col)
	}
	alts := make([]string, 0, len(group))
	for _, alt := range group {
		part, err := compileWhere(alt, args)
		if err != nil {
			return "", err
		}
		alts = append(alts, "("+part+")")
	}
	return "(" + strings.Join(alts, " OR ") + ")", nil
}

// compileList builds an IN-list from scalars, or dispatches to an
// OR-group when every element is itself a condition.
func compileList(col string, list []any, args *argList) (string, error) {
	if len(list) == 0 {
		return "", generationErrorf("column %q has an empty IN-list", col)
	}
	if conds, ok := asConditionList(list); ok {
		return compileOrGroup(col, conds, args)
	}
	placeholders := make([]string, 0, len(list))
	for _, item := range list {
		if !isScalar(item) {
			return "", generationErrorf("IN-list for column %q contains a non-scalar value (%T)", col, item)
		}
		placeholders = append(placeholders, args.bind(item))
	}
	return col + " IN (" + strings.Join(placeholders, ", ") + ")", nil
}

func asConditionList(list []any) ([]Condition, bool) {
	conds := make([]Condition, 0, len(list))
	for _, item := range list {
		switch m := item.(type) {
		case Condition:
			conds = append(conds, m)
		case map[string]any:
			conds = append(conds, Condition(m))
		default:
			return nil, false
		}
	}
	return conds, true
}

func hasComparisonKey(m map[string]any) bool {
	for key := range m {
		if _, ok := comparisonSQL[key]; ok {
			return true
		}
	}
	return false
}

func hasArithmeticKey(m map[string]any) bool {
	for _, op := range arithmeticOps {
		if _, ok := m[op]; ok {
			return true
		}
	}
	return false
}

// compileSet translates a Set into UPDATE assignments. Columns are
// sorted for deterministic output.
func compileSet(set Set, args *argList) (string, error) {
	if len(set) == 0 {
		return "", generationErrorf("update has no assignments")
	}
	cols := make([]string, 0, len(set))
	for col := range set {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	var parts []string
	for _, col := range cols {
		switch v := set[col].(type) {
		case Operators:
			assigns, err := compileArithmetic(col, map[string]any(v), args)
			if err != nil {
				return "", err
			}
			parts = append(parts, assigns...)

		case map[string]any:
			if !hasArithmeticKey(v) {
				return "", generationErrorf("column %q has a map value without arithmetic operators", col)
			}
			assigns, err := compileArithmetic(col, v, args)
			if err != nil {
				return "", err
			}
			parts = append(parts, assigns...)

		default:
			if isList(v) {
				return "", generationErrorf("list value not supported in update of column %q", col)
			}
			if v == nil {
				parts = append(parts, col+" = NULL")
				continue
			}
			if !isScalar(v) {
				return "", generationErrorf("value of column %q is not in a supported format (%T)", col, v)
			}
			parts = append(parts, col+" = "+args.bind(v))
		}
	}
	return strings.Join(parts, ", "), nil
}

// compileArithmetic emits col = col <op> $n for each operator present,
// in the fixed + - * / order.
func compileArithmetic(col string, ops map[string]any, args *argList) ([]string, error) {
	for key := range ops {
		found := false
		for _, op := range arithmeticOps {
			if key == op {
				found = true
				break
			}
		}
		if !found {
			return nil, generationErrorf("column %q mixes arithmetic operators with key %q", col, key)
		}
	}
	var parts []string
	for _, op := range arithmeticOps {
		operand, ok := ops[op]
		if !ok {
			continue
		}
		if !isScalar(operand) {
			return nil, generationErrorf("operand of %q on column %q is not a scalar", op, col)
		}
		parts = append(parts, fmt.Sprintf("%s = %s %s %s", col, col, op, args.bind(operand)))
	}
	if len(parts) == 0 {
		return nil, generationErrorf("column %q has an empty operator map", col)
	}
	return parts, nil
}

func isList(v any) bool {
	switch v.(type) {
	case []any, []string, []int, []int64, []float64, []Condition, []map[string]any:
		return true
	}
	return false
}
