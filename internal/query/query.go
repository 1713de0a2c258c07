// Package query is the filter/count/paginate engine shared by every list
// screen. Callers describe a table, a set of filters and a page; the engine
// builds one combined AND predicate, counts all matching rows and returns a
// single ordered page.
package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Op int

const (
	// OpEq matches the column exactly, including type.
	OpEq Op = iota
	// OpEqFold matches strings case-insensitively.
	OpEqFold
	// OpPrefixFold matches a case-insensitive prefix.
	OpPrefixFold
	// OpContainsFold matches a case-insensitive substring.
	OpContainsFold
	// OpBool coerces "true"/"false" (or a bool) and compares exactly.
	OpBool
	// OpExpr injects a raw SQL condition with placeholder args. Internal
	// callers only; Field carries the fragment, Value the arg slice.
	OpExpr
)

// Filter is one field/comparison/value triple. A filter whose value is nil
// or an empty string is inactive and does not constrain the result.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Table names a collection and whitelists its filterable fields. Filters
// naming a field outside Columns are rejected, never interpolated.
type Table struct {
	Name         string
	Columns      map[string]string
	DefaultOrder string
}

func (t Table) order() string {
	if t.DefaultOrder != "" {
		return t.DefaultOrder
	}
	return "id DESC"
}

type Result[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
}

func active(f Filter) bool {
	if f.Value == nil {
		return false
	}
	if s, ok := f.Value.(string); ok && s == "" {
		return false
	}
	return true
}

func whereClause(t Table, filters []Filter) (string, []any, error) {
	var conds []string
	var args []any

	for _, f := range filters {
		// OpExpr needs no value; only an empty fragment deactivates it.
		if f.Op == OpExpr {
			if f.Field == "" {
				continue
			}
			conds = append(conds, f.Field)
			if extra, ok := f.Value.([]any); ok {
				args = append(args, extra...)
			}
			continue
		}

		if !active(f) {
			continue
		}

		col, ok := t.Columns[f.Field]
		if !ok {
			return "", nil, fmt.Errorf("query: unknown filter field %q on %s", f.Field, t.Name)
		}

		switch f.Op {
		case OpEq:
			conds = append(conds, col+" = ?")
			args = append(args, f.Value)
		case OpEqFold:
			conds = append(conds, "LOWER("+col+") = ?")
			args = append(args, lowered(f.Value))
		case OpPrefixFold:
			conds = append(conds, "LOWER("+col+") LIKE ? ESCAPE '\\'")
			args = append(args, EscapeLike(lowered(f.Value))+"%")
		case OpContainsFold:
			conds = append(conds, "LOWER("+col+") LIKE ? ESCAPE '\\'")
			args = append(args, "%"+EscapeLike(lowered(f.Value))+"%")
		case OpBool:
			conds = append(conds, col+" = ?")
			args = append(args, boolValue(f.Value))
		default:
			return "", nil, fmt.Errorf("query: unsupported op %d", f.Op)
		}
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

// lowered folds the filter value once, before the scan.
func lowered(v any) string {
	s, _ := v.(string)
	return strings.ToLower(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutralizes LIKE metacharacters so a filter value always
// matches literally. Pair it with ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func boolValue(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	default:
		return false
	}
}

// Count evaluates the combined predicate over the entire collection.
func Count(ctx context.Context, q sqlx.QueryerContext, t Table, filters []Filter) (int, error) {
	where, args, err := whereClause(t, filters)
	if err != nil {
		return 0, err
	}

	var count int
	if err := sqlx.GetContext(ctx, q, &count, "SELECT COUNT(*) FROM "+t.Name+where, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// List returns one page of matching records plus the total match count.
// Pages are 1-based and clamped to 1; a page past the end yields an empty
// item list with the correct total. A pageSize of zero or less disables
// paging and returns the full ordered result.
func List[T any](ctx context.Context, q sqlx.QueryerContext, t Table, filters []Filter, page, pageSize int) (Result[T], error) {
	where, args, err := whereClause(t, filters)
	if err != nil {
		return Result[T]{}, err
	}

	var count int
	if err := sqlx.GetContext(ctx, q, &count, "SELECT COUNT(*) FROM "+t.Name+where, args...); err != nil {
		return Result[T]{}, err
	}

	stmt := "SELECT * FROM " + t.Name + where + " ORDER BY " + t.order()
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		stmt += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, (page-1)*pageSize)
	}

	items := []T{}
	if err := sqlx.SelectContext(ctx, q, &items, stmt, args...); err != nil {
		return Result[T]{}, err
	}

	return Result[T]{Items: items, TotalCount: count}, nil
}
