package pgstore

import (
	"fmt"
	"strings"
)

// RecursiveCTE assembles a WITH RECURSIVE clause from a base case and a
// recursive case. Placeholders are numbered across both cases in the order
// their arguments were added.
type RecursiveCTE struct {
	name          string
	columns       []string
	baseSQL       string
	baseArgs      []any
	recursiveSQL  string
	recursiveArgs []any
}

// NewRecursiveCTE creates a recursive CTE with the given name and columns.
func NewRecursiveCTE(name string, columns []string) *RecursiveCTE {
	return &RecursiveCTE{name: name, columns: columns}
}

// Base sets the non-recursive term.
func (r *RecursiveCTE) Base(sql string, args ...any) *RecursiveCTE {
	r.baseSQL = sql
	r.baseArgs = args
	return r
}

// Recurse sets the recursive term, which may reference the CTE by name.
func (r *RecursiveCTE) Recurse(sql string, args ...any) *RecursiveCTE {
	r.recursiveSQL = sql
	r.recursiveArgs = args
	return r
}

// SQL returns the WITH RECURSIVE clause and its combined argument list.
func (r *RecursiveCTE) SQL() (string, []any) {
	var columnsPart string
	if len(r.columns) > 0 {
		columnsPart = fmt.Sprintf(" (%s)", strings.Join(r.columns, ", "))
	}

	clause := fmt.Sprintf("WITH RECURSIVE %s%s AS (%s UNION ALL %s)",
		r.name,
		columnsPart,
		r.baseSQL,
		r.recursiveSQL,
	)

	args := make([]any, 0, len(r.baseArgs)+len(r.recursiveArgs))
	args = append(args, r.baseArgs...)
	args = append(args, r.recursiveArgs...)
	return clause, args
}
