// File: internal/core/assignments.go
package core

import (
	"fmt"
	"strings"
)

// Assignments collects the SET pairs of a single-row UPDATE in call order.
type Assignments struct {
	cols []string
	args []interface{}
}

// Set adds column = value.
func (a *Assignments) Set(col string, val interface{}) *Assignments {
	a.cols = append(a.cols, col)
	a.args = append(a.args, val)
	return a
}

// SetIf adds column = *val when val is non-nil.
func SetIf[T any](a *Assignments, col string, val *T) *Assignments {
	if val != nil {
		a.Set(col, *val)
	}
	return a
}

// Len returns the number of assignments.
func (a *Assignments) Len() int {
	return len(a.cols)
}

// Update assembles "UPDATE table SET c1 = $1, ... WHERE key = $n;" and its args.
// It returns an empty query when nothing was set.
func (a *Assignments) Update(table, keyCol string, key interface{}) (string, []interface{}) {
	if len(a.cols) == 0 {
		return "", nil
	}
	sets := make([]string, len(a.cols))
	for i, c := range a.cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	parts := []string{
		"UPDATE", table,
		"SET", strings.Join(sets, ", "),
		"WHERE", fmt.Sprintf("%s = $%d;", keyCol, len(a.cols)+1),
	}
	args := make([]interface{}, 0, len(a.args)+1)
	args = append(args, a.args...)
	args = append(args, key)
	return strings.Join(parts, " "), args
}
