package tabular

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrRaggedColumns is returned when input columns have differing lengths.
// This is the one structural defect the analytics core refuses to repair:
// per-value problems are always recovered with defaults, but a non-tabular
// shape must be fixed by the ingestion collaborator.
var ErrRaggedColumns = errors.New("tabular: columns have differing lengths")

// Table is a column-oriented table with arbitrary, unordered column names and
// untyped cells. It is the boundary type handed over by ingestion
// collaborators (spreadsheet and document parsers).
type Table struct {
	columns []string
	cells   map[string][]any
	rows    int
}

// New builds a Table from named columns. Column names are normalized to
// lower case; all columns must share the same length.
func New(columns map[string][]any) (*Table, error) {
	t := &Table{cells: make(map[string][]any, len(columns))}

	first := true
	for name, col := range columns {
		if first {
			t.rows = len(col)
			first = false
		} else if len(col) != t.rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				ErrRaggedColumns, name, len(col), t.rows)
		}
		key := strings.ToLower(strings.TrimSpace(name))
		t.cells[key] = col
	}

	t.columns = make([]string, 0, len(t.cells))
	for name := range t.cells {
		t.columns = append(t.columns, name)
	}
	sort.Strings(t.columns)

	return t, nil
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return t.rows
}

// Columns returns the normalized column names in sorted order.
func (t *Table) Columns() []string {
	return t.columns
}

// HasColumn reports whether the table carries the given column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cells[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Cell returns the value at (column, row). The second return is false when
// the column is absent or the row index is out of range.
func (t *Table) Cell(column string, row int) (any, bool) {
	col, ok := t.cells[strings.ToLower(strings.TrimSpace(column))]
	if !ok || row < 0 || row >= len(col) {
		return nil, false
	}
	return col[row], true
}
