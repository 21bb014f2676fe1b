// Package trainlog parses per-run training logs into columnar tables.
//
// A training log is plain comma-separated text: the first line names the
// columns, every following line is one cycle's worth of metrics. Columns are
// independently coerced to float64 when every cell in them parses as a number;
// anything else stays text. No schema is imposed beyond that — chart builders
// look columns up by label and fail when one is missing.
package trainlog

import "fmt"

// ColumnKind tags a column as numeric or textual.
type ColumnKind int

const (
	Numeric ColumnKind = iota
	Text
)

func (k ColumnKind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "text"
}

// Column holds one column of a parsed log. Exactly one of Floats/Strings is
// populated, selected by Kind.
type Column struct {
	Kind    ColumnKind
	Floats  []float64
	Strings []string
}

// Len returns the number of cells in the column.
func (c Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// Table is a parsed training log: header labels in file order plus the
// per-label columns. Duplicate header labels overwrite earlier ones in
// Columns; Labels keeps every occurrence.
type Table struct {
	Labels  []string
	Columns map[string]Column
}

// Rows returns the number of data rows in the table.
func (t *Table) Rows() int {
	for _, label := range t.Labels {
		return t.Columns[label].Len()
	}
	return 0
}

// MissingColumnError reports a lookup of a label the log does not contain.
type MissingColumnError struct {
	Label string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("log has no column %q", e.Label)
}

// NotNumericError reports a numeric lookup of a column that stayed textual.
type NotNumericError struct {
	Label string
}

func (e *NotNumericError) Error() string {
	return fmt.Sprintf("column %q is not numeric", e.Label)
}

// Numeric returns the named column as floats, or an error when the column is
// absent or textual.
func (t *Table) Numeric(label string) ([]float64, error) {
	col, ok := t.Columns[label]
	if !ok {
		return nil, &MissingColumnError{Label: label}
	}
	if col.Kind != Numeric {
		return nil, &NotNumericError{Label: label}
	}
	return col.Floats, nil
}
