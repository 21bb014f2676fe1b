package trainlog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// ParseFile reads and parses one training log.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

// Parse reads a training log from r. The first record is the header; all
// records must have the same field count (csv.ErrFieldCount otherwise, which
// is the row-shape failure callers treat as fatal for the file). Cells are
// whitespace-trimmed. Each column is coerced to float64 only when every one
// of its cells parses; a single bad cell keeps the whole column textual.
func Parse(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, bom)
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty log")
	}

	labels := make([]string, len(records[0]))
	for i, cell := range records[0] {
		labels[i] = strings.TrimSpace(cell)
	}
	rows := records[1:]

	t := &Table{Labels: labels, Columns: make(map[string]Column, len(labels))}
	for i, label := range labels {
		cells := make([]string, len(rows))
		for j, row := range rows {
			cells[j] = strings.TrimSpace(row[i])
		}
		t.Columns[label] = coerce(cells)
	}
	return t, nil
}

// coerce attempts the all-or-nothing numeric conversion for one column.
// An empty column (header-only log) coerces to an empty numeric column.
func coerce(cells []string) Column {
	floats := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Column{Kind: Text, Strings: cells}
		}
		floats[i] = v
	}
	return Column{Kind: Numeric, Floats: floats}
}
