package ingest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/pulseboard/internal/tabular"
)

// ReadJSON parses a JSON array of flat objects into a table. The column set
// is the union of all object keys; objects missing a key contribute a nil
// cell, which the validator repairs with that column's default.
func ReadJSON(r io.Reader) (*tabular.Table, error) {
	var rows []map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding json input: %w", err)
	}

	keys := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			keys[k] = true
		}
	}

	columns := make(map[string][]any, len(keys))
	for k := range keys {
		cells := make([]any, len(rows))
		for i, row := range rows {
			if v, ok := row[k]; ok {
				cells[i] = normalizeJSONValue(v)
			}
		}
		columns[k] = cells
	}

	t, err := tabular.New(columns)
	if err != nil {
		return nil, fmt.Errorf("building table from json: %w", err)
	}
	return t, nil
}

// normalizeJSONValue converts json.Number cells to float64 so the validator
// sees the same numeric types regardless of input format.
func normalizeJSONValue(v any) any {
	if n, ok := v.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	}
	return v
}
