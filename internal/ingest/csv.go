package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/pulseboard/internal/tabular"
)

// ReadCSV parses a CSV stream into a table. The first row is the header;
// header names are matched case-insensitively by the table layer. Every cell
// arrives as a string and is coerced during validation, so a CSV never
// carries nil cells, only empty strings.
func ReadCSV(r io.Reader) (*tabular.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Ragged rows are padded (or truncated) to the header width; the
	// validator repairs the resulting empty cells.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return tabular.New(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	columns := make(map[string][]any, len(header))
	for _, name := range header {
		columns[name] = nil
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}
		for i, name := range header {
			var cell any
			if i < len(row) {
				cell = row[i]
			} else {
				cell = ""
			}
			columns[name] = append(columns[name], cell)
		}
	}

	t, err := tabular.New(columns)
	if err != nil {
		return nil, fmt.Errorf("building table from csv: %w", err)
	}
	return t, nil
}
