package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/tabular"
)

// ReadFile loads a KPI table from a CSV or JSON file, dispatching on the
// file extension.
func ReadFile(path string) (*tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(f)
	case ".json":
		return ReadJSON(f)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .csv or .json)", ext)
	}
}

// Reader parses one input format into a table.
type Reader func(io.Reader) (*tabular.Table, error)
