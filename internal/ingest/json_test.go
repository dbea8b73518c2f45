package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSON(t *testing.T) {
	in := strings.NewReader(`[
		{"name": "Revenue", "status": "G", "progress": 5, "target_value": 100.5},
		{"name": "Churn", "owner": "Bob"}
	]`)

	tbl, err := ReadJSON(in)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())

	// numbers arrive as float64
	v, ok := tbl.Cell("target_value", 0)
	require.True(t, ok)
	assert.Equal(t, 100.5, v)

	// key union: objects missing a key contribute nil cells
	v, ok = tbl.Cell("owner", 0)
	require.True(t, ok)
	assert.Nil(t, v)

	v, ok = tbl.Cell("owner", 1)
	require.True(t, ok)
	assert.Equal(t, "Bob", v)
}

func TestReadJSON_Invalid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestReadFile_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "kpis.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("name\nRevenue\n"), 0644))
	tbl, err := ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.NumRows())

	jsonPath := filepath.Join(dir, "kpis.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name":"Revenue"}]`), 0644))
	tbl, err = ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.NumRows())

	txtPath := filepath.Join(dir, "kpis.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0644))
	_, err = ReadFile(txtPath)
	assert.ErrorContains(t, err, "unsupported input format")
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
