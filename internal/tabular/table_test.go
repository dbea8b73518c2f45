package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NormalizesColumnNames(t *testing.T) {
	tbl, err := New(map[string][]any{
		"  Name ":  {"a", "b"},
		"PROJECT":  {"x", "y"},
		"progress": {1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []string{"name", "progress", "project"}, tbl.Columns())
	assert.True(t, tbl.HasColumn("Name"))
	assert.True(t, tbl.HasColumn(" project "))
}

func TestNew_RaggedColumns(t *testing.T) {
	_, err := New(map[string][]any{
		"name":   {"a", "b"},
		"status": {"G"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRaggedColumns)
}

func TestNew_Empty(t *testing.T) {
	tbl, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NumRows())
	assert.Empty(t, tbl.Columns())
}

func TestCell(t *testing.T) {
	tbl, err := New(map[string][]any{
		"name": {"a", nil},
	})
	require.NoError(t, err)

	v, ok := tbl.Cell("NAME", 0)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	// nil cell is present, just empty
	v, ok = tbl.Cell("name", 1)
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = tbl.Cell("name", 2)
	assert.False(t, ok)

	_, ok = tbl.Cell("missing", 0)
	assert.False(t, ok)
}

func TestNumRows_NilTable(t *testing.T) {
	var tbl *Table
	assert.Equal(t, 0, tbl.NumRows())
}
