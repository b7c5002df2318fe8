package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/gridview/schema"
)

func writeJSONFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJSONTable(t *testing.T) {
	path := writeJSONFixture(t, `{
		"fields": [
			{"id": "title", "name": "Title", "type": "title", "visible": true},
			{"id": "status", "name": "Status", "type": "single-select", "visible": true,
				"options": [{"id": "opt_todo", "label": "Todo"}]},
			{"id": "tags", "name": "Tags", "type": "multi-select", "visible": true}
		],
		"rows": [
			{"id": "r1", "values": {"title": "Login page", "status": "opt_todo", "tags": ["t1", "t2"]}},
			{"values": {"title": "No id row"}}
		]
	}`)

	fields, rows, err := ReadJSONTable(path)
	require.NoError(t, err)

	require.Len(t, fields, 3)
	status := fields.FieldByID("status")
	require.NotNil(t, status)
	assert.Equal(t, schema.FieldSingleSelect, status.Type)
	require.Len(t, status.Options, 1)
	assert.Equal(t, "Todo", status.Options[0].Label)

	require.Len(t, rows, 2)
	assert.Equal(t, "r1", rows[0].ID)
	// JSON arrays normalize to []string.
	assert.Equal(t, []string{"t1", "t2"}, rows[0].Value("tags"))
	// Rows without an id get a generated one.
	assert.NotEmpty(t, rows[1].ID)
	assert.NotEqual(t, rows[0].ID, rows[1].ID)
}

func TestReadJSONTable_JSONC(t *testing.T) {
	path := writeJSONFixture(t, `{
		// a field catalog with a trailing comma
		"fields": [
			{"id": "title", "name": "Title", "type": "title", "visible": true},
		],
		"rows": [],
	}`)

	fields, rows, err := ReadJSONTable(path)
	require.NoError(t, err)
	assert.Len(t, fields, 1)
	assert.Empty(t, rows)
}

func TestReadJSONTable_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", "{{{"},
		{"duplicate field id", `{"fields": [
			{"id": "a", "name": "A", "type": "text", "visible": true},
			{"id": "a", "name": "B", "type": "text", "visible": true}
		], "rows": []}`},
		{"unknown field type", `{"fields": [
			{"id": "a", "name": "A", "type": "checkbox", "visible": true}
		], "rows": []}`},
		{"missing field id", `{"fields": [
			{"name": "A", "type": "text", "visible": true}
		], "rows": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeJSONFixture(t, tt.content)
			_, _, err := ReadJSONTable(path)
			assert.Error(t, err)
		})
	}
}

func TestReadTable_Dispatch(t *testing.T) {
	jsonPath := writeJSONFixture(t, `{"fields": [], "rows": []}`)
	_, _, err := ReadTable(jsonPath)
	assert.NoError(t, err)

	_, _, err = ReadTable("table.yaml")
	assert.Error(t, err)
}
