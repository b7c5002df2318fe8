package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/gridview/schema"
	"github.com/vegasq/gridview/view"
)

func testFields() schema.Catalog {
	return schema.Catalog{
		{ID: "title", Name: "Title", Type: schema.FieldTitle, Visible: true},
		{ID: "status", Name: "Status", Type: schema.FieldSingleSelect, Visible: true, Options: []schema.FieldOption{
			{ID: "opt_todo", Label: "Todo"},
			{ID: "opt_done", Label: "Done"},
		}},
		{ID: "notes", Name: "Notes", Type: schema.FieldText, Visible: false},
	}
}

func testRows() []schema.Row {
	return []schema.Row{
		{ID: "1", Values: map[string]schema.CellValue{"title": "Login page", "status": "opt_todo", "notes": "secret"}},
		{ID: "2", Values: map[string]schema.CellValue{"title": "Signup flow", "status": "opt_done"}},
	}
}

func testGroups() []view.RowGroup {
	rows := testRows()
	return []view.RowGroup{
		{ID: "opt_todo", Label: "Todo", Value: "opt_todo", Rows: rows[:1], Count: 1},
		{ID: "opt_done", Label: "Done", Value: "opt_done", Rows: rows[1:], Count: 1},
		{ID: "opt_blocked", Label: "Blocked", Value: "opt_blocked", Rows: []schema.Row{}, Count: 0},
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	for _, format := range []string{"grid", "csv", "jsonl"} {
		f, err := New(format, &buf)
		require.NoError(t, err, format)
		require.NotNil(t, f, format)
	}

	_, err := New("xml", &buf)
	assert.Error(t, err)
}

func TestCSVFormatter_Rows(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)

	require.NoError(t, f.FormatRows(testRows(), testFields()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Title,Status", lines[0])
	// Option ids render as labels; hidden fields are absent.
	assert.Equal(t, "Login page,Todo", lines[1])
	assert.Equal(t, "Signup flow,Done", lines[2])
	assert.NotContains(t, buf.String(), "secret")
}

func TestCSVFormatter_Groups(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)

	require.NoError(t, f.FormatGroups(testGroups(), testFields()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "group,Title,Status", lines[0])
	assert.Equal(t, "Todo,Login page,Todo", lines[1])
	assert.Equal(t, "Done,Signup flow,Done", lines[2])
}

func TestJSONFormatter_Rows(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	require.NoError(t, f.FormatRows(testRows(), testFields()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var decoded schema.Row
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	assert.Equal(t, "1", decoded.ID)
	// JSON keeps raw stored values.
	assert.Equal(t, "opt_todo", decoded.Values["status"])
}

func TestJSONFormatter_Groups(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	require.NoError(t, f.FormatGroups(testGroups(), testFields()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var decoded view.RowGroup
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &decoded))
	assert.Equal(t, "opt_blocked", decoded.ID)
	assert.Equal(t, 0, decoded.Count)
}

func TestGridFormatter_Rows(t *testing.T) {
	var buf bytes.Buffer
	f := NewGridFormatter(&buf)

	require.NoError(t, f.FormatRows(testRows(), testFields()))

	out := buf.String()
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Login page")
	assert.Contains(t, out, "Todo")
	assert.NotContains(t, out, "opt_todo")
	assert.NotContains(t, out, "secret")
}

func TestGridFormatter_Groups(t *testing.T) {
	var buf bytes.Buffer
	f := NewGridFormatter(&buf)

	require.NoError(t, f.FormatGroups(testGroups(), testFields()))

	out := buf.String()
	assert.Contains(t, out, "Todo (1)")
	assert.Contains(t, out, "Done (1)")
	// Empty buckets keep their heading even without a table.
	assert.Contains(t, out, "Blocked (0)")
}
