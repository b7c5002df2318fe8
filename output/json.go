package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/gridview/schema"
	"github.com/vegasq/gridview/view"
)

// JSONFormatter outputs results as JSON Lines: one object per row when
// ungrouped, one object per group when grouped. Unlike the text
// formats, JSON output keeps raw stored values so it round-trips.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// FormatRows writes one JSON object per row.
func (j *JSONFormatter) FormatRows(rows []schema.Row, fields schema.Catalog) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

// FormatGroups writes one JSON object per group, rows nested.
func (j *JSONFormatter) FormatGroups(groups []view.RowGroup, fields schema.Catalog) error {
	encoder := json.NewEncoder(j.writer)
	for _, group := range groups {
		if err := encoder.Encode(group); err != nil {
			return err
		}
	}
	return nil
}
