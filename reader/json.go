package reader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/vegasq/gridview/schema"
)

// TableDocument is the JSON table format: an explicit field catalog
// plus rows. Row values live under "values" keyed by field id.
//
// Documents may carry comments and trailing commas; they are
// standardized before decoding.
type TableDocument struct {
	Fields schema.Catalog `json:"fields"`
	Rows   []schema.Row   `json:"rows"`
}

// ReadJSONTable reads a JSON or JSONC table document.
func ReadJSONTable(path string) (schema.Catalog, []schema.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read table file: %w", err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid table document: %w", err)
	}

	var doc TableDocument
	if err := json.Unmarshal(standardized, &doc); err != nil {
		return nil, nil, fmt.Errorf("invalid table document: %w", err)
	}

	if err := validateDocument(doc); err != nil {
		return nil, nil, err
	}

	rows := make([]schema.Row, len(doc.Rows))
	for i, row := range doc.Rows {
		rows[i] = normalizeRow(row)
	}
	return doc.Fields, rows, nil
}

// validateDocument rejects documents the pipeline cannot work with:
// duplicate field ids and unknown field types.
func validateDocument(doc TableDocument) error {
	seen := make(map[string]bool, len(doc.Fields))
	for _, f := range doc.Fields {
		if f.ID == "" {
			return fmt.Errorf("field %q has no id", f.Name)
		}
		if seen[f.ID] {
			return fmt.Errorf("duplicate field id %q", f.ID)
		}
		seen[f.ID] = true
		if !f.Type.Valid() {
			return fmt.Errorf("field %q has unknown type %q", f.ID, f.Type)
		}
	}
	return nil
}

// normalizeRow collapses JSON array values to []string and assigns ids
// to rows lacking one.
func normalizeRow(row schema.Row) schema.Row {
	record := make(map[string]interface{}, len(row.Values)+1)
	for name, value := range row.Values {
		record[name] = value
	}
	if row.ID != "" {
		record[rowIDColumn] = row.ID
	}
	normalized := rowFromRecord(record)
	normalized.Content = row.Content
	return normalized
}
