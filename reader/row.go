package reader

import (
	"github.com/google/uuid"

	"github.com/vegasq/gridview/schema"
)

// rowIDColumn is the column that feeds Row.ID instead of a cell value.
const rowIDColumn = "id"

// rowFromRecord converts a decoded record into a Row. The id column
// becomes the row id; rows lacking one get a generated id so row ids
// stay unique within a collection.
func rowFromRecord(record map[string]interface{}) schema.Row {
	row := schema.Row{Values: make(map[string]schema.CellValue, len(record))}

	for name, value := range record {
		if name == rowIDColumn {
			if id := schema.ValueString(value); id != "" {
				row.ID = id
				continue
			}
		}
		row.Values[name] = normalizeValue(value)
	}

	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	return row
}

// normalizeValue collapses decoder-specific array shapes into []string
// so the rest of the pipeline sees one array representation.
func normalizeValue(value interface{}) schema.CellValue {
	switch val := value.(type) {
	case []interface{}:
		return schema.StringSlice(val)
	case []string:
		return val
	}
	return value
}
