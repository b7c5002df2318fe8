// Package output renders pipeline results for terminals and files.
//
// Formatters receive either an ordered row list or an ordered group
// list plus the ordered, visibility-resolved field catalog, and are
// responsible for all presentation concerns. Cell values are resolved
// to their display form (option labels, joined multi-select labels)
// before rendering.
//
// Currently supported formats:
//   - Grid: aligned text table, one per group when grouped
//   - CSV: header row plus one record per row; grouped output gains a
//     leading group column
//   - JSON Lines: one JSON object per row or per group
//
// Example usage:
//
//	formatter := output.NewGridFormatter(os.Stdout)
//	if result.Grouped {
//	    err = formatter.FormatGroups(result.Groups, fields)
//	} else {
//	    err = formatter.FormatRows(result.Rows, fields)
//	}
package output

import (
	"fmt"
	"io"

	"github.com/vegasq/gridview/schema"
	"github.com/vegasq/gridview/view"
)

// Formatter defines the interface for result renderers.
type Formatter interface {
	// FormatRows writes an ungrouped, ordered row list.
	FormatRows(rows []schema.Row, fields schema.Catalog) error

	// FormatGroups writes an ordered group list.
	FormatGroups(groups []view.RowGroup, fields schema.Catalog) error

	// SetOutput changes the output writer.
	SetOutput(w io.Writer)
}

// New returns the formatter for a format name: "grid", "csv", or
// "jsonl".
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "grid":
		return NewGridFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// displayCells resolves one row into display strings for the given
// fields, in field order.
func displayCells(row schema.Row, fields schema.Catalog) []string {
	cells := make([]string, len(fields))
	for i := range fields {
		cells[i] = fields[i].DisplayValue(row.Value(fields[i].ID))
	}
	return cells
}

// headerNames returns the display names of the given fields.
func headerNames(fields schema.Catalog) []string {
	names := make([]string, len(fields))
	for i := range fields {
		names[i] = fields[i].Name
	}
	return names
}
