package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/gridview/schema"
	"github.com/vegasq/gridview/view"
)

// GridFormatter renders rows as an aligned text table. Grouped output
// renders one table per group under a "Label (count)" heading, so a
// bucket with zero rows still shows its heading.
type GridFormatter struct {
	writer io.Writer
}

// NewGridFormatter creates a new grid formatter.
func NewGridFormatter(w io.Writer) *GridFormatter {
	return &GridFormatter{writer: w}
}

// SetOutput sets the output writer.
func (g *GridFormatter) SetOutput(w io.Writer) {
	g.writer = w
}

// FormatRows writes rows as a single table over the visible fields.
func (g *GridFormatter) FormatRows(rows []schema.Row, fields schema.Catalog) error {
	g.renderTable(rows, fields.VisibleFields())
	return nil
}

// FormatGroups writes one heading and table per group.
func (g *GridFormatter) FormatGroups(groups []view.RowGroup, fields schema.Catalog) error {
	visible := fields.VisibleFields()
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(g.writer)
		}
		fmt.Fprintf(g.writer, "%s (%d)\n", group.Label, group.Count)
		if len(group.Rows) > 0 {
			g.renderTable(group.Rows, visible)
		}
	}
	return nil
}

// renderTable draws one table of rows over the given fields.
func (g *GridFormatter) renderTable(rows []schema.Row, fields schema.Catalog) {
	table := tablewriter.NewWriter(g.writer)
	table.SetHeader(headerNames(fields))
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)

	for i := range fields {
		if fields[i].Width > 0 {
			table.SetColMinWidth(i, fields[i].Width)
		}
	}

	for _, row := range rows {
		table.Append(displayCells(row, fields))
	}
	table.Render()
}
