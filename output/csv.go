package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/gridview/schema"
	"github.com/vegasq/gridview/view"
)

// CSVFormatter outputs rows as CSV with a header row. Cells carry
// display values, not raw option ids. Grouped output gets a leading
// "group" column so the partition survives the flat format.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// FormatRows writes rows as CSV over the visible fields.
func (c *CSVFormatter) FormatRows(rows []schema.Row, fields schema.Catalog) error {
	visible := fields.VisibleFields()
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(headerNames(visible)); err != nil {
		return err
	}
	for _, row := range rows {
		if err := csvWriter.Write(displayCells(row, visible)); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// FormatGroups writes grouped rows with the group label as the first
// column.
func (c *CSVFormatter) FormatGroups(groups []view.RowGroup, fields schema.Catalog) error {
	visible := fields.VisibleFields()
	csvWriter := csv.NewWriter(c.writer)

	header := append([]string{"group"}, headerNames(visible)...)
	if err := csvWriter.Write(header); err != nil {
		return err
	}
	for _, group := range groups {
		for _, row := range group.Rows {
			record := append([]string{group.Label}, displayCells(row, visible)...)
			if err := csvWriter.Write(record); err != nil {
				return err
			}
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}
