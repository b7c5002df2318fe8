// Package reader loads tables into the schema model from Parquet files
// and JSON table documents.
//
// Parquet files carry no field catalog beyond their column schema, so
// one is inferred: column types map onto field types and every column
// starts out visible. JSON documents declare their catalog explicitly.
// Rows without an id column are assigned generated ids so the pipeline
// always sees unique row ids.
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/gridview/schema"
)

// ParquetReader reads a Parquet file into the schema model.
//
// It maintains both an OS file handle and a parquet file handle to
// enable proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens and validates a Parquet file.
//
// Example:
//
//	r, err := reader.NewParquetReader("items.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &ParquetReader{file: file, pqFile: pqFile}, nil
}

// Fields infers a field catalog from the Parquet column schema. Leaf
// columns become fields; the id column, if any, is excluded because it
// feeds Row.ID instead of a cell.
func (r *ParquetReader) Fields() schema.Catalog {
	var fields schema.Catalog
	for _, field := range r.pqFile.Schema().Fields() {
		name := field.Name()
		if name == rowIDColumn {
			continue
		}
		fields = append(fields, schema.FieldDefinition{
			ID:      name,
			Name:    name,
			Type:    inferFieldType(field),
			Visible: true,
		})
	}
	return fields
}

// ReadAll reads every row into memory. The id column populates Row.ID;
// rows without one get a generated id.
func (r *ParquetReader) ReadAll() ([]schema.Row, error) {
	rows := make([]schema.Row, 0)

	pq := parquet.NewReader(r.pqFile)
	defer func() { _ = pq.Close() }()

	for {
		record := make(map[string]interface{})
		err := pq.Read(&record)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, rowFromRecord(record))
	}

	return rows, nil
}

// Close closes the reader. Safe to call multiple times.
func (r *ParquetReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadParquetTable reads a Parquet file and returns its inferred
// catalog and all rows.
func ReadParquetTable(path string) (schema.Catalog, []schema.Row, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = r.Close() }()

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return r.Fields(), rows, nil
}

// inferFieldType maps a Parquet column onto a field type. Repeated
// string columns become multi-select, numeric columns become number,
// timestamps and dates become date, everything else is text.
func inferFieldType(field parquet.Field) schema.FieldType {
	// List columns arrive as repeated leaves or wrapper groups.
	if field.Repeated() || len(field.Fields()) > 0 {
		return schema.FieldMultiSelect
	}

	if field.Type() == nil {
		return schema.FieldText
	}

	if logical := field.Type().LogicalType(); logical != nil {
		switch logical.String() {
		case "DATE", "TIMESTAMP":
			return schema.FieldDate
		case "STRING", "UTF8", "ENUM", "UUID":
			return schema.FieldText
		}
	}

	switch field.Type().Kind() {
	case parquet.Int32, parquet.Int64, parquet.Int96, parquet.Float, parquet.Double:
		return schema.FieldNumber
	case parquet.Boolean:
		return schema.FieldText
	}
	return schema.FieldText
}
