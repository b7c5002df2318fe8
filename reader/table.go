package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vegasq/gridview/schema"
)

// ReadTable loads a table from a file, dispatching on the extension:
// .parquet for Parquet, .json/.jsonc for table documents.
func ReadTable(path string) (schema.Catalog, []schema.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return ReadParquetTable(path)
	case ".json", ".jsonc":
		return ReadJSONTable(path)
	}
	return nil, nil, fmt.Errorf("unsupported table format %q", filepath.Ext(path))
}
