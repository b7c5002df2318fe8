package schema

import (
	"strconv"
	"strings"
	"time"
)

// CellValue is the value stored in one cell of a row. Supported shapes
// are string, any Go numeric type, bool, []string, []interface{} holding
// strings (as produced by JSON decoding), and nil.
type CellValue interface{}

// Row is one record: a map from field id to cell value plus an opaque
// payload the pipeline never inspects.
type Row struct {
	ID      string               `json:"id"`
	Values  map[string]CellValue `json:"values"`
	Content interface{}          `json:"content,omitempty"`
}

// Value returns the cell value for the given field id. Missing entries
// come back as nil, which the emptiness rules treat the same as an
// explicit null.
func (r Row) Value(fieldID string) CellValue {
	if r.Values == nil {
		return nil
	}
	return r.Values[fieldID]
}

// IsEmpty reports whether a cell value counts as empty: nil, the empty
// string, or an empty array.
func IsEmpty(v CellValue) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []string:
		return len(val) == 0
	case []interface{}:
		return len(val) == 0
	}
	return false
}

// ValueString converts a scalar cell value to its raw string form.
// Arrays are joined with ", " without label resolution; use
// FieldDefinition.DisplayValue for the display form.
func ValueString(v CellValue) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ", ")
	case []interface{}:
		return strings.Join(StringSlice(val), ", ")
	}
	if f, ok := numericValue(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

// StringSlice converts an array cell value to []string. JSON decoding
// yields []interface{}, parquet and in-memory callers yield []string;
// both are accepted. Returns nil for non-array values.
func StringSlice(v CellValue) []string {
	switch val := v.(type) {
	case []string:
		return val
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, ValueString(item))
		}
		return out
	}
	return nil
}

// ToFloat64 converts a cell value to float64 if possible. Numeric types
// are widened; strings are parsed. A failed parse reports false rather
// than an error, matching the no-match semantics of the comparison
// operators.
func ToFloat64(v CellValue) (float64, bool) {
	if f, ok := numericValue(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// numericValue widens any Go numeric type to float64.
func numericValue(v CellValue) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	}
	return 0, false
}

// dateLayouts are the formats tried when parsing date cells, most
// specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// ParseDate parses a cell value as a timestamp. Accepts time.Time
// values, numeric epoch milliseconds, and the common date string
// layouts. A failed parse reports false.
func ParseDate(v CellValue) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	if ms, ok := numericValue(v); ok {
		return time.UnixMilli(int64(ms)).UTC(), true
	}
	return time.Time{}, false
}

// DisplayValue resolves a stored cell value to its human-readable form
// for this field: option labels instead of raw ids for select-style
// fields, labels joined with ", " for multi-select arrays, and the raw
// string form for everything else. Unresolvable option ids fall back to
// the raw id.
func (f *FieldDefinition) DisplayValue(v CellValue) string {
	if IsEmpty(v) {
		return ""
	}
	switch f.Type {
	case FieldSingleSelect, FieldAssignee, FieldIteration:
		return f.OptionLabel(ValueString(v))
	case FieldMultiSelect:
		return strings.Join(f.DisplayLabels(v), ", ")
	case FieldText, FieldTitle, FieldNumber, FieldDate, FieldLink:
		return ValueString(v)
	}
	return ValueString(v)
}

// DisplayLabels resolves each element of an array cell value to its
// option label, leaving unresolvable ids raw. Scalar values are treated
// as a one-element array so select and multi-select cells share one
// resolution path.
func (f *FieldDefinition) DisplayLabels(v CellValue) []string {
	items := StringSlice(v)
	if items == nil {
		if IsEmpty(v) {
			return nil
		}
		items = []string{ValueString(v)}
	}
	labels := make([]string, len(items))
	for i, id := range items {
		labels[i] = f.OptionLabel(id)
	}
	return labels
}
