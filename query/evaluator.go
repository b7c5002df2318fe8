package query

import (
	"strings"

	"github.com/vegasq/gridview/schema"
)

// Sentinel tokens inside an in-list that mean "match empty values"
// rather than a literal option named empty.
const (
	emptySentinel      = "(empty)"
	emptySentinelPlain = "empty"
)

// Matches decides whether a row satisfies one filter clause. A nil
// field means the clause references something absent from the catalog;
// such clauses pass every row through rather than failing the filter.
//
// Evaluation is pure: neither the row nor the field is written to, and
// no combination of inputs produces an error. Malformed values degrade
// to no-match.
func Matches(row schema.Row, clause FilterClause, field *schema.FieldDefinition) bool {
	if field == nil {
		return true
	}

	value := row.Value(clause.Field)

	switch clause.Operator {
	case OpIsEmpty:
		return schema.IsEmpty(value)
	case OpIsNotEmpty:
		return !schema.IsEmpty(value)
	case OpContains:
		return containsMatch(field, value, clauseString(clause.Value))
	case OpEquals:
		return equalsMatch(field, value, clauseString(clause.Value))
	case OpNotEquals:
		// An empty value is never equal to a concrete filter value.
		if schema.IsEmpty(value) {
			return true
		}
		return !equalsMatch(field, value, clauseString(clause.Value))
	case OpIn:
		return inMatch(field, value, clauseList(clause.Value))
	case OpGT, OpGTE, OpLT, OpLTE:
		return numericMatch(clause.Operator, value, clause.Value)
	}
	// Unknown operators pass through, same as unknown fields.
	return true
}

// containsMatch does a case-insensitive substring match on the resolved
// display value.
func containsMatch(field *schema.FieldDefinition, value schema.CellValue, filter string) bool {
	if schema.IsEmpty(value) {
		return false
	}
	display := field.DisplayValue(value)
	return strings.Contains(strings.ToLower(display), strings.ToLower(filter))
}

// equalsMatch compares a stored value against a filter value. For
// select-style fields an id match takes precedence, then a
// case-insensitive label match; unresolved labels are assumed
// not-equal. Other types compare display strings case-insensitively.
func equalsMatch(field *schema.FieldDefinition, value schema.CellValue, filter string) bool {
	if schema.IsEmpty(value) {
		return false
	}

	switch field.Type {
	case schema.FieldSingleSelect, schema.FieldAssignee, schema.FieldIteration:
		stored := schema.ValueString(value)
		if strings.EqualFold(stored, filter) {
			return true
		}
		return strings.EqualFold(field.OptionLabel(stored), filter)
	case schema.FieldMultiSelect:
		return strings.EqualFold(field.DisplayValue(value), filter)
	case schema.FieldText, schema.FieldTitle, schema.FieldNumber,
		schema.FieldDate, schema.FieldLink:
		return strings.EqualFold(field.DisplayValue(value), filter)
	}
	return strings.EqualFold(field.DisplayValue(value), filter)
}

// inMatch tests list membership. Sentinel entries are stripped from the
// filter list and OR'd with an emptiness check. Multi-select rows match
// when any element's resolved label appears in the list; scalar rows
// match when the display label or the raw stored value appears. The
// scalar raw-value fallback has no multi-select counterpart; that
// asymmetry is deliberate.
func inMatch(field *schema.FieldDefinition, value schema.CellValue, filter []string) bool {
	wantEmpty := false
	concrete := make([]string, 0, len(filter))
	for _, item := range filter {
		if isEmptySentinel(item) {
			wantEmpty = true
			continue
		}
		concrete = append(concrete, item)
	}

	if schema.IsEmpty(value) {
		return wantEmpty
	}

	if field.Type == schema.FieldMultiSelect {
		for _, label := range field.DisplayLabels(value) {
			if listContains(concrete, label) {
				return true
			}
		}
		return false
	}

	if listContains(concrete, field.DisplayValue(value)) {
		return true
	}
	return listContains(concrete, schema.ValueString(value))
}

// numericMatch parses both sides as floats and compares. A failed parse
// on either side is a no-match, not an error.
func numericMatch(op Operator, value schema.CellValue, filter interface{}) bool {
	left, ok := schema.ToFloat64(value)
	if !ok {
		return false
	}
	right, ok := schema.ToFloat64(filter)
	if !ok {
		return false
	}

	switch op {
	case OpGT:
		return left > right
	case OpGTE:
		return left >= right
	case OpLT:
		return left < right
	case OpLTE:
		return left <= right
	}
	return false
}

// clauseString extracts the string form of a clause value. Persisted
// clauses arrive with JSON-decoded values, so numbers come back as
// float64 and lists as []interface{}.
func clauseString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	}
	return schema.ValueString(v)
}

// clauseList extracts the list form of a clause value: a []string as
// produced by the parser, a []interface{} from JSON decoding, or a
// comma-separated string split with quoted segments protected.
func clauseList(v interface{}) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return val
	case []interface{}:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, schema.ValueString(item))
		}
		return items
	case string:
		return SplitValueList(val)
	}
	return []string{schema.ValueString(v)}
}

// isEmptySentinel reports whether an in-list entry is one of the
// reserved empty markers.
func isEmptySentinel(item string) bool {
	return strings.EqualFold(item, emptySentinel) || strings.EqualFold(item, emptySentinelPlain)
}

// listContains does a case-insensitive membership test.
func listContains(list []string, item string) bool {
	for _, candidate := range list {
		if strings.EqualFold(candidate, item) {
			return true
		}
	}
	return false
}
