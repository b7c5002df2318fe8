package view

import (
	"sort"
	"strings"

	"github.com/vegasq/gridview/schema"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortSpec names the field and direction rows are ordered by. A nil
// spec means unsorted.
type SortSpec struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// NextSortState implements the sort-toggle cycle. Selecting the same
// field repeatedly cycles none -> asc -> desc -> none; selecting a
// different field always resets to ascending on that field.
func NextSortState(current *SortSpec, fieldID string) *SortSpec {
	if current == nil || current.Field != fieldID {
		return &SortSpec{Field: fieldID, Direction: Ascending}
	}
	if current.Direction == Ascending {
		return &SortSpec{Field: fieldID, Direction: Descending}
	}
	return nil
}

// sortTier buckets resolved sort values so empty and unparsable values
// keep their placement regardless of direction.
type sortTier int

const (
	tierConcrete   sortTier = iota // parsed / non-empty value
	tierUnparsable                 // non-empty but failed number/date parse
	tierEmpty                      // null or empty value
)

// sortKey is the precomputed ordering key for one row.
type sortKey struct {
	tier sortTier
	num  float64 // number fields and date fields (epoch ms)
	str  string  // lowercased display value for everything else
}

// SortRows returns a new collection ordered by the spec. The input
// slice is never modified. A nil spec or a field absent from the
// catalog returns the input order unchanged.
//
// Select ids are resolved to labels before comparing. Rows with an
// empty sort value always sort after rows with a concrete value, in
// both directions; for number and date fields, non-empty values that
// fail to parse sort after parsed ones, also in both directions. The
// sort is stable, so equal rows keep their input order.
func SortRows(rows []schema.Row, spec *SortSpec, fields schema.Catalog) []schema.Row {
	sorted := make([]schema.Row, len(rows))
	copy(sorted, rows)

	if spec == nil {
		return sorted
	}
	field := fields.FieldByID(spec.Field)
	if field == nil {
		return sorted
	}

	type keyedRow struct {
		row schema.Row
		key sortKey
	}
	keyed := make([]keyedRow, len(sorted))
	for i, row := range sorted {
		keyed[i] = keyedRow{row: row, key: makeSortKey(field, row.Value(spec.Field))}
	}

	desc := spec.Direction == Descending
	sort.SliceStable(keyed, func(i, j int) bool {
		a, b := keyed[i].key, keyed[j].key
		if a.tier != b.tier {
			// Tier placement never flips with direction.
			return a.tier < b.tier
		}
		cmp := compareKeys(field.Type, a, b)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})

	for i, kr := range keyed {
		sorted[i] = kr.row
	}
	return sorted
}

// makeSortKey resolves one cell into its ordering key.
func makeSortKey(field *schema.FieldDefinition, value schema.CellValue) sortKey {
	if schema.IsEmpty(value) {
		return sortKey{tier: tierEmpty}
	}

	switch field.Type {
	case schema.FieldNumber:
		if num, ok := schema.ToFloat64(value); ok {
			return sortKey{tier: tierConcrete, num: num}
		}
		return sortKey{tier: tierUnparsable, str: strings.ToLower(schema.ValueString(value))}
	case schema.FieldDate:
		if when, ok := schema.ParseDate(value); ok {
			return sortKey{tier: tierConcrete, num: float64(when.UnixMilli())}
		}
		return sortKey{tier: tierUnparsable, str: strings.ToLower(schema.ValueString(value))}
	case schema.FieldText, schema.FieldTitle, schema.FieldLink,
		schema.FieldSingleSelect, schema.FieldMultiSelect,
		schema.FieldAssignee, schema.FieldIteration:
		return sortKey{tier: tierConcrete, str: strings.ToLower(field.DisplayValue(value))}
	}
	return sortKey{tier: tierConcrete, str: strings.ToLower(field.DisplayValue(value))}
}

// compareKeys compares two same-tier keys: numerically for parsed
// number/date values, case-insensitive lexically otherwise.
func compareKeys(fieldType schema.FieldType, a, b sortKey) int {
	numeric := a.tier == tierConcrete &&
		(fieldType == schema.FieldNumber || fieldType == schema.FieldDate)
	if numeric {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	}
	return strings.Compare(a.str, b.str)
}
