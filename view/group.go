package view

import (
	"sort"
	"strings"

	"github.com/vegasq/gridview/schema"
)

// Bucket keys reserved by the grouping algorithm.
const (
	// AllGroupID keys the synthetic group holding every row when no
	// group field is configured.
	AllGroupID = "__all__"
	// EmptyGroupKey keys the bucket of rows whose group field is empty.
	EmptyGroupKey = "__empty__"
)

// AllGroupLabel is the display label of the synthetic all-rows group.
const AllGroupLabel = "All Items"

// RowGroup is one labeled partition of a row collection.
type RowGroup struct {
	ID    string           `json:"id"`
	Label string           `json:"label"`
	Value schema.CellValue `json:"value"`
	Rows  []schema.Row     `json:"rows"`
	Count int              `json:"count"`
}

// GroupRows partitions rows into ordered, labeled buckets by one
// field's value. Buckets are disjoint and cover the input: every row
// lands in exactly one bucket and the counts sum to len(rows).
//
// An empty or unresolved fieldID produces a single synthetic group
// holding all rows. Fields with a declared option list pre-seed one
// bucket per option in declared order, so options with zero matching
// rows still appear. Bucket ordering: declared options first in
// declared order, then undeclared buckets alphabetically by label, and
// the empty-value bucket always last. Fields without options order all
// buckets alphabetically, empty last.
func GroupRows(rows []schema.Row, fieldID string, fields schema.Catalog) []RowGroup {
	field := fields.FieldByID(fieldID)
	if fieldID == "" || field == nil {
		all := RowGroup{ID: AllGroupID, Label: AllGroupLabel, Rows: append([]schema.Row(nil), rows...)}
		all.Count = len(all.Rows)
		return []RowGroup{all}
	}

	buckets := make(map[string]*RowGroup)
	var order []string

	addBucket := func(key, label string, value schema.CellValue) *RowGroup {
		if g, ok := buckets[key]; ok {
			return g
		}
		g := &RowGroup{ID: key, Label: label, Value: value, Rows: []schema.Row{}}
		buckets[key] = g
		order = append(order, key)
		return g
	}

	// Declared options become buckets up front so empty ones still
	// render, in declared order.
	for _, opt := range field.Options {
		addBucket(opt.ID, opt.Label, opt.ID)
	}

	for _, row := range rows {
		value := row.Value(fieldID)
		key := bucketKey(value)
		g := addBucket(key, bucketLabel(field, key, value), value)
		g.Rows = append(g.Rows, row)
		g.Count++
	}

	declaredRank := make(map[string]int, len(field.Options))
	for i, opt := range field.Options {
		declaredRank[opt.ID] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		ra, rb := bucketRank(a, declaredRank), bucketRank(b, declaredRank)
		if ra != rb {
			return ra < rb
		}
		if ra == rankDeclared {
			return declaredRank[a] < declaredRank[b]
		}
		return strings.ToLower(buckets[a].Label) < strings.ToLower(buckets[b].Label)
	})

	groups := make([]RowGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *buckets[key])
	}
	return groups
}

const (
	rankDeclared = iota
	rankUndeclared
	rankEmpty
)

// bucketRank places declared options first, ad-hoc buckets after them,
// and the empty bucket last, full stop.
func bucketRank(key string, declared map[string]int) int {
	if key == EmptyGroupKey {
		return rankEmpty
	}
	if _, ok := declared[key]; ok {
		return rankDeclared
	}
	return rankUndeclared
}

// bucketKey computes the bucket a value belongs to: the empty key for
// empty values, the raw id for scalars, ids joined for arrays.
func bucketKey(value schema.CellValue) string {
	if schema.IsEmpty(value) {
		return EmptyGroupKey
	}
	if items := schema.StringSlice(value); items != nil {
		return strings.Join(items, ",")
	}
	return schema.ValueString(value)
}

// bucketLabel computes the display label for a bucket that is not
// pre-seeded from a declared option.
func bucketLabel(field *schema.FieldDefinition, key string, value schema.CellValue) string {
	if key == EmptyGroupKey {
		return "No " + field.Name
	}

	switch field.Type {
	case schema.FieldSingleSelect, schema.FieldAssignee, schema.FieldIteration:
		return field.OptionLabel(schema.ValueString(value))
	case schema.FieldMultiSelect:
		return strings.Join(field.DisplayLabels(value), ", ")
	case schema.FieldDate:
		if when, ok := schema.ParseDate(value); ok {
			return when.Format("Jan 2, 2006")
		}
		return schema.ValueString(value)
	case schema.FieldText, schema.FieldTitle, schema.FieldNumber, schema.FieldLink:
		return schema.ValueString(value)
	}
	return schema.ValueString(value)
}
