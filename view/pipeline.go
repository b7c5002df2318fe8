// Package view runs the row presentation pipeline: free-text search,
// clause filtering, and field-typed sorting or grouping, producing the
// exact row or group sequence a renderer should draw.
//
// Every stage is a pure transformation over immutable inputs. No stage
// mutates its input collection, performs I/O, or returns an error;
// malformed inputs degrade to the most permissive behavior so a query
// never fails a render. Recomputation is the caller's job: invoke Run
// again whenever rows, clauses, sort, or group field change.
//
// Example usage:
//
//	clauses := query.Parse("login -status:equals:done", fields)
//	result := view.Run(rows, fields, "", clauses, nil, "status")
//	if result.Grouped {
//	    for _, g := range result.Groups {
//	        renderGroup(g)
//	    }
//	}
package view

import (
	"strings"

	"github.com/vegasq/gridview/query"
	"github.com/vegasq/gridview/schema"
)

// Result is the pipeline output: either ordered rows or ordered groups,
// never both. Grouped reports which side is populated.
type Result struct {
	Rows    []schema.Row
	Groups  []RowGroup
	Grouped bool
}

// Run executes the pipeline stages in their fixed order: free-text
// search across visible fields, clause filtering with AND semantics,
// then grouping or sorting. Grouping and sorting are mutually
// exclusive; when a group field is configured the sort spec is ignored
// entirely, because a concurrently sorted and grouped view would be
// ambiguous to a viewer.
func Run(rows []schema.Row, fields schema.Catalog, searchTerm string, clauses []query.FilterClause, sortSpec *SortSpec, groupFieldID string) Result {
	filtered := SearchRows(rows, fields, searchTerm)
	filtered = FilterRows(filtered, clauses, fields)

	if groupFieldID != "" {
		return Result{Groups: GroupRows(filtered, groupFieldID, fields), Grouped: true}
	}
	return Result{Rows: SortRows(filtered, sortSpec, fields)}
}

// SearchRows keeps rows whose display value in any visible field
// contains the search term, case-insensitively. An empty or
// whitespace-only term returns the input unchanged.
func SearchRows(rows []schema.Row, fields schema.Catalog, term string) []schema.Row {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return rows
	}

	visible := fields.VisibleFields()
	matched := make([]schema.Row, 0, len(rows))
	for _, row := range rows {
		for i := range visible {
			display := visible[i].DisplayValue(row.Value(visible[i].ID))
			if strings.Contains(strings.ToLower(display), needle) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

// FilterRows keeps rows matching every clause. Clauses referencing
// fields absent from the catalog pass rows through. An empty clause
// list returns the input unchanged, order and identity intact.
func FilterRows(rows []schema.Row, clauses []query.FilterClause, fields schema.Catalog) []schema.Row {
	if len(clauses) == 0 {
		return rows
	}

	filtered := make([]schema.Row, 0, len(rows))
	for _, row := range rows {
		keep := true
		for _, clause := range clauses {
			if !query.Matches(row, clause, fields.FieldByID(clause.Field)) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
