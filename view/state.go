package view

import (
	"github.com/vegasq/gridview/query"
	"github.com/vegasq/gridview/schema"
)

// ViewState is the persisted configuration of one table view, keyed by
// an opaque table identifier by the store. The pipeline itself never
// loads or saves state; the caller feeds the relevant pieces into Run
// and ArrangeFields.
type ViewState struct {
	FieldOrder    []string             `json:"fieldOrder,omitempty"`
	SortConfig    *SortSpec            `json:"sortConfig,omitempty"`
	Filters       []query.FilterClause `json:"filters,omitempty"`
	GroupBy       string               `json:"groupBy,omitempty"`
	FieldWidths   map[string]int       `json:"fieldWidths,omitempty"`
	HiddenColumns []string             `json:"hiddenColumns,omitempty"`
}

// ArrangeFields applies a view state's field order, hidden columns, and
// widths to a catalog, producing the ordered, visibility-resolved field
// list a renderer receives. The input catalog is not modified. Ordered
// ids absent from the catalog are skipped; catalog fields absent from
// the order keep their relative position after the ordered ones. A nil
// state returns a plain copy.
func ArrangeFields(fields schema.Catalog, state *ViewState) schema.Catalog {
	arranged := make(schema.Catalog, 0, len(fields))

	if state == nil {
		return append(arranged, fields...)
	}

	used := make(map[string]bool, len(fields))
	for _, id := range state.FieldOrder {
		if used[id] {
			continue
		}
		if f := fields.FieldByID(id); f != nil {
			arranged = append(arranged, *f)
			used[id] = true
		}
	}
	for _, f := range fields {
		if !used[f.ID] {
			arranged = append(arranged, f)
		}
	}

	hidden := make(map[string]bool, len(state.HiddenColumns))
	for _, id := range state.HiddenColumns {
		hidden[id] = true
	}
	for i := range arranged {
		if hidden[arranged[i].ID] {
			arranged[i].Visible = false
		}
		if w, ok := state.FieldWidths[arranged[i].ID]; ok && w > 0 {
			arranged[i].Width = w
		}
	}
	return arranged
}
