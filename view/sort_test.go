package view

import (
	"testing"

	"github.com/vegasq/gridview/schema"
)

func testCatalog() schema.Catalog {
	return schema.Catalog{
		{ID: "title", Name: "Title", Type: schema.FieldTitle, Visible: true},
		{ID: "status", Name: "Status", Type: schema.FieldSingleSelect, Visible: true, Options: []schema.FieldOption{
			{ID: "opt_todo", Label: "Todo"},
			{ID: "opt_prog", Label: "In Progress"},
			{ID: "opt_done", Label: "Done"},
		}},
		{ID: "tags", Name: "Tags", Type: schema.FieldMultiSelect, Visible: true, Options: []schema.FieldOption{
			{ID: "t1", Label: "Bug"},
			{ID: "t2", Label: "Feature"},
		}},
		{ID: "pts", Name: "Points", Type: schema.FieldNumber, Visible: true},
		{ID: "due", Name: "Due", Type: schema.FieldDate, Visible: true},
		{ID: "notes", Name: "Notes", Type: schema.FieldText, Visible: false},
	}
}

func makeRows(fieldID string, values ...schema.CellValue) []schema.Row {
	rows := make([]schema.Row, len(values))
	for i, v := range values {
		rows[i] = schema.Row{
			ID:     string(rune('a' + i)),
			Values: map[string]schema.CellValue{fieldID: v},
		}
	}
	return rows
}

func rowIDs(rows []schema.Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func assertOrder(t *testing.T, rows []schema.Row, want ...string) {
	t.Helper()
	got := rowIDs(rows)
	if len(got) != len(want) {
		t.Fatalf("row order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row order = %v, want %v", got, want)
		}
	}
}

func TestSortRows_NilSpecKeepsOrder(t *testing.T) {
	fields := testCatalog()
	rows := makeRows("pts", 3.0, 1.0, 2.0)

	assertOrder(t, SortRows(rows, nil, fields), "a", "b", "c")
}

func TestSortRows_UnknownFieldKeepsOrder(t *testing.T) {
	fields := testCatalog()
	rows := makeRows("pts", 3.0, 1.0, 2.0)
	spec := &SortSpec{Field: "ghost", Direction: Ascending}

	assertOrder(t, SortRows(rows, spec, fields), "a", "b", "c")
}

func TestSortRows_DoesNotMutateInput(t *testing.T) {
	fields := testCatalog()
	rows := makeRows("pts", 3.0, 1.0, 2.0)

	SortRows(rows, &SortSpec{Field: "pts", Direction: Ascending}, fields)

	assertOrder(t, rows, "a", "b", "c")
}

func TestSortRows_Numbers(t *testing.T) {
	fields := testCatalog()

	t.Run("ascending", func(t *testing.T) {
		rows := makeRows("pts", 3.0, 1.0, 2.0)
		spec := &SortSpec{Field: "pts", Direction: Ascending}
		assertOrder(t, SortRows(rows, spec, fields), "b", "c", "a")
	})

	t.Run("descending", func(t *testing.T) {
		rows := makeRows("pts", 3.0, 1.0, 2.0)
		spec := &SortSpec{Field: "pts", Direction: Descending}
		assertOrder(t, SortRows(rows, spec, fields), "a", "c", "b")
	})

	t.Run("numeric strings parse", func(t *testing.T) {
		rows := makeRows("pts", "10", "9", "2")
		spec := &SortSpec{Field: "pts", Direction: Ascending}
		assertOrder(t, SortRows(rows, spec, fields), "c", "b", "a")
	})
}

// Rows 5, "x", 2 sorted descending come out 5, 2, "x": unparsable
// values sort after parsed ones regardless of direction.
func TestSortRows_UnparsableNumbersLast(t *testing.T) {
	fields := testCatalog()

	t.Run("descending", func(t *testing.T) {
		rows := makeRows("pts", 5.0, "x", 2.0)
		spec := &SortSpec{Field: "pts", Direction: Descending}
		assertOrder(t, SortRows(rows, spec, fields), "a", "c", "b")
	})

	t.Run("ascending", func(t *testing.T) {
		rows := makeRows("pts", 5.0, "x", 2.0)
		spec := &SortSpec{Field: "pts", Direction: Ascending}
		assertOrder(t, SortRows(rows, spec, fields), "c", "a", "b")
	})
}

// Empty sort values never move ahead of concrete ones, in either
// direction.
func TestSortRows_NullsLastInvariance(t *testing.T) {
	fields := testCatalog()

	for _, dir := range []Direction{Ascending, Descending} {
		t.Run(string(dir), func(t *testing.T) {
			rows := makeRows("pts", nil, 2.0, nil, 1.0)
			spec := &SortSpec{Field: "pts", Direction: dir}
			sorted := SortRows(rows, spec, fields)

			// Concrete values occupy the first two slots.
			for i := 0; i < 2; i++ {
				if schema.IsEmpty(sorted[i].Value("pts")) {
					t.Fatalf("empty value at position %d: %v", i, rowIDs(sorted))
				}
			}
			for i := 2; i < 4; i++ {
				if !schema.IsEmpty(sorted[i].Value("pts")) {
					t.Fatalf("concrete value at position %d: %v", i, rowIDs(sorted))
				}
			}
		})
	}
}

func TestSortRows_SelectSortsByLabel(t *testing.T) {
	fields := testCatalog()
	// Labels: Todo, In Progress, Done. Ascending label order is
	// Done < In Progress < Todo despite id order.
	rows := makeRows("status", "opt_todo", "opt_done", "opt_prog")
	spec := &SortSpec{Field: "status", Direction: Ascending}

	assertOrder(t, SortRows(rows, spec, fields), "b", "c", "a")
}

func TestSortRows_TextCaseInsensitive(t *testing.T) {
	fields := testCatalog()
	rows := makeRows("title", "banana", "Apple", "cherry")
	spec := &SortSpec{Field: "title", Direction: Ascending}

	assertOrder(t, SortRows(rows, spec, fields), "b", "a", "c")
}

func TestSortRows_Dates(t *testing.T) {
	fields := testCatalog()
	rows := makeRows("due", "2024-06-01", "2023-01-15", "not a date", "2024-01-01")
	spec := &SortSpec{Field: "due", Direction: Ascending}

	assertOrder(t, SortRows(rows, spec, fields), "b", "d", "a", "c")
}

func TestSortRows_StableOnTies(t *testing.T) {
	fields := testCatalog()
	rows := makeRows("pts", 1.0, 1.0, 1.0)
	spec := &SortSpec{Field: "pts", Direction: Descending}

	assertOrder(t, SortRows(rows, spec, fields), "a", "b", "c")
}

func TestNextSortState(t *testing.T) {
	// Selecting field F three times cycles asc -> desc -> none.
	s := NextSortState(nil, "pts")
	if s == nil || s.Field != "pts" || s.Direction != Ascending {
		t.Fatalf("first toggle = %+v, want pts asc", s)
	}
	s = NextSortState(s, "pts")
	if s == nil || s.Direction != Descending {
		t.Fatalf("second toggle = %+v, want pts desc", s)
	}
	s = NextSortState(s, "pts")
	if s != nil {
		t.Fatalf("third toggle = %+v, want nil", s)
	}

	// Selecting a different field resets to ascending.
	s = NextSortState(&SortSpec{Field: "pts", Direction: Descending}, "title")
	if s == nil || s.Field != "title" || s.Direction != Ascending {
		t.Fatalf("switch field = %+v, want title asc", s)
	}
}
