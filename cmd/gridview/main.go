// Command gridview filters, sorts, and groups tabular data files.
//
// It loads a table from a Parquet file or a JSON table document, runs
// the view pipeline over it, and renders the result as a grid, CSV, or
// JSON Lines. View configuration (sort, filters, group field, column
// layout) can be persisted per table under a state directory.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vegasq/gridview/output"
	"github.com/vegasq/gridview/query"
	"github.com/vegasq/gridview/reader"
	"github.com/vegasq/gridview/schema"
	"github.com/vegasq/gridview/store"
	"github.com/vegasq/gridview/view"
)

var (
	queryFlag  = pflag.StringP("query", "q", "", "filter query (e.g. 'login -status:equals:done pts:>:3')")
	searchFlag = pflag.String("search", "", "free-text search across visible fields")
	sortFlag   = pflag.String("sort", "", "sort spec: field or field:desc")
	groupFlag  = pflag.String("group", "", "group by field (disables sorting)")
	formatFlag = pflag.StringP("format", "f", "grid", "output format: grid, csv, jsonl")
	hideFlag   = pflag.StringSlice("hide", nil, "field ids to hide")
	orderFlag  = pflag.StringSlice("columns", nil, "field ids in display order")

	stateDirFlag = pflag.String("state-dir", "", "directory for persisted view state (disabled when empty)")
	tableFlag    = pflag.String("table", "", "table id for view state (defaults to the file name)")
	saveFlag     = pflag.Bool("save-state", false, "persist the effective view state after rendering")
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <table.parquet|table.json>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Filter, sort, and group tabular data files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s items.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q 'login -status:equals:done' items.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --group status -f csv items.parquet\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --sort pts:desc --state-dir ~/.gridview --save-state items.json\n", os.Args[0])
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one table file argument is required\n\n")
		pflag.Usage()
		os.Exit(1)
	}
	path := pflag.Arg(0)

	fields, rows, err := reader.ReadTable(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading table: %v\n", err)
		os.Exit(1)
	}

	formatter, err := output.New(*formatFlag, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tableID := *tableFlag
	if tableID == "" {
		tableID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	state, viewStore := loadState(tableID)
	applyFlags(state, fields)

	arranged := view.ArrangeFields(fields, state)
	clauses := state.Filters
	result := view.Run(rows, arranged, *searchFlag, clauses, state.SortConfig, state.GroupBy)

	if result.Grouped {
		err = formatter.FormatGroups(result.Groups, arranged)
	} else {
		err = formatter.FormatRows(result.Rows, arranged)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering output: %v\n", err)
		os.Exit(1)
	}

	// Persistence failures never fail a render.
	if *saveFlag && viewStore != nil {
		if err := viewStore.Save(tableID, *state); err != nil {
			log.Printf("warning: could not save view state: %v", err)
		}
	}
}

// loadState loads persisted view state when a state dir is configured.
// Store failures degrade to in-memory defaults.
func loadState(tableID string) (*view.ViewState, store.Store) {
	if *stateDirFlag == "" {
		return &view.ViewState{}, nil
	}

	viewStore, err := store.NewFileStore(*stateDirFlag)
	if err != nil {
		log.Printf("warning: view state unavailable: %v", err)
		return &view.ViewState{}, nil
	}

	state, err := viewStore.Load(tableID)
	if err != nil {
		log.Printf("warning: could not load view state: %v", err)
		state = nil
	}
	if state == nil {
		state = &view.ViewState{}
	}
	return state, viewStore
}

// applyFlags overlays command-line flags onto the loaded state. Flags
// win over persisted values; query clauses append to persisted filters.
func applyFlags(state *view.ViewState, fields schema.Catalog) {
	if *queryFlag != "" {
		state.Filters = append(state.Filters, query.Parse(*queryFlag, fields)...)
	}
	if *sortFlag != "" {
		state.SortConfig = parseSortFlag(*sortFlag, fields)
	}
	if *groupFlag != "" {
		state.GroupBy = resolveFieldID(*groupFlag, fields)
	}
	if len(*hideFlag) > 0 {
		state.HiddenColumns = append(state.HiddenColumns, *hideFlag...)
	}
	if len(*orderFlag) > 0 {
		state.FieldOrder = *orderFlag
	}
}

// parseSortFlag parses "field" or "field:desc" into a sort spec. The
// field part goes through the same alias rules as query terms.
func parseSortFlag(raw string, fields schema.Catalog) *view.SortSpec {
	field, dir, found := strings.Cut(raw, ":")
	spec := &view.SortSpec{Field: resolveFieldID(field, fields), Direction: view.Ascending}
	if found && strings.EqualFold(dir, string(view.Descending)) {
		spec.Direction = view.Descending
	}
	return spec
}

// resolveFieldID resolves a flag value through the query alias rules so
// --group status works against any catalog.
func resolveFieldID(alias string, fields schema.Catalog) string {
	if field := query.ResolveField(alias, fields); field != nil {
		return field.ID
	}
	return alias
}
