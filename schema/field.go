// Package schema defines the typed field catalog and row model shared by
// the query, view, and output packages.
//
// A Catalog describes the typed columns of a table. Each field carries a
// FieldType and, for select-style fields, a declared option list mapping
// stored option ids to display labels. A Row maps field ids to cell
// values; the helpers in this package resolve stored values to their
// display form (option labels instead of raw ids, joined labels for
// multi-select arrays).
//
// Example usage:
//
//	catalog := schema.Catalog{
//	    {ID: "title", Name: "Title", Type: schema.FieldTitle, Visible: true},
//	    {ID: "status", Name: "Status", Type: schema.FieldSingleSelect, Visible: true,
//	        Options: []schema.FieldOption{{ID: "opt_todo", Label: "Todo"}}},
//	}
//	field := catalog.FieldByID("status")
//	label := field.DisplayValue("opt_todo") // "Todo"
package schema

import "strings"

// FieldType identifies the value semantics of a field.
//
// Every consumer that branches on a value's type switches on FieldType,
// so adding a type is a single-point change followed by a compile-audit
// of those switches.
type FieldType string

const (
	FieldText         FieldType = "text"
	FieldTitle        FieldType = "title"
	FieldNumber       FieldType = "number"
	FieldDate         FieldType = "date"
	FieldSingleSelect FieldType = "single-select"
	FieldMultiSelect  FieldType = "multi-select"
	FieldAssignee     FieldType = "assignee"
	FieldIteration    FieldType = "iteration"
	FieldLink         FieldType = "link"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldTitle, FieldNumber, FieldDate, FieldSingleSelect,
		FieldMultiSelect, FieldAssignee, FieldIteration, FieldLink:
		return true
	}
	return false
}

// IsSelect reports whether t stores a single option id that resolves to
// a label through the field's option list.
func (t FieldType) IsSelect() bool {
	switch t {
	case FieldSingleSelect, FieldAssignee, FieldIteration:
		return true
	}
	return false
}

// FieldOption is one declared choice of a select-style field.
type FieldOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// FieldDefinition describes one typed column of a table.
type FieldDefinition struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Type    FieldType     `json:"type"`
	Options []FieldOption `json:"options,omitempty"`
	Visible bool          `json:"visible"`
	Width   int           `json:"width,omitempty"`
}

// OptionByID returns the declared option with the given id, or nil.
func (f *FieldDefinition) OptionByID(id string) *FieldOption {
	for i := range f.Options {
		if f.Options[i].ID == id {
			return &f.Options[i]
		}
	}
	return nil
}

// OptionByLabel returns the declared option whose label matches
// case-insensitively, or nil.
func (f *FieldDefinition) OptionByLabel(label string) *FieldOption {
	for i := range f.Options {
		if strings.EqualFold(f.Options[i].Label, label) {
			return &f.Options[i]
		}
	}
	return nil
}

// OptionLabel resolves an option id to its label. Unresolvable ids are
// returned as-is so callers always have something to display.
func (f *FieldDefinition) OptionLabel(id string) string {
	if opt := f.OptionByID(id); opt != nil {
		return opt.Label
	}
	return id
}

// Catalog is an ordered list of field definitions. Field ids are unique
// within a catalog.
type Catalog []FieldDefinition

// FieldByID returns the field with the given id, or nil if the catalog
// does not contain it.
func (c Catalog) FieldByID(id string) *FieldDefinition {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// FieldByName returns the first field whose name matches
// case-insensitively, or nil.
func (c Catalog) FieldByName(name string) *FieldDefinition {
	for i := range c {
		if strings.EqualFold(c[i].Name, name) {
			return &c[i]
		}
	}
	return nil
}

// FirstOfType returns the first field of the given type, or nil.
func (c Catalog) FirstOfType(t FieldType) *FieldDefinition {
	for i := range c {
		if c[i].Type == t {
			return &c[i]
		}
	}
	return nil
}

// DefaultTextField returns the field bare search words apply to: the
// first title field, else the first text field, else nil.
func (c Catalog) DefaultTextField() *FieldDefinition {
	if f := c.FirstOfType(FieldTitle); f != nil {
		return f
	}
	return c.FirstOfType(FieldText)
}

// VisibleFields returns the visible fields in catalog order.
func (c Catalog) VisibleFields() Catalog {
	visible := make(Catalog, 0, len(c))
	for _, f := range c {
		if f.Visible {
			visible = append(visible, f)
		}
	}
	return visible
}
