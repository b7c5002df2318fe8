// Package store persists per-table view state: field order, sort,
// filters, group field, column widths and visibility.
//
// The pipeline never talks to a store; its caller loads a ViewState,
// feeds the pieces into the view package, and saves the state back when
// the user changes it. Store failures are expected to be non-fatal:
// callers proceed with in-memory defaults and log, never abort a
// render.
package store

import (
	"sync"

	"github.com/vegasq/gridview/view"
)

// Store loads and saves view state keyed by an opaque table identifier.
type Store interface {
	// Load returns the state for a table, or nil when none is saved.
	Load(tableID string) (*view.ViewState, error)

	// Save persists the state for a table, replacing any previous one.
	Save(tableID string, state view.ViewState) error
}

// MemStore is an in-memory Store for tests and ephemeral runs.
type MemStore struct {
	mu     sync.Mutex
	states map[string]view.ViewState
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{states: make(map[string]view.ViewState)}
}

// Load returns the stored state, or nil when the table has none.
func (m *MemStore) Load(tableID string) (*view.ViewState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[tableID]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

// Save stores a copy of the state.
func (m *MemStore) Save(tableID string, state view.ViewState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[tableID] = state
	return nil
}
