package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/gridview/view"
)

func TestMemStore_RoundTrip(t *testing.T) {
	s := NewMemStore()

	loaded, err := s.Load("t")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, s.Save("t", testState()))

	loaded, err = s.Load("t")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, testState().GroupBy, loaded.GroupBy)
}

func TestMemStore_LoadReturnsCopy(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Save("t", view.ViewState{GroupBy: "status"}))

	first, err := s.Load("t")
	require.NoError(t, err)
	first.GroupBy = "changed"

	second, err := s.Load("t")
	require.NoError(t, err)
	assert.Equal(t, "status", second.GroupBy)
}

func TestMemStore_TablesAreIndependent(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Save("a", view.ViewState{GroupBy: "status"}))
	require.NoError(t, s.Save("b", view.ViewState{GroupBy: "owner"}))

	a, err := s.Load("a")
	require.NoError(t, err)
	b, err := s.Load("b")
	require.NoError(t, err)
	assert.Equal(t, "status", a.GroupBy)
	assert.Equal(t, "owner", b.GroupBy)
}
