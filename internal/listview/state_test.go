package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStartsOnPageOne(t *testing.T) {
	s := NewState[persona](2)
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 2, s.PageSize())
}

func TestStateSetFiltersResetsPage(t *testing.T) {
	s := NewState[persona](2)
	s.Apply(personas())
	s.SetPage(3)
	require.Equal(t, 3, s.Page())

	s.SetFilters(Substring(nombreDe, "an"))
	assert.Equal(t, 1, s.Page())
}

func TestStateSetSortResetsPage(t *testing.T) {
	s := NewState[persona](2)
	s.Apply(personas())
	s.SetPage(2)

	s.SetSort(func(p persona) Value { return String(p.Nombre) }, Desc)
	assert.Equal(t, 1, s.Page())

	s.SetPage(2)
	s.ClearSort()
	assert.Equal(t, 1, s.Page())
}

func TestStateSetPageClampsToKnownRange(t *testing.T) {
	s := NewState[persona](2)
	s.Apply(personas()) // 5 items → 3 pages

	s.SetPage(99)
	assert.Equal(t, 3, s.Page())

	s.SetPage(-4)
	assert.Equal(t, 1, s.Page())
}

func TestStateSetPageBeforeFirstApplyOnlyLowerBound(t *testing.T) {
	s := NewState[persona](2)
	s.SetPage(7)
	assert.Equal(t, 7, s.Page())

	s.SetPage(0)
	assert.Equal(t, 1, s.Page())
}

func TestStateNextPrevPage(t *testing.T) {
	s := NewState[persona](2)
	s.Apply(personas())

	s.NextPage()
	s.NextPage()
	assert.Equal(t, 3, s.Page())
	s.NextPage() // already on the last page
	assert.Equal(t, 3, s.Page())

	s.PrevPage()
	s.PrevPage()
	s.PrevPage() // already on the first page
	assert.Equal(t, 1, s.Page())
}

func TestStateApplyNarrowedFilterShrinksPageCount(t *testing.T) {
	s := NewState[persona](2)
	res := s.Apply(personas())
	require.Equal(t, 3, res.TotalPages)
	s.SetPage(3)

	s.SetFilters(Substring(nombreDe, "bea"))
	res = s.Apply(personas())
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, res.TotalPages)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Beatriz", res.Items[0].Nombre)
}
