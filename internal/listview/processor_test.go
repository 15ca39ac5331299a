package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type persona struct {
	Nombre   string
	Licencia string
	Edad     float64
	Alta     time.Time
	Placa    *string
}

func nombreDe(p persona) string   { return p.Nombre }
func licenciaDe(p persona) string { return p.Licencia }

func placaDe(p persona) Value { return NullableString(p.Placa) }

func strPtr(s string) *string { return &s }

func personas() []persona {
	return []persona{
		{Nombre: "Ana", Licencia: "L-100", Edad: 31},
		{Nombre: "juan", Licencia: "L-200", Edad: 24},
		{Nombre: "SANTIAGO", Licencia: "L-300", Edad: 45},
		{Nombre: "Beatriz", Licencia: "L-400", Edad: 24},
		{Nombre: "Hernán", Licencia: "L-500", Edad: 52},
	}
}

func TestSubstringCaseInsensitive(t *testing.T) {
	got := Filter(personas(), Substring(nombreDe, "an"))

	require.Len(t, got, 3)
	assert.Equal(t, "Ana", got[0].Nombre)
	assert.Equal(t, "juan", got[1].Nombre)
	assert.Equal(t, "SANTIAGO", got[2].Nombre)
}

func TestSubstringEmptyTermMatchesEverything(t *testing.T) {
	items := personas()
	got := Filter(items, Substring(nombreDe, ""))
	assert.Len(t, got, len(items))
}

func TestFilterAndsPredicates(t *testing.T) {
	got := Filter(personas(),
		Substring(nombreDe, "an"),
		Substring(licenciaDe, "100"),
	)

	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Nombre)
}

func TestFilterIgnoresNilPredicates(t *testing.T) {
	got := Filter(personas(), nil, Substring(nombreDe, "bea"))
	require.Len(t, got, 1)
	assert.Equal(t, "Beatriz", got[0].Nombre)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := personas()
	Filter(items, Substring(nombreDe, "zzz"))
	assert.Equal(t, personas(), items)
}

func TestGlobalSearchMatchesAnyField(t *testing.T) {
	// "400" only appears in Beatriz's licencia, "hern" only in a nombre
	got := Filter(personas(), GlobalSearch("400", nombreDe, licenciaDe))
	require.Len(t, got, 1)
	assert.Equal(t, "Beatriz", got[0].Nombre)

	got = Filter(personas(), GlobalSearch("hern", nombreDe, licenciaDe))
	require.Len(t, got, 1)
	assert.Equal(t, "Hernán", got[0].Nombre)
}

func TestGlobalSearchNoMatch(t *testing.T) {
	got := Filter(personas(), GlobalSearch("xyz", nombreDe, licenciaDe))
	assert.Empty(t, got)
}

func TestSortStringsCaseInsensitive(t *testing.T) {
	byNombre := func(p persona) Value { return String(p.Nombre) }

	got := Sort(personas(), byNombre, Asc)

	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.Nombre
	}
	assert.Equal(t, []string{"Ana", "Beatriz", "Hernán", "juan", "SANTIAGO"}, names)
}

func TestSortDescReversesOrder(t *testing.T) {
	byNombre := func(p persona) Value { return String(p.Nombre) }

	asc := Sort(personas(), byNombre, Asc)
	desc := Sort(personas(), byNombre, Desc)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].Nombre, desc[len(desc)-1-i].Nombre)
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	byEdad := func(p persona) Value { return Number(p.Edad) }

	got := Sort(personas(), byEdad, Asc)

	// juan and Beatriz tie at 24 and must keep their original relative order
	require.Len(t, got, 5)
	assert.Equal(t, "juan", got[0].Nombre)
	assert.Equal(t, "Beatriz", got[1].Nombre)
}

func TestSortIsIdempotent(t *testing.T) {
	byEdad := func(p persona) Value { return Number(p.Edad) }

	once := Sort(personas(), byEdad, Asc)
	twice := Sort(once, byEdad, Asc)

	assert.Equal(t, once, twice)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	items := personas()
	byNombre := func(p persona) Value { return String(p.Nombre) }
	Sort(items, byNombre, Desc)
	assert.Equal(t, personas(), items)
}

func TestSortAbsentValuesLastBothDirections(t *testing.T) {
	items := []persona{
		{Nombre: "sin placa"},
		{Nombre: "con B", Placa: strPtr("B-222")},
		{Nombre: "con A", Placa: strPtr("A-111")},
	}

	asc := Sort(items, placaDe, Asc)
	require.Len(t, asc, 3)
	assert.Equal(t, "con A", asc[0].Nombre)
	assert.Equal(t, "con B", asc[1].Nombre)
	assert.Equal(t, "sin placa", asc[2].Nombre)

	desc := Sort(items, placaDe, Desc)
	require.Len(t, desc, 3)
	assert.Equal(t, "con B", desc[0].Nombre)
	assert.Equal(t, "con A", desc[1].Nombre)
	assert.Equal(t, "sin placa", desc[2].Nombre)
}

func TestSortTimesChronologically(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []persona{
		{Nombre: "tercero", Alta: base.AddDate(0, 0, 2)},
		{Nombre: "primero", Alta: base},
		{Nombre: "segundo", Alta: base.AddDate(0, 0, 1)},
	}
	byAlta := func(p persona) Value { return Time(p.Alta) }

	got := Sort(items, byAlta, Desc)
	require.Len(t, got, 3)
	assert.Equal(t, "tercero", got[0].Nombre)
	assert.Equal(t, "segundo", got[1].Nombre)
	assert.Equal(t, "primero", got[2].Nombre)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 1, TotalPages(1, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 3, TotalPages(5, 2))
}

func TestPaginateWindows(t *testing.T) {
	items := personas() // 5 items, pageSize 2 → 3 pages

	page1, total, totalPages := Paginate(items, 1, 2)
	assert.Equal(t, 5, total)
	assert.Equal(t, 3, totalPages)
	require.Len(t, page1, 2)
	assert.Equal(t, "Ana", page1[0].Nombre)

	page3, _, _ := Paginate(items, 3, 2)
	require.Len(t, page3, 1)
	assert.Equal(t, "Hernán", page3[0].Nombre)

	page4, total, totalPages := Paginate(items, 4, 2)
	assert.Empty(t, page4)
	assert.Equal(t, 5, total)
	assert.Equal(t, 3, totalPages)
}

func TestPaginateInvalidPage(t *testing.T) {
	got, total, totalPages := Paginate(personas(), 0, 2)
	assert.Empty(t, got)
	assert.Equal(t, 5, total)
	assert.Equal(t, 3, totalPages)
}

func TestProcessFilterSortPaginate(t *testing.T) {
	byNombre := func(p persona) Value { return String(p.Nombre) }

	res := Process(personas(), Query[persona]{
		Filters:  []Predicate[persona]{Substring(nombreDe, "an")},
		Sort:     &SortSpec[persona]{Key: byNombre, Direction: Asc},
		Page:     1,
		PageSize: 2,
	})

	// "an" keeps Ana, juan, SANTIAGO; sorted: Ana, juan, SANTIAGO
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.TotalPages)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Ana", res.Items[0].Nombre)
	assert.Equal(t, "juan", res.Items[1].Nombre)
}

func TestProcessWithoutSortKeepsOrder(t *testing.T) {
	res := Process(personas(), Query[persona]{Page: 1, PageSize: 12})
	require.Len(t, res.Items, 5)
	assert.Equal(t, "Ana", res.Items[0].Nombre)
	assert.Equal(t, "Hernán", res.Items[4].Nombre)
}
