// Package view declares, per entity type, which fields are filterable, which
// sort keys exist (as a closed set of named accessor functions rather than
// runtime string lookups), and which display fields the global search scans.
// These static declarations are what the pages invoke the listview processor
// with.
package view

import (
	"flotagest/internal/listview"
	"flotagest/internal/model"
)

// PageSize is the fixed rows-per-page of every list. Not user-configurable.
const PageSize = 12

// SortOption is one entry of a page's "Ordenar por" control.
type SortOption struct {
	Key       string
	Direction listview.Direction
	Label     string
}

// ─── Vehicles ────────────────────────────────────────────────────────────────

const (
	VehicleSortPlaca  = "placa"
	VehicleSortMarca  = "marca"
	VehicleSortModelo = "modelo"
)

var vehicleSortKeys = map[string]listview.Accessor[model.Vehicle]{
	VehicleSortPlaca:  func(v model.Vehicle) listview.Value { return listview.String(v.Placa) },
	VehicleSortMarca:  func(v model.Vehicle) listview.Value { return listview.String(v.Marca) },
	VehicleSortModelo: func(v model.Vehicle) listview.Value { return listview.String(v.Modelo) },
}

// VehicleSortAccessor resolves a named sort key; ok is false for unknown keys.
func VehicleSortAccessor(key string) (listview.Accessor[model.Vehicle], bool) {
	acc, ok := vehicleSortKeys[key]
	return acc, ok
}

func VehicleSortOptions() []SortOption {
	return []SortOption{
		{VehicleSortPlaca, listview.Asc, "Placa (A-Z)"},
		{VehicleSortPlaca, listview.Desc, "Placa (Z-A)"},
		{VehicleSortMarca, listview.Asc, "Marca (A-Z)"},
		{VehicleSortMarca, listview.Desc, "Marca (Z-A)"},
		{VehicleSortModelo, listview.Asc, "Modelo (A-Z)"},
		{VehicleSortModelo, listview.Desc, "Modelo (Z-A)"},
	}
}

// VehicleGlobalSearch matches any of the fixed display fields.
func VehicleGlobalSearch(term string) listview.Predicate[model.Vehicle] {
	return listview.GlobalSearch(term,
		func(v model.Vehicle) string { return v.Placa },
		func(v model.Vehicle) string { return v.Marca },
		func(v model.Vehicle) string { return v.Modelo },
	)
}

// VehicleColumnFilters builds the per-column substring predicates. Unset
// fields match everything; the result is ANDed with the global search.
func VehicleColumnFilters(marca, modelo, placa string) []listview.Predicate[model.Vehicle] {
	return []listview.Predicate[model.Vehicle]{
		listview.Substring(func(v model.Vehicle) string { return v.Marca }, marca),
		listview.Substring(func(v model.Vehicle) string { return v.Modelo }, modelo),
		listview.Substring(func(v model.Vehicle) string { return v.Placa }, placa),
	}
}
