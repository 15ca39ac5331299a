package view

import (
	"flotagest/internal/listview"
	"flotagest/internal/model"
)

// ─── Drivers ─────────────────────────────────────────────────────────────────
//
// Driver list filtering (nombre, licencia, activo) happens server-side via
// query parameters; client-side processing is sort + pagination only.

const (
	DriverSortNombre   = "nombre"
	DriverSortLicencia = "licencia"
	DriverSortActivo   = "activo"
)

var driverSortKeys = map[string]listview.Accessor[model.Driver]{
	DriverSortNombre:   func(d model.Driver) listview.Value { return listview.String(d.Nombre) },
	DriverSortLicencia: func(d model.Driver) listview.Value { return listview.String(d.Licencia) },
	DriverSortActivo:   func(d model.Driver) listview.Value { return listview.Bool(d.Activo) },
}

func DriverSortAccessor(key string) (listview.Accessor[model.Driver], bool) {
	acc, ok := driverSortKeys[key]
	return acc, ok
}

func DriverSortOptions() []SortOption {
	return []SortOption{
		{DriverSortNombre, listview.Asc, "Nombre (A-Z)"},
		{DriverSortNombre, listview.Desc, "Nombre (Z-A)"},
		{DriverSortLicencia, listview.Asc, "Licencia (A-Z)"},
		{DriverSortLicencia, listview.Desc, "Licencia (Z-A)"},
		{DriverSortActivo, listview.Desc, "Estado (Activo primero)"},
		{DriverSortActivo, listview.Asc, "Estado (Inactivo primero)"},
	}
}
