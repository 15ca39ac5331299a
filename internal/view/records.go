package view

import (
	"flotagest/internal/listview"
	"flotagest/internal/model"
)

// ─── Records ─────────────────────────────────────────────────────────────────
//
// Record list filtering (vehicle, driver, tipo, date range) happens
// server-side; client-side processing is sort + pagination. Two sort keys
// reach into the denormalized snapshots; a missing snapshot resolves as
// absent and sorts after every present value.

const (
	RecordSortFecha        = "fecha"
	RecordSortKilometraje  = "kilometraje"
	RecordSortTipo         = "tipo"
	RecordSortVehiclePlaca = "vehicle.placa"
	RecordSortDriverNombre = "driver.nombre"
)

var recordSortKeys = map[string]listview.Accessor[model.Record]{
	RecordSortFecha:       func(r model.Record) listview.Value { return listview.Time(r.Fecha) },
	RecordSortKilometraje: func(r model.Record) listview.Value { return listview.Number(r.Kilometraje) },
	RecordSortTipo:        func(r model.Record) listview.Value { return listview.String(r.Tipo) },
	RecordSortVehiclePlaca: func(r model.Record) listview.Value {
		if r.Vehicle == nil {
			return listview.Absent()
		}
		return listview.String(r.Vehicle.Placa)
	},
	RecordSortDriverNombre: func(r model.Record) listview.Value {
		if r.Driver == nil {
			return listview.Absent()
		}
		return listview.String(r.Driver.Nombre)
	},
}

func RecordSortAccessor(key string) (listview.Accessor[model.Record], bool) {
	acc, ok := recordSortKeys[key]
	return acc, ok
}

// DefaultRecordSort is the records page's initial ordering: most recent
// first.
func DefaultRecordSort() listview.SortSpec[model.Record] {
	return listview.SortSpec[model.Record]{
		Key:       recordSortKeys[RecordSortFecha],
		Direction: listview.Desc,
	}
}

func RecordSortOptions() []SortOption {
	return []SortOption{
		{RecordSortFecha, listview.Desc, "Fecha (Más reciente)"},
		{RecordSortFecha, listview.Asc, "Fecha (Más antiguo)"},
		{RecordSortKilometraje, listview.Desc, "KM (Mayor a menor)"},
		{RecordSortKilometraje, listview.Asc, "KM (Menor a mayor)"},
		{RecordSortVehiclePlaca, listview.Asc, "Vehículo/Placa (A-Z)"},
		{RecordSortVehiclePlaca, listview.Desc, "Vehículo/Placa (Z-A)"},
		{RecordSortDriverNombre, listview.Asc, "Motorista (A-Z)"},
		{RecordSortDriverNombre, listview.Desc, "Motorista (Z-A)"},
		{RecordSortTipo, listview.Asc, "Tipo (A-Z)"},
		{RecordSortTipo, listview.Desc, "Tipo (Z-A)"},
	}
}
