package dto

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for date-only values (fecha, startDate,
// endDate query parameters).
const DateLayout = "2006-01-02"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateRecordRequest struct {
	VehicleID   uuid.UUID `json:"vehicleId"   validate:"required"`
	DriverID    uuid.UUID `json:"driverId"    validate:"required"`
	Fecha       time.Time `json:"fecha"       validate:"required"`
	Hora        string    `json:"hora"        validate:"required,datetime=15:04"`
	Kilometraje float64   `json:"kilometraje" validate:"gte=0"`
	Tipo        string    `json:"tipo"        validate:"required,oneof=entrada salida"`
}

type UpdateRecordRequest struct {
	VehicleID   *uuid.UUID `json:"vehicleId,omitempty"`
	DriverID    *uuid.UUID `json:"driverId,omitempty"`
	Fecha       *time.Time `json:"fecha,omitempty"`
	Hora        *string    `json:"hora,omitempty"        validate:"omitempty,datetime=15:04"`
	Kilometraje *float64   `json:"kilometraje,omitempty" validate:"omitempty,gte=0"`
	Tipo        *string    `json:"tipo,omitempty"        validate:"omitempty,oneof=entrada salida"`
}

// ─── Forms ───────────────────────────────────────────────────────────────────

// RecordForm is raw form input for an entry/exit record. The payload mapping
// normalizes Tipo to the canonical lowercase enum before validation, so form
// inputs like "SALIDA" and "salida" produce identical payloads.
type RecordForm struct {
	VehicleID   uuid.UUID
	DriverID    uuid.UUID
	Fecha       time.Time
	Hora        string
	Kilometraje float64
	Tipo        string
}

func (f RecordForm) CreatePayload() CreateRecordRequest {
	return CreateRecordRequest{
		VehicleID:   f.VehicleID,
		DriverID:    f.DriverID,
		Fecha:       f.Fecha,
		Hora:        f.Hora,
		Kilometraje: f.Kilometraje,
		Tipo:        NormalizeTipo(f.Tipo),
	}
}

// ─── Filters ─────────────────────────────────────────────────────────────────

// RecordFilter maps to the query string of GET /records. Ids and tipo match
// by equality, dates by inclusive range. The handler parses it by hand, so no
// binding tags here.
type RecordFilter struct {
	VehicleID *uuid.UUID
	DriverID  *uuid.UUID
	Tipo      string
	StartDate *time.Time
	EndDate   *time.Time
}

func (f RecordFilter) Values() url.Values {
	v := url.Values{}
	if f.VehicleID != nil {
		v.Set("vehicleId", f.VehicleID.String())
	}
	if f.DriverID != nil {
		v.Set("driverId", f.DriverID.String())
	}
	setNonEmpty(v, "tipo", NormalizeTipo(f.Tipo))
	if f.StartDate != nil {
		v.Set("startDate", f.StartDate.Format(DateLayout))
	}
	if f.EndDate != nil {
		v.Set("endDate", f.EndDate.Format(DateLayout))
	}
	return v
}

// ─── Filter options (GET /records/filters) ───────────────────────────────────

type VehicleOption struct {
	ID     uuid.UUID `json:"id"`
	Placa  string    `json:"placa"`
	Marca  string    `json:"marca"`
	Modelo string    `json:"modelo"`
}

type DriverOption struct {
	ID       uuid.UUID `json:"id"`
	Nombre   string    `json:"nombre"`
	Licencia string    `json:"licencia"`
}

type FilterOptions struct {
	Vehicles []VehicleOption `json:"vehicles"`
	Drivers  []DriverOption  `json:"drivers"`
}
