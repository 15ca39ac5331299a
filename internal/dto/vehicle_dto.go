package dto

import "net/url"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateVehicleRequest struct {
	Marca  string `json:"marca"  validate:"required,min=1"`
	Modelo string `json:"modelo" validate:"required,min=1"`
	Placa  string `json:"placa"  validate:"required,min=1"`
}

type UpdateVehicleRequest struct {
	Marca  string `json:"marca"  validate:"required,min=1"`
	Modelo string `json:"modelo" validate:"required,min=1"`
	Placa  string `json:"placa"  validate:"required,min=1"`
}

// ─── Filters ─────────────────────────────────────────────────────────────────

// VehicleFilter maps to the query string of GET /vehicles. String fields are
// matched by case-insensitive substring on the server.
type VehicleFilter struct {
	Marca  string `form:"marca"`
	Modelo string `form:"modelo"`
	Placa  string `form:"placa"`
}

// Values encodes the filter as query parameters, omitting unset fields.
func (f VehicleFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "marca", f.Marca)
	setNonEmpty(v, "modelo", f.Modelo)
	setNonEmpty(v, "placa", f.Placa)
	return v
}
