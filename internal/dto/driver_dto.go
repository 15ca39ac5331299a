package dto

import (
	"net/url"
	"strconv"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateDriverRequest struct {
	Nombre   string  `json:"nombre"   validate:"required,min=1"`
	Licencia string  `json:"licencia" validate:"required,min=1"`
	Telefono *string `json:"telefono,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateDriverRequest is a partial update: nil fields are left untouched by
// the server.
type UpdateDriverRequest struct {
	Nombre   *string `json:"nombre,omitempty"   validate:"omitempty,min=1"`
	Licencia *string `json:"licencia,omitempty" validate:"omitempty,min=1"`
	Telefono *string `json:"telefono,omitempty"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Activo   *bool   `json:"activo,omitempty"`
}

// ─── Forms ───────────────────────────────────────────────────────────────────

// DriverForm is raw form input. Payload mapping rule: empty or whitespace-only
// input for an optional field (telefono, email) maps to field-absent.
type DriverForm struct {
	Nombre   string
	Licencia string
	Telefono string
	Email    string
	Activo   *bool
}

func (f DriverForm) CreatePayload() CreateDriverRequest {
	return CreateDriverRequest{
		Nombre:   f.Nombre,
		Licencia: f.Licencia,
		Telefono: OptionalString(f.Telefono),
		Email:    OptionalString(f.Email),
	}
}

func (f DriverForm) UpdatePayload() UpdateDriverRequest {
	return UpdateDriverRequest{
		Nombre:   OptionalString(f.Nombre),
		Licencia: OptionalString(f.Licencia),
		Telefono: OptionalString(f.Telefono),
		Email:    OptionalString(f.Email),
		Activo:   f.Activo,
	}
}

// ─── Filters ─────────────────────────────────────────────────────────────────

type DriverFilter struct {
	Nombre   string `form:"nombre"`
	Licencia string `form:"licencia"`
	Activo   *bool  `form:"activo"`
}

func (f DriverFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "nombre", f.Nombre)
	setNonEmpty(v, "licencia", f.Licencia)
	if f.Activo != nil {
		v.Set("activo", strconv.FormatBool(*f.Activo))
	}
	return v
}
