package model

import (
	"time"

	"github.com/google/uuid"
)

// Driver (motorista) may be assigned to entry/exit records. Activo is a
// visibility flag used by the active-only listing, not a deletion marker.
type Driver struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	Licencia  string    `gorm:"not null" json:"licencia"`
	Telefono  *string   `json:"telefono"`
	Email     *string   `json:"email"`
	Activo    bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Driver) TableName() string { return "drivers" }
