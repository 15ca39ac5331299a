package model

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a fleet vehicle. Placa is the human identifier shown in lists;
// it is not enforced unique client-side, only by the server.
type Vehicle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Marca     string    `gorm:"not null" json:"marca"`
	Modelo    string    `gorm:"not null" json:"modelo"`
	Placa     string    `gorm:"uniqueIndex;not null" json:"placa"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Vehicle) TableName() string { return "vehicles" }
