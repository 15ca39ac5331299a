package model

import (
	"time"

	"github.com/google/uuid"
)

// Record type values. Canonical form is lowercase everywhere: the DTO layer
// normalizes input and filters compare against these constants.
const (
	TipoEntrada = "entrada"
	TipoSalida  = "salida"
)

// Record is one entry/exit log line for a vehicle. The Vehicle and Driver
// fields are read-only snapshots joined by the server at fetch time; they are
// never written back — record writes carry only the scalar foreign keys.
type Record struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VehicleID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"vehicleId"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index" json:"driverId"`
	Fecha       time.Time  `gorm:"not null;index" json:"fecha"`
	Hora        string     `gorm:"not null" json:"hora"` // HH:MM
	Kilometraje float64    `gorm:"not null" json:"kilometraje"`
	Tipo        string     `gorm:"not null" json:"tipo"` // entrada | salida
	CreatedAt   time.Time  `json:"createdAt"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle"`
	Driver  *Driver  `gorm:"foreignKey:DriverID" json:"driver"`
}

func (Record) TableName() string { return "records" }
