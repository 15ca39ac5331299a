package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	assert.Nil(t, OptionalString("   "))
	assert.Nil(t, OptionalString("\t\n"))

	got := OptionalString("  7777-8888 ")
	require.NotNil(t, got)
	assert.Equal(t, "7777-8888", *got)
}

func TestNormalizeTipo(t *testing.T) {
	assert.Equal(t, "entrada", NormalizeTipo("ENTRADA"))
	assert.Equal(t, "salida", NormalizeTipo(" Salida "))
	assert.Equal(t, "salida", NormalizeTipo("salida"))
	assert.Equal(t, "", NormalizeTipo("  "))
}

func TestDriverFormCreatePayloadDropsBlankOptionals(t *testing.T) {
	form := DriverForm{Nombre: "Carlos Pérez", Licencia: "LIC-001", Telefono: "  ", Email: ""}
	payload := form.CreatePayload()

	assert.Equal(t, "Carlos Pérez", payload.Nombre)
	assert.Equal(t, "LIC-001", payload.Licencia)
	assert.Nil(t, payload.Telefono)
	assert.Nil(t, payload.Email)
}

func TestDriverFormUpdatePayloadPartial(t *testing.T) {
	activo := false
	form := DriverForm{Nombre: "Carlos Pérez", Activo: &activo}
	payload := form.UpdatePayload()

	require.NotNil(t, payload.Nombre)
	assert.Equal(t, "Carlos Pérez", *payload.Nombre)
	assert.Nil(t, payload.Licencia)
	assert.Nil(t, payload.Telefono)
	assert.Nil(t, payload.Email)
	require.NotNil(t, payload.Activo)
	assert.False(t, *payload.Activo)
}

func TestRecordFormCreatePayloadNormalizesTipo(t *testing.T) {
	form := RecordForm{
		VehicleID:   uuid.New(),
		DriverID:    uuid.New(),
		Fecha:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Hora:        "08:30",
		Kilometraje: 120.5,
		Tipo:        " SALIDA ",
	}
	payload := form.CreatePayload()

	assert.Equal(t, "salida", payload.Tipo)
	assert.NoError(t, Validate(payload))
}

func TestValidateCreateVehicleRequest(t *testing.T) {
	valid := CreateVehicleRequest{Marca: "Toyota", Modelo: "Hilux", Placa: "P123456"}
	assert.NoError(t, Validate(valid))

	err := Validate(CreateVehicleRequest{Marca: "Toyota"})
	require.Error(t, err)
	fields := FieldErrors(err)
	assert.Contains(t, fields, "Modelo")
	assert.Contains(t, fields, "Placa")
	assert.NotContains(t, fields, "Marca")
}

func TestValidateCreateRecordRequest(t *testing.T) {
	base := CreateRecordRequest{
		VehicleID:   uuid.New(),
		DriverID:    uuid.New(),
		Fecha:       time.Now(),
		Hora:        "17:45",
		Kilometraje: 0,
		Tipo:        "entrada",
	}
	assert.NoError(t, Validate(base))

	badHora := base
	badHora.Hora = "25:99"
	err := Validate(badHora)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "Hora")

	badTipo := base
	badTipo.Tipo = "ENTRADA" // normalization happens before validation
	err = Validate(badTipo)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "Tipo")

	badKM := base
	badKM.Kilometraje = -1
	err = Validate(badKM)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "Kilometraje")
}

func TestValidateDriverEmail(t *testing.T) {
	bad := "no-es-un-email"
	err := Validate(CreateDriverRequest{Nombre: "Ana", Licencia: "L-1", Email: &bad})
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "Email")

	ok := "ana@flota.hn"
	assert.NoError(t, Validate(CreateDriverRequest{Nombre: "Ana", Licencia: "L-1", Email: &ok}))
}

func TestFieldErrorsNonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

func TestVehicleFilterValues(t *testing.T) {
	v := VehicleFilter{Marca: "toyota", Placa: "P1"}.Values()
	assert.Equal(t, "toyota", v.Get("marca"))
	assert.Equal(t, "P1", v.Get("placa"))
	assert.False(t, v.Has("modelo"))
}

func TestDriverFilterValues(t *testing.T) {
	activo := true
	v := DriverFilter{Nombre: "car", Activo: &activo}.Values()
	assert.Equal(t, "car", v.Get("nombre"))
	assert.Equal(t, "true", v.Get("activo"))
	assert.False(t, v.Has("licencia"))
}

func TestRecordFilterValues(t *testing.T) {
	vehicleID := uuid.New()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	v := RecordFilter{
		VehicleID: &vehicleID,
		Tipo:      "SALIDA",
		StartDate: &start,
		EndDate:   &end,
	}.Values()

	assert.Equal(t, vehicleID.String(), v.Get("vehicleId"))
	assert.Equal(t, "salida", v.Get("tipo"))
	assert.Equal(t, "2025-01-01", v.Get("startDate"))
	assert.Equal(t, "2025-01-31", v.Get("endDate"))
	assert.False(t, v.Has("driverId"))
}
