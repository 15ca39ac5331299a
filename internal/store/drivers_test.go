package store

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"flotagest/internal/dto"
	"flotagest/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDrivers() []model.Driver {
	tel := "9999-0000"
	return []model.Driver{
		{ID: uuid.New(), Nombre: "Carlos Pérez", Licencia: "LIC-001", Telefono: &tel, Activo: true},
		{ID: uuid.New(), Nombre: "María López", Licencia: "LIC-002", Activo: false},
	}
}

func TestDriverStoreFetchSendsQueryParams(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(t, w, http.StatusOK, []model.Driver{})
	}))

	activo := true
	st := NewDriverStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.DriverFilter{
		Nombre: "car", Licencia: "LIC", Activo: &activo,
	}))

	assert.Equal(t, []string{"car"}, query["nombre"])
	assert.Equal(t, []string{"LIC"}, query["licencia"])
	assert.Equal(t, []string{"true"}, query["activo"])
}

func TestDriverStoreActiveListIsSeparate(t *testing.T) {
	drivers := testDrivers()
	active := drivers[:1]

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/active") {
			writeJSON(t, w, http.StatusOK, active)
			return
		}
		writeJSON(t, w, http.StatusOK, drivers)
	}))

	st := NewDriverStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.DriverFilter{}))
	require.NoError(t, st.FetchActive(context.Background()))

	assert.Len(t, st.Drivers(), 2)
	gotActive := st.ActiveDrivers()
	require.Len(t, gotActive, 1)
	assert.Equal(t, "Carlos Pérez", gotActive[0].Nombre)

	// refreshing the active list must not touch the main collection
	require.NoError(t, st.FetchActive(context.Background()))
	assert.Len(t, st.Drivers(), 2)
}

func TestDriverStoreCreateSendsOptionalFieldsAbsent(t *testing.T) {
	var rawBody map[string]json.RawMessage
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rawBody))
		writeJSON(t, w, http.StatusCreated, model.Driver{ID: uuid.New(), Nombre: "Ana", Licencia: "L-1", Activo: true})
	}))

	st := NewDriverStore(client)
	form := dto.DriverForm{Nombre: "Ana", Licencia: "L-1", Telefono: "  ", Email: ""}
	_, err := st.Create(context.Background(), form.CreatePayload())
	require.NoError(t, err)

	// blank optionals map to field-absent, not null or empty string
	assert.NotContains(t, rawBody, "telefono")
	assert.NotContains(t, rawBody, "email")
	assert.Contains(t, rawBody, "nombre")
}

func TestDriverStoreUpdateReplacesInPlace(t *testing.T) {
	drivers := testDrivers()
	target := drivers[1]

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, http.StatusOK, drivers)
			return
		}
		updated := target
		updated.Activo = true
		writeJSON(t, w, http.StatusOK, updated)
	}))

	st := NewDriverStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.DriverFilter{}))

	activo := true
	_, err := st.Update(context.Background(), target.ID, dto.UpdateDriverRequest{Activo: &activo})
	require.NoError(t, err)

	got := st.Drivers()
	require.Len(t, got, 2)
	assert.Equal(t, drivers[0].ID, got[0].ID)
	assert.Equal(t, target.ID, got[1].ID)
	assert.True(t, got[1].Activo)
}

func TestDriverStoreDeleteSplices(t *testing.T) {
	drivers := testDrivers()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, http.StatusOK, drivers)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	st := NewDriverStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.DriverFilter{}))

	require.NoError(t, st.Delete(context.Background(), drivers[1].ID))
	got := st.Drivers()
	require.Len(t, got, 1)
	assert.Equal(t, drivers[0].ID, got[0].ID)
}
