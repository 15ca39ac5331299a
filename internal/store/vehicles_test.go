package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flotagest/internal/api"
	"flotagest/internal/dto"
	"flotagest/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, 2*time.Second)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func testVehicles() []model.Vehicle {
	return []model.Vehicle{
		{ID: uuid.New(), Marca: "Toyota", Modelo: "Hilux", Placa: "P111111"},
		{ID: uuid.New(), Marca: "Nissan", Modelo: "Frontier", Placa: "P222222"},
	}
}

func TestVehicleStoreFetchReplacesCollection(t *testing.T) {
	first := testVehicles()
	second := []model.Vehicle{{ID: uuid.New(), Marca: "Ford", Modelo: "Ranger", Placa: "P333333"}}

	responses := [][]model.Vehicle{first, second}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, responses[0])
		responses = responses[1:]
	}))

	st := NewVehicleStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.VehicleFilter{}))
	assert.Len(t, st.Vehicles(), 2)

	// second fetch full-replaces, never merges
	require.NoError(t, st.Fetch(context.Background(), dto.VehicleFilter{}))
	got := st.Vehicles()
	require.Len(t, got, 1)
	assert.Equal(t, "P333333", got[0].Placa)
	assert.NoError(t, st.Err())
}

func TestVehicleStoreFetchSendsFilterParams(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(t, w, http.StatusOK, []model.Vehicle{})
	}))

	st := NewVehicleStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.VehicleFilter{Marca: "toy", Placa: "P1"}))

	assert.Equal(t, []string{"toy"}, query["marca"])
	assert.Equal(t, []string{"P1"}, query["placa"])
	assert.NotContains(t, query, "modelo")
}

func TestVehicleStoreFetchFailureKeepsLastCollection(t *testing.T) {
	fail := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{"message": "Error interno del servidor"})
			return
		}
		writeJSON(t, w, http.StatusOK, testVehicles())
	}))

	st := NewVehicleStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.VehicleFilter{}))
	before := st.Vehicles()

	fail = true
	err := st.Fetch(context.Background(), dto.VehicleFilter{})
	require.Error(t, err)
	assert.Equal(t, before, st.Vehicles())
	assert.Equal(t, err, st.Err())
	assert.Equal(t, "Error interno del servidor", api.Message(err, "fallback"))
	assert.False(t, st.Loading())
}

func TestVehicleStoreCreateAppendsServerEntity(t *testing.T) {
	serverID := uuid.New()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req dto.CreateVehicleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, http.StatusCreated, model.Vehicle{
			ID: serverID, Marca: req.Marca, Modelo: req.Modelo, Placa: req.Placa,
		})
	}))

	st := NewVehicleStore(client)
	created, err := st.Create(context.Background(), dto.CreateVehicleRequest{
		Marca: "Toyota", Modelo: "Corolla", Placa: "P999999",
	})
	require.NoError(t, err)
	assert.Equal(t, serverID, created.ID)

	got := st.Vehicles()
	require.Len(t, got, 1)
	assert.Equal(t, serverID, got[0].ID)
}

func TestVehicleStoreCreateFailureLeavesCollectionIdentical(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, http.StatusOK, testVehicles())
			return
		}
		writeJSON(t, w, http.StatusConflict, map[string]string{"message": "La placa ya existe"})
	}))

	st := NewVehicleStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.VehicleFilter{}))
	before := st.Vehicles()

	_, err := st.Create(context.Background(), dto.CreateVehicleRequest{
		Marca: "Toyota", Modelo: "Hilux", Placa: "P111111",
	})
	require.Error(t, err)
	assert.Equal(t, "La placa ya existe", api.Message(err, "fallback"))
	assert.Equal(t, before, st.Vehicles())
}

func TestVehicleStoreUpdateReplacesInPlace(t *testing.T) {
	vehicles := testVehicles()
	target := vehicles[0]

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, http.StatusOK, vehicles)
			return
		}
		updated := target
		updated.Modelo = "Hilux 2025"
		writeJSON(t, w, http.StatusOK, updated)
	}))

	st := NewVehicleStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.VehicleFilter{}))

	_, err := st.Update(context.Background(), target.ID, dto.UpdateVehicleRequest{
		Marca: "Toyota", Modelo: "Hilux 2025", Placa: "P111111",
	})
	require.NoError(t, err)

	got := st.Vehicles()
	require.Len(t, got, 2)
	// order preserved, element replaced in place
	assert.Equal(t, target.ID, got[0].ID)
	assert.Equal(t, "Hilux 2025", got[0].Modelo)
	assert.Equal(t, vehicles[1].ID, got[1].ID)
}

func TestVehicleStoreDeleteSplices(t *testing.T) {
	vehicles := testVehicles()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, http.StatusOK, vehicles)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	st := NewVehicleStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.VehicleFilter{}))

	require.NoError(t, st.Delete(context.Background(), vehicles[0].ID))
	got := st.Vehicles()
	require.Len(t, got, 1)
	assert.Equal(t, vehicles[1].ID, got[0].ID)
}

func TestVehicleStoreDeleteFailureKeepsElement(t *testing.T) {
	vehicles := testVehicles()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(t, w, http.StatusOK, vehicles)
			return
		}
		writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "Vehículo no encontrado"})
	}))

	st := NewVehicleStore(client)
	require.NoError(t, st.Fetch(context.Background(), dto.VehicleFilter{}))

	err := st.Delete(context.Background(), vehicles[0].ID)
	require.Error(t, err)
	assert.Len(t, st.Vehicles(), 2)
}
