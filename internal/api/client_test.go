package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flotagest/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Vehículo no encontrado"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.ListVehicles(context.Background(), dto.VehicleFilter{})

	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Vehículo no encontrado", apiErr.Message)
	assert.Equal(t, "Vehículo no encontrado", Message(err, "fallback"))
}

func TestClientErrorWithoutBodyUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.ListVehicles(context.Background(), dto.VehicleFilter{})

	require.Error(t, err)
	assert.Equal(t, "Error al cargar los vehículos", Message(err, "Error al cargar los vehículos"))
}

func TestClientSendsRequestID(t *testing.T) {
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	require.NoError(t, c.DeleteVehicle(context.Background(), uuid.New()))

	_, err := uuid.Parse(requestID)
	assert.NoError(t, err)
}

func TestClientNetworkErrorIsNotAPIError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.ListVehicles(context.Background(), dto.VehicleFilter{})

	require.Error(t, err)
	_, ok := err.(*Error)
	assert.False(t, ok)
	assert.Equal(t, "fallback", Message(err, "fallback"))
}
