package store

import (
	"context"
	"sync"

	"flotagest/internal/api"
	"flotagest/internal/dto"
	"flotagest/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// VehicleStore owns the canonical vehicle collection.
type VehicleStore struct {
	api *api.Client

	mu       sync.Mutex
	vehicles []model.Vehicle
	loading  bool
	err      error
}

func NewVehicleStore(client *api.Client) *VehicleStore {
	return &VehicleStore{api: client}
}

// Vehicles returns a copy of the canonical collection.
func (s *VehicleStore) Vehicles() []model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.vehicles)
}

func (s *VehicleStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err is the last read error; nil after a successful fetch.
func (s *VehicleStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Fetch replaces the whole collection with the server response — the list is
// never merged. On failure the collection keeps its last-known value and the
// error is recorded for the page to observe (and returned).
func (s *VehicleStore) Fetch(ctx context.Context, filter dto.VehicleFilter) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	vehicles, err := s.api.ListVehicles(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		log.Error().Err(err).Msg("vehicles: fetch failed")
		s.err = err
		return err
	}
	s.vehicles = vehicles
	return nil
}

// Create posts the payload and appends the server-returned vehicle. Ordering
// after creation is the caller's concern (re-sort or refetch).
func (s *VehicleStore) Create(ctx context.Context, req dto.CreateVehicleRequest) (*model.Vehicle, error) {
	created, err := s.api.CreateVehicle(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("vehicles: create failed")
		return nil, err
	}
	s.mu.Lock()
	s.vehicles = append(s.vehicles, *created)
	s.mu.Unlock()
	return created, nil
}

// Update replaces the matching element in place, preserving collection order.
func (s *VehicleStore) Update(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (*model.Vehicle, error) {
	updated, err := s.api.UpdateVehicle(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Str("vehicle_id", id.String()).Msg("vehicles: update failed")
		return nil, err
	}
	s.mu.Lock()
	replaceByID(s.vehicles, id, vehicleID, *updated)
	s.mu.Unlock()
	return updated, nil
}

// Delete splices the vehicle out after the server confirms the deletion.
func (s *VehicleStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.api.DeleteVehicle(ctx, id); err != nil {
		log.Error().Err(err).Str("vehicle_id", id.String()).Msg("vehicles: delete failed")
		return err
	}
	s.mu.Lock()
	s.vehicles = removeByID(s.vehicles, id, vehicleID)
	s.mu.Unlock()
	return nil
}

func vehicleID(v model.Vehicle) uuid.UUID { return v.ID }
