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

// DriverStore owns the canonical driver collection plus a separate
// active-only collection used to populate selection inputs. The two are
// never merged.
type DriverStore struct {
	api *api.Client

	mu      sync.Mutex
	drivers []model.Driver
	active  []model.Driver
	loading bool
	err     error
}

func NewDriverStore(client *api.Client) *DriverStore {
	return &DriverStore{api: client}
}

func (s *DriverStore) Drivers() []model.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.drivers)
}

// ActiveDrivers returns the active-only list for combos.
func (s *DriverStore) ActiveDrivers() []model.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.active)
}

func (s *DriverStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *DriverStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Fetch sends the filters as query parameters and full-replaces the main
// collection on success.
func (s *DriverStore) Fetch(ctx context.Context, filter dto.DriverFilter) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	drivers, err := s.api.ListDrivers(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		log.Error().Err(err).Msg("drivers: fetch failed")
		s.err = err
		return err
	}
	s.drivers = drivers
	return nil
}

// FetchActive refreshes the active-only collection; the main collection is
// untouched either way.
func (s *DriverStore) FetchActive(ctx context.Context) error {
	active, err := s.api.ListActiveDrivers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("drivers: fetch active failed")
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.active = active
	s.mu.Unlock()
	return nil
}

func (s *DriverStore) Create(ctx context.Context, req dto.CreateDriverRequest) (*model.Driver, error) {
	created, err := s.api.CreateDriver(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("drivers: create failed")
		return nil, err
	}
	s.mu.Lock()
	s.drivers = append(s.drivers, *created)
	s.mu.Unlock()
	return created, nil
}

func (s *DriverStore) Update(ctx context.Context, id uuid.UUID, req dto.UpdateDriverRequest) (*model.Driver, error) {
	updated, err := s.api.UpdateDriver(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Str("driver_id", id.String()).Msg("drivers: update failed")
		return nil, err
	}
	s.mu.Lock()
	replaceByID(s.drivers, id, driverID, *updated)
	s.mu.Unlock()
	return updated, nil
}

func (s *DriverStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.api.DeleteDriver(ctx, id); err != nil {
		log.Error().Err(err).Str("driver_id", id.String()).Msg("drivers: delete failed")
		return err
	}
	s.mu.Lock()
	s.drivers = removeByID(s.drivers, id, driverID)
	s.mu.Unlock()
	return nil
}

func driverID(d model.Driver) uuid.UUID { return d.ID }
