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

// RecordStore owns the canonical entry/exit record collection and the
// vehicle/driver option lists that drive the records page's inputs.
type RecordStore struct {
	api *api.Client

	mu             sync.Mutex
	records        []model.Record
	filterOptions  dto.FilterOptions
	loading        bool
	loadingFilters bool
	err            error
}

func NewRecordStore(client *api.Client) *RecordStore {
	return &RecordStore{api: client}
}

func (s *RecordStore) Records() []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.records)
}

func (s *RecordStore) FilterOptions() dto.FilterOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dto.FilterOptions{
		Vehicles: snapshot(s.filterOptions.Vehicles),
		Drivers:  snapshot(s.filterOptions.Drivers),
	}
}

func (s *RecordStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *RecordStore) LoadingFilters() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingFilters
}

func (s *RecordStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Fetch full-replaces the canonical collection on success. Record snapshots
// (vehicle/driver) are only as current as this fetch.
func (s *RecordStore) Fetch(ctx context.Context, filter dto.RecordFilter) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	records, err := s.api.ListRecords(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		log.Error().Err(err).Msg("records: fetch failed")
		s.err = err
		return err
	}
	s.records = records
	return nil
}

// FetchFilterOptions loads the option lists for filter/selection inputs. On
// failure the options reset to empty rather than keeping stale entries.
func (s *RecordStore) FetchFilterOptions(ctx context.Context) error {
	s.mu.Lock()
	s.loadingFilters = true
	s.err = nil
	s.mu.Unlock()

	opts, err := s.api.GetRecordFilterOptions(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadingFilters = false
	if err != nil {
		log.Error().Err(err).Msg("records: fetch filter options failed")
		s.filterOptions = dto.FilterOptions{}
		s.err = err
		return err
	}
	s.filterOptions = *opts
	return nil
}

func (s *RecordStore) Create(ctx context.Context, req dto.CreateRecordRequest) (*model.Record, error) {
	created, err := s.api.CreateRecord(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("records: create failed")
		return nil, err
	}
	s.mu.Lock()
	s.records = append(s.records, *created)
	s.mu.Unlock()
	return created, nil
}

func (s *RecordStore) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRecordRequest) (*model.Record, error) {
	updated, err := s.api.UpdateRecord(ctx, id, req)
	if err != nil {
		log.Error().Err(err).Str("record_id", id.String()).Msg("records: update failed")
		return nil, err
	}
	s.mu.Lock()
	replaceByID(s.records, id, recordID, *updated)
	s.mu.Unlock()
	return updated, nil
}

func (s *RecordStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.api.DeleteRecord(ctx, id); err != nil {
		log.Error().Err(err).Str("record_id", id.String()).Msg("records: delete failed")
		return err
	}
	s.mu.Lock()
	s.records = removeByID(s.records, id, recordID)
	s.mu.Unlock()
	return nil
}

func recordID(r model.Record) uuid.UUID { return r.ID }
