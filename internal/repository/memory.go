package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"flotagest/internal/dto"
	"flotagest/internal/model"

	"github.com/google/uuid"
)

// Memory is a process-local implementation of all three repositories, used
// when DATABASE_URL is empty (development) and by the end-to-end tests. It
// mirrors the SQL implementations' query semantics: case-insensitive
// substring matching for strings, equality for ids/enums/bools, inclusive
// date ranges, and joined vehicle/driver snapshots on records.
type Memory struct {
	mu       sync.RWMutex
	vehicles []model.Vehicle
	drivers  []model.Driver
	records  []model.Record
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Vehicles() VehicleRepository { return &memoryVehicleRepo{m} }
func (m *Memory) Drivers() DriverRepository   { return &memoryDriverRepo{m} }
func (m *Memory) Records() RecordRepository   { return &memoryRecordRepo{m} }

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ─── Vehicles ────────────────────────────────────────────────────────────────

type memoryVehicleRepo struct{ m *Memory }

func (r *memoryVehicleRepo) Create(_ context.Context, v *model.Vehicle) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now
	r.m.vehicles = append(r.m.vehicles, *v)
	return nil
}

func (r *memoryVehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vehicle, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, v := range r.m.vehicles {
		if v.ID == id {
			found := v
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryVehicleRepo) List(_ context.Context, filter dto.VehicleFilter) ([]model.Vehicle, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := make([]model.Vehicle, 0, len(r.m.vehicles))
	for _, v := range r.m.vehicles {
		if filter.Marca != "" && !containsFold(v.Marca, filter.Marca) {
			continue
		}
		if filter.Modelo != "" && !containsFold(v.Modelo, filter.Modelo) {
			continue
		}
		if filter.Placa != "" && !containsFold(v.Placa, filter.Placa) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *memoryVehicleRepo) Update(_ context.Context, v *model.Vehicle) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.vehicles {
		if r.m.vehicles[i].ID == v.ID {
			v.CreatedAt = r.m.vehicles[i].CreatedAt
			v.UpdatedAt = time.Now().UTC()
			r.m.vehicles[i] = *v
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.vehicles {
		if r.m.vehicles[i].ID == id {
			r.m.vehicles = append(r.m.vehicles[:i], r.m.vehicles[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ─── Drivers ─────────────────────────────────────────────────────────────────

type memoryDriverRepo struct{ m *Memory }

func (r *memoryDriverRepo) Create(_ context.Context, d *model.Driver) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	r.m.drivers = append(r.m.drivers, *d)
	return nil
}

func (r *memoryDriverRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Driver, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, d := range r.m.drivers {
		if d.ID == id {
			found := d
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryDriverRepo) List(_ context.Context, filter dto.DriverFilter) ([]model.Driver, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := make([]model.Driver, 0, len(r.m.drivers))
	for _, d := range r.m.drivers {
		if filter.Nombre != "" && !containsFold(d.Nombre, filter.Nombre) {
			continue
		}
		if filter.Licencia != "" && !containsFold(d.Licencia, filter.Licencia) {
			continue
		}
		if filter.Activo != nil && d.Activo != *filter.Activo {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *memoryDriverRepo) ListActive(_ context.Context) ([]model.Driver, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := make([]model.Driver, 0, len(r.m.drivers))
	for _, d := range r.m.drivers {
		if d.Activo {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Nombre) < strings.ToLower(out[j].Nombre)
	})
	return out, nil
}

func (r *memoryDriverRepo) Update(_ context.Context, d *model.Driver) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.drivers {
		if r.m.drivers[i].ID == d.ID {
			d.CreatedAt = r.m.drivers[i].CreatedAt
			d.UpdatedAt = time.Now().UTC()
			r.m.drivers[i] = *d
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryDriverRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.drivers {
		if r.m.drivers[i].ID == id {
			r.m.drivers = append(r.m.drivers[:i], r.m.drivers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ─── Records ─────────────────────────────────────────────────────────────────

type memoryRecordRepo struct{ m *Memory }

// joinSnapshots attaches copies of the referenced vehicle/driver as they are
// at read time. Caller must hold at least the read lock.
func (r *memoryRecordRepo) joinSnapshots(rec model.Record) model.Record {
	rec.Vehicle = nil
	rec.Driver = nil
	for _, v := range r.m.vehicles {
		if v.ID == rec.VehicleID {
			vehicle := v
			rec.Vehicle = &vehicle
			break
		}
	}
	if rec.DriverID != nil {
		for _, d := range r.m.drivers {
			if d.ID == *rec.DriverID {
				driver := d
				rec.Driver = &driver
				break
			}
		}
	}
	return rec
}

func (r *memoryRecordRepo) Create(_ context.Context, rec *model.Record) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now().UTC()
	stored := *rec
	stored.Vehicle = nil
	stored.Driver = nil
	r.m.records = append(r.m.records, stored)
	*rec = r.joinSnapshots(stored)
	return nil
}

func (r *memoryRecordRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Record, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, rec := range r.m.records {
		if rec.ID == id {
			found := r.joinSnapshots(rec)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRecordRepo) List(_ context.Context, filter dto.RecordFilter) ([]model.Record, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := make([]model.Record, 0, len(r.m.records))
	for _, rec := range r.m.records {
		if filter.VehicleID != nil && rec.VehicleID != *filter.VehicleID {
			continue
		}
		if filter.DriverID != nil && (rec.DriverID == nil || *rec.DriverID != *filter.DriverID) {
			continue
		}
		if filter.Tipo != "" && rec.Tipo != dto.NormalizeTipo(filter.Tipo) {
			continue
		}
		if filter.StartDate != nil && rec.Fecha.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !rec.Fecha.Before(filter.EndDate.AddDate(0, 0, 1)) {
			continue
		}
		out = append(out, r.joinSnapshots(rec))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].Fecha.After(out[j].Fecha)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRecordRepo) Update(_ context.Context, rec *model.Record) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.records {
		if r.m.records[i].ID == rec.ID {
			rec.CreatedAt = r.m.records[i].CreatedAt
			stored := *rec
			stored.Vehicle = nil
			stored.Driver = nil
			r.m.records[i] = stored
			*rec = r.joinSnapshots(stored)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRecordRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.records {
		if r.m.records[i].ID == id {
			r.m.records = append(r.m.records[:i], r.m.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
