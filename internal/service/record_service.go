package service

import (
	"context"
	"errors"

	"flotagest/internal/dto"
	"flotagest/internal/model"
	"flotagest/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound = errors.New("El vehículo especificado no existe")
	ErrDriverNotFound  = errors.New("El motorista especificado no existe")
)

type RecordService interface {
	Crear(ctx context.Context, req dto.CreateRecordRequest) (*model.Record, error)
	Listar(ctx context.Context, filter dto.RecordFilter) ([]model.Record, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.UpdateRecordRequest) (*model.Record, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	OpcionesFiltros(ctx context.Context) (*dto.FilterOptions, error)
}

type recordService struct {
	repo     repository.RecordRepository
	vehicles repository.VehicleRepository
	drivers  repository.DriverRepository
	cache    *FilterOptionsCache
}

func NewRecordService(
	repo repository.RecordRepository,
	vehicles repository.VehicleRepository,
	drivers repository.DriverRepository,
	cache *FilterOptionsCache,
) RecordService {
	return &recordService{repo: repo, vehicles: vehicles, drivers: drivers, cache: cache}
}

// Crear validates both foreign keys before persisting; the stored tipo is the
// canonical lowercase form.
func (s *recordService) Crear(ctx context.Context, req dto.CreateRecordRequest) (*model.Record, error) {
	if _, err := s.vehicles.FindByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	if _, err := s.drivers.FindByID(ctx, req.DriverID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	driverID := req.DriverID
	rec := &model.Record{
		VehicleID:   req.VehicleID,
		DriverID:    &driverID,
		Fecha:       req.Fecha,
		Hora:        req.Hora,
		Kilometraje: req.Kilometraje,
		Tipo:        dto.NormalizeTipo(req.Tipo),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) Listar(ctx context.Context, filter dto.RecordFilter) ([]model.Record, error) {
	return s.repo.List(ctx, filter)
}

func (s *recordService) Actualizar(ctx context.Context, id uuid.UUID, req dto.UpdateRecordRequest) (*model.Record, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.VehicleID != nil {
		if _, err := s.vehicles.FindByID(ctx, *req.VehicleID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrVehicleNotFound
			}
			return nil, err
		}
		rec.VehicleID = *req.VehicleID
	}
	if req.DriverID != nil {
		if _, err := s.drivers.FindByID(ctx, *req.DriverID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrDriverNotFound
			}
			return nil, err
		}
		rec.DriverID = req.DriverID
	}
	if req.Fecha != nil {
		rec.Fecha = *req.Fecha
	}
	if req.Hora != nil {
		rec.Hora = *req.Hora
	}
	if req.Kilometraje != nil {
		rec.Kilometraje = *req.Kilometraje
	}
	if req.Tipo != nil {
		rec.Tipo = dto.NormalizeTipo(*req.Tipo)
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// OpcionesFiltros assembles the vehicle/driver option lists for the records
// page's selection inputs, serving from the Redis cache when warm.
func (s *recordService) OpcionesFiltros(ctx context.Context) (*dto.FilterOptions, error) {
	if opts, ok := s.cache.Get(ctx); ok {
		return opts, nil
	}

	vehicles, err := s.vehicles.List(ctx, dto.VehicleFilter{})
	if err != nil {
		return nil, err
	}
	drivers, err := s.drivers.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	opts := &dto.FilterOptions{
		Vehicles: make([]dto.VehicleOption, 0, len(vehicles)),
		Drivers:  make([]dto.DriverOption, 0, len(drivers)),
	}
	for _, v := range vehicles {
		opts.Vehicles = append(opts.Vehicles, dto.VehicleOption{
			ID: v.ID, Placa: v.Placa, Marca: v.Marca, Modelo: v.Modelo,
		})
	}
	for _, d := range drivers {
		opts.Drivers = append(opts.Drivers, dto.DriverOption{
			ID: d.ID, Nombre: d.Nombre, Licencia: d.Licencia,
		})
	}
	s.cache.Set(ctx, opts)
	return opts, nil
}
