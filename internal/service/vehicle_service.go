package service

import (
	"context"

	"flotagest/internal/dto"
	"flotagest/internal/model"
	"flotagest/internal/repository"

	"github.com/google/uuid"
)

type VehicleService interface {
	Crear(ctx context.Context, req dto.CreateVehicleRequest) (*model.Vehicle, error)
	Listar(ctx context.Context, filter dto.VehicleFilter) ([]model.Vehicle, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (*model.Vehicle, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type vehicleService struct {
	repo  repository.VehicleRepository
	cache *FilterOptionsCache
}

func NewVehicleService(repo repository.VehicleRepository, cache *FilterOptionsCache) VehicleService {
	return &vehicleService{repo: repo, cache: cache}
}

func (s *vehicleService) Crear(ctx context.Context, req dto.CreateVehicleRequest) (*model.Vehicle, error) {
	v := &model.Vehicle{
		Marca:  req.Marca,
		Modelo: req.Modelo,
		Placa:  req.Placa,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return v, nil
}

func (s *vehicleService) Listar(ctx context.Context, filter dto.VehicleFilter) ([]model.Vehicle, error) {
	return s.repo.List(ctx, filter)
}

func (s *vehicleService) Actualizar(ctx context.Context, id uuid.UUID, req dto.UpdateVehicleRequest) (*model.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Marca = req.Marca
	v.Modelo = req.Modelo
	v.Placa = req.Placa
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return v, nil
}

func (s *vehicleService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
