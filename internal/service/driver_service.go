package service

import (
	"context"

	"flotagest/internal/dto"
	"flotagest/internal/model"
	"flotagest/internal/repository"

	"github.com/google/uuid"
)

type DriverService interface {
	Crear(ctx context.Context, req dto.CreateDriverRequest) (*model.Driver, error)
	Listar(ctx context.Context, filter dto.DriverFilter) ([]model.Driver, error)
	ListarActivos(ctx context.Context) ([]model.Driver, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.UpdateDriverRequest) (*model.Driver, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type driverService struct {
	repo  repository.DriverRepository
	cache *FilterOptionsCache
}

func NewDriverService(repo repository.DriverRepository, cache *FilterOptionsCache) DriverService {
	return &driverService{repo: repo, cache: cache}
}

func (s *driverService) Crear(ctx context.Context, req dto.CreateDriverRequest) (*model.Driver, error) {
	d := &model.Driver{
		Nombre:   req.Nombre,
		Licencia: req.Licencia,
		Telefono: req.Telefono,
		Email:    req.Email,
		Activo:   true,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return d, nil
}

func (s *driverService) Listar(ctx context.Context, filter dto.DriverFilter) ([]model.Driver, error) {
	return s.repo.List(ctx, filter)
}

func (s *driverService) ListarActivos(ctx context.Context) ([]model.Driver, error) {
	return s.repo.ListActive(ctx)
}

// Actualizar applies only the fields present in the partial payload.
func (s *driverService) Actualizar(ctx context.Context, id uuid.UUID, req dto.UpdateDriverRequest) (*model.Driver, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		d.Nombre = *req.Nombre
	}
	if req.Licencia != nil {
		d.Licencia = *req.Licencia
	}
	if req.Telefono != nil {
		d.Telefono = req.Telefono
	}
	if req.Email != nil {
		d.Email = req.Email
	}
	if req.Activo != nil {
		d.Activo = *req.Activo
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return d, nil
}

func (s *driverService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
