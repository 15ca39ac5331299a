package repository

import (
	"context"
	"errors"

	"flotagest/internal/dto"
	"flotagest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by every repository implementation when no row
// matches the given id.
var ErrNotFound = errors.New("registro no encontrado")

type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	List(ctx context.Context, filter dto.VehicleFilter) ([]model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleRepository struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *vehicleRepository) List(ctx context.Context, filter dto.VehicleFilter) ([]model.Vehicle, error) {
	q := r.db.WithContext(ctx).Model(&model.Vehicle{})
	if filter.Marca != "" {
		q = q.Where("marca ILIKE ?", "%"+filter.Marca+"%")
	}
	if filter.Modelo != "" {
		q = q.Where("modelo ILIKE ?", "%"+filter.Modelo+"%")
	}
	if filter.Placa != "" {
		q = q.Where("placa ILIKE ?", "%"+filter.Placa+"%")
	}
	var vehicles []model.Vehicle
	if err := q.Order("created_at ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
