package repository

import (
	"context"
	"errors"

	"flotagest/internal/dto"
	"flotagest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DriverRepository interface {
	Create(ctx context.Context, d *model.Driver) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Driver, error)
	List(ctx context.Context, filter dto.DriverFilter) ([]model.Driver, error)
	ListActive(ctx context.Context) ([]model.Driver, error)
	Update(ctx context.Context, d *model.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type driverRepository struct{ db *gorm.DB }

func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, d *model.Driver) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *driverRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	var d model.Driver
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *driverRepository) List(ctx context.Context, filter dto.DriverFilter) ([]model.Driver, error) {
	q := r.db.WithContext(ctx).Model(&model.Driver{})
	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Licencia != "" {
		q = q.Where("licencia ILIKE ?", "%"+filter.Licencia+"%")
	}
	if filter.Activo != nil {
		q = q.Where("activo = ?", *filter.Activo)
	}
	var drivers []model.Driver
	if err := q.Order("created_at ASC").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *driverRepository) ListActive(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("nombre ASC").
		Find(&drivers).Error
	if err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *driverRepository) Update(ctx context.Context, d *model.Driver) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *driverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Driver{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
