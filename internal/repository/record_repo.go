package repository

import (
	"context"
	"errors"

	"flotagest/internal/dto"
	"flotagest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecordRepository interface {
	// Create persists the record and reloads it with its vehicle/driver
	// snapshots so the response carries the joined projections.
	Create(ctx context.Context, rec *model.Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Record, error)
	List(ctx context.Context, filter dto.RecordFilter) ([]model.Record, error)
	Update(ctx context.Context, rec *model.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type recordRepository struct{ db *gorm.DB }

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(ctx context.Context, rec *model.Record) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	reloaded, err := r.FindByID(ctx, rec.ID)
	if err != nil {
		return err
	}
	*rec = *reloaded
	return nil
}

func (r *recordRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Record, error) {
	var rec model.Record
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Driver").
		First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recordRepository) List(ctx context.Context, filter dto.RecordFilter) ([]model.Record, error) {
	q := r.db.WithContext(ctx).Model(&model.Record{}).
		Preload("Vehicle").
		Preload("Driver")
	if filter.VehicleID != nil {
		q = q.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.DriverID != nil {
		q = q.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", dto.NormalizeTipo(filter.Tipo))
	}
	if filter.StartDate != nil {
		q = q.Where("fecha >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		// inclusive end of day
		q = q.Where("fecha < ?", filter.EndDate.AddDate(0, 0, 1))
	}
	var records []model.Record
	if err := q.Order("fecha DESC, created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) Update(ctx context.Context, rec *model.Record) error {
	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return err
	}
	reloaded, err := r.FindByID(ctx, rec.ID)
	if err != nil {
		return err
	}
	*rec = *reloaded
	return nil
}

func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Record{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
