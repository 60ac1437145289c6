package repository

import (
	"context"
	"errors"
	"strings"

	"carlookup/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CarModelRepository struct {
	s   *session
	log *zap.Logger
}

func newCarModelRepository(s *session, log *zap.Logger) *CarModelRepository {
	return &CarModelRepository{s: s, log: log}
}

// List returns one page of models for a make ordered by name then model
// year, plus the total matching count computed before paging. year, when
// non-nil, filters on the exact model year.
func (r *CarModelRepository) List(ctx context.Context, makeID uuid.UUID, page, pageSize int, nameContains string, year *int) ([]models.CarModel, int64, error) {
	r.log.Debug("Listing car models",
		zap.String("make_id", makeID.String()),
		zap.Int("page", page),
		zap.Int("page_size", pageSize),
		zap.String("name_contains", nameContains),
		zap.Any("year", year),
	)

	query := r.s.handle(ctx).
		Model(&models.CarModel{}).
		Where("make_id = ?", makeID)

	if strings.TrimSpace(nameContains) != "" {
		query = query.Where(nameContainsFilter, strings.ToLower(ToContainsPattern(nameContains)))
	}
	if year != nil {
		query = query.Where("model_year = ?", *year)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return []models.CarModel{}, 0, nil
	}

	var items []models.CarModel
	err := query.
		Order("name ASC").
		Order("model_year ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, totalCount, nil
}

// GetByID returns the car model or nil when it does not exist.
func (r *CarModelRepository) GetByID(ctx context.Context, modelID uuid.UUID) (*models.CarModel, error) {
	var carModel models.CarModel
	err := r.s.handle(ctx).Where("model_id = ?", modelID).First(&carModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &carModel, nil
}

// ExistsByNameMakeAndYear checks the (make, name, year) uniqueness triple.
// The name comparison is exact and case-insensitive.
func (r *CarModelRepository) ExistsByNameMakeAndYear(ctx context.Context, name string, makeID uuid.UUID, year int, excludeID *uuid.UUID) (bool, error) {
	r.log.Debug("Checking car model existence",
		zap.String("name", name),
		zap.String("make_id", makeID.String()),
		zap.Int("year", year),
		zap.Any("exclude_id", excludeID),
	)

	query := r.s.handle(ctx).
		Model(&models.CarModel{}).
		Where("LOWER(name) = ? AND make_id = ? AND model_year = ?",
			strings.ToLower(strings.TrimSpace(name)), makeID, year)

	if excludeID != nil {
		query = query.Where("model_id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// HasModelsForMake reports whether any model references the make.
func (r *CarModelRepository) HasModelsForMake(ctx context.Context, makeID uuid.UUID) (bool, error) {
	var count int64
	err := r.s.handle(ctx).
		Model(&models.CarModel{}).
		Where("make_id = ?", makeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *CarModelRepository) Create(ctx context.Context, carModel *models.CarModel) error {
	res := r.s.handle(ctx).Create(carModel)
	r.s.record(res.RowsAffected)
	return res.Error
}

func (r *CarModelRepository) Update(ctx context.Context, carModel *models.CarModel) error {
	res := r.s.handle(ctx).Save(carModel)
	r.s.record(res.RowsAffected)
	return res.Error
}

// Delete removes the model; no-op if the id does not exist.
func (r *CarModelRepository) Delete(ctx context.Context, modelID uuid.UUID) error {
	res := r.s.handle(ctx).Delete(&models.CarModel{}, "model_id = ?", modelID)
	r.s.record(res.RowsAffected)
	return res.Error
}
