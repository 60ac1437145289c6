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

type CarMakeRepository struct {
	s   *session
	log *zap.Logger
}

func newCarMakeRepository(s *session, log *zap.Logger) *CarMakeRepository {
	return &CarMakeRepository{s: s, log: log}
}

// List returns one page of car makes ordered by name, plus the total
// matching count computed before paging. nameContains performs a
// case-insensitive substring match with LIKE metacharacters escaped.
func (r *CarMakeRepository) List(ctx context.Context, page, pageSize int, nameContains string) ([]models.CarMake, int64, error) {
	r.log.Debug("Listing car makes",
		zap.Int("page", page),
		zap.Int("page_size", pageSize),
		zap.String("name_contains", nameContains),
	)

	query := r.s.handle(ctx).Model(&models.CarMake{})

	if strings.TrimSpace(nameContains) != "" {
		query = query.Where(nameContainsFilter, strings.ToLower(ToContainsPattern(nameContains)))
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var items []models.CarMake
	err := query.
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, totalCount, nil
}

// GetByID returns the car make or nil when it does not exist.
func (r *CarMakeRepository) GetByID(ctx context.Context, makeID uuid.UUID) (*models.CarMake, error) {
	var carMake models.CarMake
	err := r.s.handle(ctx).Where("make_id = ?", makeID).First(&carMake).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &carMake, nil
}

// ExistsByName checks for another make with the same name, compared
// case-insensitively. excludeID skips a given make so updates don't
// conflict with themselves.
func (r *CarMakeRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	r.log.Debug("Checking car make name existence",
		zap.String("name", name),
		zap.Any("exclude_id", excludeID),
	)

	query := r.s.handle(ctx).
		Model(&models.CarMake{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))

	if excludeID != nil {
		query = query.Where("make_id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *CarMakeRepository) Create(ctx context.Context, carMake *models.CarMake) error {
	res := r.s.handle(ctx).Create(carMake)
	r.s.record(res.RowsAffected)
	return res.Error
}

func (r *CarMakeRepository) Update(ctx context.Context, carMake *models.CarMake) error {
	res := r.s.handle(ctx).Save(carMake)
	r.s.record(res.RowsAffected)
	return res.Error
}

// Delete removes the make; no-op if the id does not exist.
func (r *CarMakeRepository) Delete(ctx context.Context, makeID uuid.UUID) error {
	res := r.s.handle(ctx).Delete(&models.CarMake{}, "make_id = ?", makeID)
	r.s.record(res.RowsAffected)
	return res.Error
}
