package repository

import (
	"context"
	"errors"

	"carlookup/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserRepository struct {
	s   *session
	log *zap.Logger
}

func newUserRepository(s *session, log *zap.Logger) *UserRepository {
	return &UserRepository{s: s, log: log}
}

// GetByUsername returns the active user with roles eagerly loaded, or nil
// when no active user has that username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.log.Debug("Getting user by username", zap.String("username", username))

	var user models.User
	err := r.s.handle(ctx).
		Preload("UserRoles.Role").
		Where("username = ? AND is_active = ?", username, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
