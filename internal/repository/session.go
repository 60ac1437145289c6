package repository

import (
	"context"

	"gorm.io/gorm"
)

// session is the database scope shared by a unit of work and its
// repositories. While a transaction is open, tx is non-nil and every
// repository call runs against it.
type session struct {
	db       *gorm.DB
	tx       *gorm.DB
	affected int64
}

func (s *session) handle(ctx context.Context) *gorm.DB {
	h := s.db
	if s.tx != nil {
		h = s.tx
	}
	return h.WithContext(ctx)
}

func (s *session) record(rows int64) {
	s.affected += rows
}
