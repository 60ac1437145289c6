package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UnitOfWork owns one database session for the duration of a request and
// coordinates multi-step operations as a single transaction. It is not
// safe for concurrent use; each request gets its own instance.
type UnitOfWork struct {
	s     *session
	log   *zap.Logger
	retry RetryPolicy

	makes    *CarMakeRepository
	models   *CarModelRepository
	users    *UserRepository
	released bool
}

// NewUnitOfWork builds a unit of work over its own database session.
// Repositories are constructed eagerly, once per instance.
func NewUnitOfWork(db *gorm.DB, log *zap.Logger, retry RetryPolicy) *UnitOfWork {
	s := &session{db: db.Session(&gorm.Session{})}

	return &UnitOfWork{
		s:      s,
		log:    log,
		retry:  retry,
		makes:  newCarMakeRepository(s, log),
		models: newCarModelRepository(s, log),
		users:  newUserRepository(s, log),
	}
}

func (u *UnitOfWork) Makes() *CarMakeRepository   { return u.makes }
func (u *UnitOfWork) Models() *CarModelRepository { return u.models }
func (u *UnitOfWork) Users() *UserRepository      { return u.users }

// ExecuteInTransaction runs op inside a transaction. A re-entrant call
// while a transaction is already open executes op directly. Otherwise the
// whole begin -> op -> commit unit runs under the retry policy: transient
// connectivity failures restart the complete unit, business errors do not.
// Any error from op rolls the transaction back and is returned unmodified.
func (u *UnitOfWork) ExecuteInTransaction(ctx context.Context, op func(ctx context.Context) error) error {
	if u.s.tx != nil {
		u.log.Debug("Already in a transaction, executing operation directly")
		return op(ctx)
	}

	var lastErr error
	for attempt := 1; attempt <= u.retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			u.log.Warn("Retrying transaction after transient failure",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := u.retry.sleep(ctx, attempt-1); err != nil {
				return err
			}
		}

		err := u.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			u.s.tx = tx
			defer func() { u.s.tx = nil }()
			return op(ctx)
		})
		if err == nil {
			u.log.Debug("Transaction completed successfully")
			return nil
		}
		if !isTransient(err) || attempt == u.retry.MaxAttempts {
			u.log.Warn("Transaction failed, rolled back", zap.Error(err))
			return err
		}
		lastErr = err
	}

	return lastErr
}

// SaveChanges reports the rows affected by writes on this unit of work
// since the last flush. GORM executes statements eagerly, so there is no
// pending-change buffer to flush; write failures surface at the write.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		u.log.Error("Save changes aborted", zap.Error(err))
		return 0, err
	}

	affected := u.s.affected
	u.s.affected = 0
	u.log.Debug("Saved changes", zap.Int64("rows_affected", affected))
	return affected, nil
}

// Release frees the database session. Safe to call more than once.
func (u *UnitOfWork) Release() {
	if u.released {
		return
	}
	u.released = true
	u.s.tx = nil
	u.log.Debug("Unit of work released")
}
