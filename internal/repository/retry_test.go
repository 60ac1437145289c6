package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"carlookup/internal/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransient(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		transient bool
	}{
		{"nil", nil, false},
		{"context_canceled", context.Canceled, false},
		{"deadline_exceeded", context.DeadlineExceeded, false},
		{"bad_conn", driver.ErrBadConn, true},
		{"wrapped_bad_conn", fmt.Errorf("exec: %w", driver.ErrBadConn), true},
		{"pg_connection_failure", &pgconn.PgError{Code: "08006"}, true},
		{"pg_serialization_failure", &pgconn.PgError{Code: "40001"}, true},
		{"pg_deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"pg_unique_violation", &pgconn.PgError{Code: "23505"}, false},
		{"pg_syntax_error", &pgconn.PgError{Code: "42601"}, false},
		{"net_error", &net.OpError{Op: "dial", Err: errors.New("refused")}, true},
		{"business_conflict", apperrors.NewConflict("duplicate"), false},
		{"business_not_found", &apperrors.NotFoundError{Entity: "CarMake", ID: "x"}, false},
		{"plain_error", errors.New("boom"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.transient, isTransient(tc.err))
		})
	}
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, p.delay(1))
	assert.Equal(t, 200*time.Millisecond, p.delay(2))
	assert.Equal(t, 400*time.Millisecond, p.delay(3))
}

func TestRetryPolicy_SleepHonorsCancel(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.sleep(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
