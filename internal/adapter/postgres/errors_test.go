package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"mesa-placements/internal/core/domain"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError("op", nil))

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("lock placement 1: %w", pgx.ErrNoRows), domain.ErrNotFound},
		{"exclusion", &pgconn.PgError{Code: codeExclusionViolation}, domain.ErrConflict},
		{"serialization", &pgconn.PgError{Code: codeSerializationFailure}, domain.ErrStoreFailure},
		{"deadlock", &pgconn.PgError{Code: codeDeadlockDetected}, domain.ErrStoreFailure},
		{"foreign key", &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "bookings_placement_id_fkey"}, domain.ErrStoreFailure},
		{"other", errors.New("connection reset"), domain.ErrStoreFailure},
		{"domain passthrough", domain.InvalidInputf("bad"), domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError("op", tt.err), tt.target)
		})
	}
}

func TestMapErrorKeepsConflictDetails(t *testing.T) {
	in := &domain.ConflictError{BookingID: 9}
	var ce *domain.ConflictError
	assert.True(t, errors.As(mapError("create booking", in), &ce))
	assert.EqualValues(t, 9, ce.BookingID)
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `100\% \_x\\`, likeEscaper.Replace(`100% _x\`))
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(&pgconn.PgError{Code: codeSerializationFailure}))
	assert.True(t, retryable(fmt.Errorf("commit: %w", &pgconn.PgError{Code: codeDeadlockDetected})))
	assert.False(t, retryable(&pgconn.PgError{Code: codeExclusionViolation}))
	assert.False(t, retryable(pgx.ErrNoRows))
	assert.False(t, retryable(nil))
}

func TestRetryOnce(t *testing.T) {
	serialization := &pgconn.PgError{Code: codeSerializationFailure}

	t.Run("second run decides", func(t *testing.T) {
		calls := 0
		err := retryOnce(context.Background(), func() error {
			calls++
			if calls == 1 {
				return serialization
			}
			return &domain.ConflictError{BookingID: 4}
		})
		assert.Equal(t, 2, calls)
		assert.ErrorIs(t, mapError("create booking", err), domain.ErrConflict)
	})

	t.Run("gives up after one retry", func(t *testing.T) {
		calls := 0
		err := retryOnce(context.Background(), func() error {
			calls++
			return serialization
		})
		assert.Equal(t, 2, calls)
		assert.ErrorIs(t, mapError("create booking", err), domain.ErrStoreFailure)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		calls := 0
		err := retryOnce(context.Background(), func() error {
			calls++
			return &pgconn.PgError{Code: codeExclusionViolation}
		})
		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, mapError("create booking", err), domain.ErrConflict)
	})

	t.Run("cancelled context is not retried", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0
		_ = retryOnce(ctx, func() error {
			calls++
			return serialization
		})
		assert.Equal(t, 1, calls)
	})
}
