package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"mesa-placements/internal/core/domain"
)

// SQLSTATE codes the stores translate.
const (
	codeExclusionViolation   = "23P01"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// mapError translates driver errors into the domain taxonomy. Errors that
// already belong to it are returned unchanged.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		domain.ErrInvalidInput,
		domain.ErrNotFound,
		domain.ErrConflict,
		domain.ErrInvalidState,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeExclusionViolation:
			// The bookings_no_overlap constraint fired; the blocking row is
			// not reported by the server.
			return &domain.ConflictError{}
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%s: %w: concurrent update, retry: %w", op, domain.ErrStoreFailure, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s: %w", op, domain.ErrStoreFailure, pgErr.ConstraintName, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreFailure, err)
}

// retryable reports whether err aborted a transaction that may succeed when
// run again.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

// retryOnce runs fn and repeats it a single time after a retryable error.
func retryOnce(ctx context.Context, fn func() error) error {
	err := fn()
	if retryable(err) && ctx.Err() == nil {
		err = fn()
	}
	return err
}
