package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.Canceled passes through as-is; any other failure, including
// deadline expiry, is reported as a retryable domain.ErrStoreUnavailable.
func MapError(err error, entity string, key fmt.Stringer) error {
	if err == nil {
		return nil
	}

	op := entity
	if key != nil {
		op = fmt.Sprintf("%s %s", entity, key)
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", op, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", op, domain.ErrValidation)
		}
	}

	return domain.NewStoreError(op, err)
}
