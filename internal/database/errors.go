package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	apperrors "github.com/pcoetsee/settings-service/internal/errors"
)

// WrapError classifies a low-level database failure into a domain error kind
// before it crosses the repository boundary. Timeouts, cancellations, and bad
// connections become ErrUnavailable (the only retryable kind); everything else
// is wrapped with context while preserving the error chain.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%s: %v: %w", message, err, apperrors.ErrUnavailable)
	}
	return apperrors.Wrap(err, message)
}
