package services

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
)

// UserSvcFacade exposes user and authentication operations.
type UserSvcFacade interface {
	// Authenticate verifies credentials and returns the matching active user.
	// Failures are indistinguishable (ErrForbidden) so login cannot be used
	// to probe which emails exist.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
