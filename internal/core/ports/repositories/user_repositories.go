package repositories

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/google/uuid"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// FindUserByEmail retrieves a user by email (unique).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns ErrDuplicate when the email is taken.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
