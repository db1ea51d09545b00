package services

import (
	"context"
	"errors"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/utils"
)

// userService handles back-office user authentication.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Authenticate verifies credentials against the stored bcrypt hash. Unknown
// email, wrong password and deactivated account all fail identically so the
// endpoint cannot be used to probe which emails exist.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}

	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Failed login attempt", "user_id", user.UserID)
		return nil, apperrors.ErrForbidden
	}

	return user, nil
}
