package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/core/services"
	"github.com/astrofinance/afs_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	user         domain.User
	password     string
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)

	suite.password = "correct horse battery staple"
	hash, err := utils.HashPassword(suite.password)
	suite.Require().NoError(err)
	suite.user = domain.User{
		UserID:       uuid.New(),
		Name:         "Fatou Sow",
		Email:        "fatou@example.com",
		PasswordHash: hash,
		Role:         domain.RoleStaff,
		IsActive:     true,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, suite.user.Email).Return(&suite.user, nil).Once()

	user, err := suite.service.Authenticate(ctx, suite.user.Email, suite.password)

	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, suite.user.Email).Return(&suite.user, nil).Once()

	user, err := suite.service.Authenticate(ctx, suite.user.Email, "not the password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmailLooksTheSame() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "nobody@example.com", suite.password)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_DeactivatedUser() {
	ctx := context.Background()
	suite.user.IsActive = false

	suite.mockUserRepo.On("FindUserByEmail", ctx, suite.user.Email).Return(&suite.user, nil).Once()

	user, err := suite.service.Authenticate(ctx, suite.user.Email, suite.password)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
