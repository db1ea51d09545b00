package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/core/services"
	"github.com/astrofinance/afs_backend/internal/dto"
)

// --- Mock SmsRepository ---
type MockSmsRepository struct {
	mock.Mock
}

var _ portsrepo.SmsRepositoryFacade = (*MockSmsRepository)(nil)

func (m *MockSmsRepository) FindTemplateByName(ctx context.Context, name string) (*domain.SmsTemplate, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SmsTemplate), args.Error(1)
}

func (m *MockSmsRepository) ListTemplates(ctx context.Context) ([]domain.SmsTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SmsTemplate), args.Error(1)
}

func (m *MockSmsRepository) SaveTemplate(ctx context.Context, template domain.SmsTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockSmsRepository) SaveHistory(ctx context.Context, history domain.SmsHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockSmsRepository) ListHistory(ctx context.Context, filter portsrepo.ListSmsHistoryFilter) ([]domain.SmsHistory, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.SmsHistory), args.Get(1).(int64), args.Error(2)
}

// --- Test Suite Setup ---
type SmsServiceTestSuite struct {
	suite.Suite
	mockSmsRepo *MockSmsRepository
	service     portssvc.SmsSvcFacade
	now         time.Time
	customer    domain.Customer
	txn         domain.Transaction
}

func (suite *SmsServiceTestSuite) SetupTest() {
	suite.mockSmsRepo = new(MockSmsRepository)
	suite.now = time.Date(2025, 7, 20, 14, 30, 0, 0, time.UTC)
	suite.service = services.NewSmsService(suite.mockSmsRepo, fixedClock{now: suite.now})

	suite.customer = domain.Customer{
		CustomerID:  uuid.New(),
		FirstName:   "Moussa",
		LastName:    "Ndiaye",
		PhoneNumber: "+221765554433",
		IsActive:    true,
	}
	suite.txn = domain.Transaction{
		TransactionID:   uuid.New(),
		CustomerID:      suite.customer.CustomerID,
		Amount:          domain.MustMoney(decimal.RequireFromString("150.25")),
		Type:            domain.Repayment,
		TransactionDate: suite.now,
	}
}

func (suite *SmsServiceTestSuite) TestNotifyTransaction_RendersPlaceholders() {
	ctx := context.Background()
	template := domain.SmsTemplate{
		TemplateID: uuid.New(),
		Name:       "REPAYMENT",
		Body:       "Dear {customerName}, your {type} of {amount} on {date} was received. {unknown} stays.",
		IsActive:   true,
	}

	suite.mockSmsRepo.On("FindTemplateByName", ctx, "REPAYMENT").Return(&template, nil).Once()

	var savedHistory domain.SmsHistory
	suite.mockSmsRepo.On("SaveHistory", ctx, mock.AnythingOfType("domain.SmsHistory")).
		Run(func(args mock.Arguments) {
			savedHistory = args.Get(1).(domain.SmsHistory)
		}).
		Return(nil).Once()

	err := suite.service.NotifyTransaction(ctx, suite.txn, suite.customer)

	suite.Require().NoError(err)
	suite.Equal("Dear Moussa Ndiaye, your REPAYMENT of 150.25 on 2025-07-20 was received. {unknown} stays.", savedHistory.Message)
	suite.Equal(suite.customer.CustomerID, savedHistory.CustomerID)
	suite.Equal(suite.customer.PhoneNumber, savedHistory.PhoneNumber)
	suite.Equal(domain.SmsSent, savedHistory.Status)
	suite.Equal(suite.now, savedHistory.SentAt)
	suite.mockSmsRepo.AssertExpectations(suite.T())
}

func (suite *SmsServiceTestSuite) TestNotifyTransaction_NoTemplateSkipsSilently() {
	ctx := context.Background()

	suite.mockSmsRepo.On("FindTemplateByName", ctx, "REPAYMENT").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.NotifyTransaction(ctx, suite.txn, suite.customer)

	suite.Require().NoError(err)
	suite.mockSmsRepo.AssertNotCalled(suite.T(), "SaveHistory", mock.Anything, mock.Anything)
}

func (suite *SmsServiceTestSuite) TestNotifyTransaction_InactiveTemplateSkips() {
	ctx := context.Background()
	template := domain.SmsTemplate{
		TemplateID: uuid.New(),
		Name:       "REPAYMENT",
		Body:       "unused",
		IsActive:   false,
	}

	suite.mockSmsRepo.On("FindTemplateByName", ctx, "REPAYMENT").Return(&template, nil).Once()

	err := suite.service.NotifyTransaction(ctx, suite.txn, suite.customer)

	suite.Require().NoError(err)
	suite.mockSmsRepo.AssertNotCalled(suite.T(), "SaveHistory", mock.Anything, mock.Anything)
}

func (suite *SmsServiceTestSuite) TestCreateTemplate_NormalizesName() {
	ctx := context.Background()
	req := dto.CreateSmsTemplateRequest{
		Name: "  repayment ",
		Body: "Dear {customerName}.",
	}

	suite.mockSmsRepo.On("SaveTemplate", ctx, mock.MatchedBy(func(t domain.SmsTemplate) bool {
		return t.Name == "REPAYMENT" && t.IsActive
	})).Return(nil).Once()

	template, err := suite.service.CreateTemplate(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("REPAYMENT", template.Name)
	suite.mockSmsRepo.AssertExpectations(suite.T())
}

func (suite *SmsServiceTestSuite) TestCreateTemplate_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateSmsTemplateRequest{Name: "REPAYMENT", Body: "x"}

	suite.mockSmsRepo.On("SaveTemplate", ctx, mock.AnythingOfType("domain.SmsTemplate")).Return(apperrors.ErrDuplicate).Once()

	template, err := suite.service.CreateTemplate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(template)
}

func (suite *SmsServiceTestSuite) TestListHistory_PaginatedEnvelope() {
	ctx := context.Background()
	history := []domain.SmsHistory{
		{HistoryID: uuid.New(), CustomerID: suite.customer.CustomerID, Message: "m1", Status: domain.SmsSent, SentAt: suite.now},
	}

	suite.mockSmsRepo.On("ListHistory", ctx, mock.MatchedBy(func(filter portsrepo.ListSmsHistoryFilter) bool {
		return filter.Page.PageNumber == 1 && filter.Page.PageSize == 10
	})).Return(history, int64(21), nil).Once()

	resp, err := suite.service.ListHistory(ctx, dto.ListSmsHistoryParams{PageNumber: 1, PageSize: 10})

	suite.Require().NoError(err)
	suite.Len(resp.History, 1)
	suite.Equal(int64(21), resp.TotalCount)
	suite.Equal(3, resp.TotalPages)
}

func TestSmsService(t *testing.T) {
	suite.Run(t, new(SmsServiceTestSuite))
}
