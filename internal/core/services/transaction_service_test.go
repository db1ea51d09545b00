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

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entry domain.JournalEntry, details []domain.JournalEntryDetail) error {
	args := m.Called(ctx, txn, entry, details)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock JournalEntryRepository ---
type MockJournalEntryRepository struct {
	mock.Mock
}

var _ portsrepo.JournalEntryRepositoryFacade = (*MockJournalEntryRepository)(nil)

func (m *MockJournalEntryRepository) FindEntryByID(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) FindEntriesByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) HasEntriesForTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

// --- Mock ChartOfAccountRepository ---
type MockChartOfAccountRepository struct {
	mock.Mock
}

var _ portsrepo.ChartOfAccountRepositoryFacade = (*MockChartOfAccountRepository)(nil)

func (m *MockChartOfAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.ChartOfAccount, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ChartOfAccount), args.Error(1)
}

func (m *MockChartOfAccountRepository) ListAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartOfAccount), args.Error(1)
}

func (m *MockChartOfAccountRepository) SaveAccount(ctx context.Context, account domain.ChartOfAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, filter portsrepo.ListCustomersFilter) ([]domain.Customer, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

var _ portsrepo.LoanRepositoryFacade = (*MockLoanRepository)(nil)

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID uuid.UUID) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context, filter portsrepo.ListLoansFilter) ([]domain.Loan, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Loan), args.Get(1).(int64), args.Error(2)
}

func (m *MockLoanRepository) FindSchedulesByLoanID(ctx context.Context, loanID uuid.UUID) ([]domain.PaymentSchedule, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentSchedule), args.Error(1)
}

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan, schedule []domain.PaymentSchedule) error {
	args := m.Called(ctx, loan, schedule)
	return args.Error(0)
}

func (m *MockLoanRepository) UpdateLoanStatus(ctx context.Context, loanID uuid.UUID, status domain.LoanStatus, disbursementDate *time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, loanID, status, disbursementDate, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepositoryFacade = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// --- Mock SmsService (as used by the transaction service) ---
type MockSmsService struct {
	mock.Mock
}

var _ portssvc.SmsSvcFacade = (*MockSmsService)(nil)

func (m *MockSmsService) CreateTemplate(ctx context.Context, req dto.CreateSmsTemplateRequest, creatorUserID string) (*domain.SmsTemplate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SmsTemplate), args.Error(1)
}

func (m *MockSmsService) ListTemplates(ctx context.Context) ([]domain.SmsTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SmsTemplate), args.Error(1)
}

func (m *MockSmsService) ListHistory(ctx context.Context, params dto.ListSmsHistoryParams) (*dto.SmsHistoryListResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SmsHistoryListResponse), args.Error(1)
}

func (m *MockSmsService) NotifyTransaction(ctx context.Context, txn domain.Transaction, customer domain.Customer) error {
	args := m.Called(ctx, txn, customer)
	return args.Error(0)
}

// --- Fixed Clock ---
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// --- Test Suite Setup ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockJournalRepo  *MockJournalEntryRepository
	mockAccountRepo  *MockChartOfAccountRepository
	mockCustomerRepo *MockCustomerRepository
	mockLoanRepo     *MockLoanRepository
	mockAuditRepo    *MockAuditLogRepository
	mockSmsSvc       *MockSmsService
	service          portssvc.TransactionSvcFacade
	now              time.Time
	userID           string
	customer         domain.Customer
	loan             domain.Loan
	cashAccount      domain.ChartOfAccount
	loanAccount      domain.ChartOfAccount
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockJournalRepo = new(MockJournalEntryRepository)
	suite.mockAccountRepo = new(MockChartOfAccountRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.mockSmsSvc = new(MockSmsService)
	suite.now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockJournalRepo,
		suite.mockAccountRepo,
		suite.mockCustomerRepo,
		suite.mockLoanRepo,
		suite.mockAuditRepo,
		suite.mockSmsSvc,
		fixedClock{now: suite.now},
	)

	suite.userID = uuid.NewString()
	suite.customer = domain.Customer{
		CustomerID:  uuid.New(),
		FirstName:   "Amina",
		LastName:    "Diallo",
		PhoneNumber: "+221771234567",
		IsActive:    true,
	}
	suite.loan = domain.Loan{
		LoanID:     uuid.New(),
		CustomerID: suite.customer.CustomerID,
		Principal:  domain.MustMoney(decimal.NewFromInt(1000)),
		TermMonths: 12,
		Status:     domain.LoanActive,
		Customer:   &suite.customer,
	}
	suite.cashAccount = domain.ChartOfAccount{
		AccountID:   uuid.New(),
		AccountCode: domain.AccountCodeCash,
		AccountName: "Cash",
		Category:    domain.Asset,
		IsActive:    true,
	}
	suite.loanAccount = domain.ChartOfAccount{
		AccountID:   uuid.New(),
		AccountCode: domain.AccountCodeLoanReceivable,
		AccountName: "Loan Receivable",
		Category:    domain.Asset,
		IsActive:    true,
	}
}

func (suite *TransactionServiceTestSuite) assertNoWrites() {
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "SaveAuditLog", mock.Anything, mock.Anything)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestRecordTransaction_RepaymentSuccess() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		LoanID: &suite.loan.LoanID,
		Type:   "REPAYMENT",
		Amount: decimal.RequireFromString("500.00"),
	}

	suite.mockLoanRepo.On("FindLoanByID", ctx, suite.loan.LoanID).Return(&suite.loan, nil).Once()
	accounts := map[string]domain.ChartOfAccount{
		domain.AccountCodeCash:           suite.cashAccount,
		domain.AccountCodeLoanReceivable: suite.loanAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, []string{domain.AccountCodeCash, domain.AccountCodeLoanReceivable}).Return(accounts, nil).Once()

	var savedEntry domain.JournalEntry
	var savedDetails []domain.JournalEntryDetail
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryDetail")).
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(2).(domain.JournalEntry)
			savedDetails = args.Get(3).([]domain.JournalEntryDetail)
		}).
		Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()
	suite.mockSmsSvc.On("NotifyTransaction", ctx, mock.AnythingOfType("domain.Transaction"), suite.customer).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Repayment, txn.Type)
	suite.Equal(suite.customer.CustomerID, txn.CustomerID)
	suite.Require().NotNil(txn.LoanID)
	suite.Equal(suite.loan.LoanID, *txn.LoanID)
	suite.Equal("Amina Diallo", txn.CustomerName)
	suite.Equal(suite.now, txn.TransactionDate)
	suite.Equal(suite.userID, txn.CreatedBy)

	// Repayment posts cash in, loan receivable out.
	suite.Equal(txn.TransactionID, savedEntry.TransactionID)
	suite.Require().Len(savedDetails, 2)
	suite.Equal(suite.cashAccount.AccountID, savedDetails[0].AccountID)
	suite.Equal("500.00", savedDetails[0].Debit.String())
	suite.True(savedDetails[0].Credit.IsZero())
	suite.Equal(suite.loanAccount.AccountID, savedDetails[1].AccountID)
	suite.Equal("500.00", savedDetails[1].Credit.String())
	suite.True(savedDetails[1].Debit.IsZero())

	suite.mockLoanRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
	suite.mockSmsSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_ExplicitDateAndCustomerOnly() {
	ctx := context.Background()
	txnDate := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateTransactionRequest{
		CustomerID:      &suite.customer.CustomerID,
		Type:            "deposit",
		Amount:          decimal.RequireFromString("250.50"),
		TransactionDate: &txnDate,
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	depositsAccount := domain.ChartOfAccount{
		AccountID:   uuid.New(),
		AccountCode: domain.AccountCodeCustomerDeposits,
		AccountName: "Customer Deposits",
		Category:    domain.Liability,
		IsActive:    true,
	}
	accounts := map[string]domain.ChartOfAccount{
		domain.AccountCodeCash:             suite.cashAccount,
		domain.AccountCodeCustomerDeposits: depositsAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, []string{domain.AccountCodeCash, domain.AccountCodeCustomerDeposits}).Return(accounts, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryDetail")).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()
	suite.mockSmsSvc.On("NotifyTransaction", ctx, mock.AnythingOfType("domain.Transaction"), suite.customer).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Deposit, txn.Type)
	suite.Nil(txn.LoanID)
	suite.Equal(txnDate, txn.TransactionDate)
	suite.Equal(suite.now, txn.CreatedAt)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_InvalidType() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		CustomerID: &suite.customer.CustomerID,
		Type:       "TRANSFER",
		Amount:     decimal.NewFromInt(100),
	}

	txn, err := suite.service.RecordTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.assertNoWrites()
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10), decimal.RequireFromString("10.001")} {
		req := dto.CreateTransactionRequest{
			CustomerID: &suite.customer.CustomerID,
			Type:       "FEE",
			Amount:     amount,
		}
		txn, err := suite.service.RecordTransaction(ctx, req, suite.userID)
		suite.Require().Error(err, "amount %s", amount)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(txn)
	}
	suite.assertNoWrites()
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_MissingParty() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:   "FEE",
		Amount: decimal.NewFromInt(25),
	}

	txn, err := suite.service.RecordTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.assertNoWrites()
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_LoanNotFound() {
	ctx := context.Background()
	loanID := uuid.New()
	req := dto.CreateTransactionRequest{
		LoanID: &loanID,
		Type:   "REPAYMENT",
		Amount: decimal.NewFromInt(100),
	}

	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
	suite.assertNoWrites()
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_CustomerLoanMismatch() {
	ctx := context.Background()
	otherCustomerID := uuid.New()
	req := dto.CreateTransactionRequest{
		LoanID:     &suite.loan.LoanID,
		CustomerID: &otherCustomerID,
		Type:       "REPAYMENT",
		Amount:     decimal.NewFromInt(100),
	}

	suite.mockLoanRepo.On("FindLoanByID", ctx, suite.loan.LoanID).Return(&suite.loan, nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.assertNoWrites()
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_InactiveLedgerAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		LoanID: &suite.loan.LoanID,
		Type:   "REPAYMENT",
		Amount: decimal.NewFromInt(100),
	}

	inactiveLoanAccount := suite.loanAccount
	inactiveLoanAccount.IsActive = false
	accounts := map[string]domain.ChartOfAccount{
		domain.AccountCodeCash:           suite.cashAccount,
		domain.AccountCodeLoanReceivable: inactiveLoanAccount,
	}
	suite.mockLoanRepo.On("FindLoanByID", ctx, suite.loan.LoanID).Return(&suite.loan, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.AnythingOfType("[]string")).Return(accounts, nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInternal)
	suite.Nil(txn)
	suite.assertNoWrites()
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_NotificationFailureDoesNotAbort() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		LoanID: &suite.loan.LoanID,
		Type:   "DISBURSEMENT",
		Amount: decimal.NewFromInt(1000),
	}

	disbursementAccounts := map[string]domain.ChartOfAccount{
		domain.AccountCodeCash:           suite.cashAccount,
		domain.AccountCodeLoanReceivable: suite.loanAccount,
	}
	suite.mockLoanRepo.On("FindLoanByID", ctx, suite.loan.LoanID).Return(&suite.loan, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, []string{domain.AccountCodeLoanReceivable, domain.AccountCodeCash}).Return(disbursementAccounts, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryDetail")).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()
	suite.mockSmsSvc.On("NotifyTransaction", ctx, mock.AnythingOfType("domain.Transaction"), suite.customer).Return(apperrors.ErrInternal).Once()

	txn, err := suite.service.RecordTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockSmsSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	transactionID := uuid.New()

	suite.mockTxnRepo.On("DeleteTransaction", ctx, transactionID).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.MatchedBy(func(log domain.AuditLog) bool {
		return log.EntityType == "Transaction" && log.EntityID == transactionID.String() && log.Action == "DELETE" && log.PerformedBy == suite.userID
	})).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID, suite.userID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_BlockedByJournalEntries() {
	ctx := context.Background()
	transactionID := uuid.New()
	guardErr := apperrors.NewValidationError("cannot delete transaction with associated journal entries")

	suite.mockTxnRepo.On("DeleteTransaction", ctx, transactionID).Return(guardErr).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "SaveAuditLog", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.New()

	suite.mockTxnRepo.On("DeleteTransaction", ctx, transactionID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NormalizesPaging() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{
			TransactionID:   uuid.New(),
			CustomerID:      suite.customer.CustomerID,
			Amount:          domain.MustMoney(decimal.NewFromInt(100)),
			Type:            domain.Fee,
			TransactionDate: suite.now,
			CustomerName:    "Amina Diallo",
		},
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, mock.MatchedBy(func(filter portsrepo.ListTransactionsFilter) bool {
		// Zero and oversized inputs normalize to the first page of the default size.
		return filter.Page.PageNumber == 1 && filter.Page.PageSize == 10
	})).Return(txns, int64(1), nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{PageNumber: 0, PageSize: 500})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("Amina Diallo", resp.Transactions[0].CustomerName)
	suite.Equal(int64(1), resp.TotalCount)
	suite.Equal(1, resp.PageNumber)
	suite.Equal(10, resp.PageSize)
	suite.Equal(1, resp.TotalPages)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PagePastEnd() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactions", ctx, mock.MatchedBy(func(filter portsrepo.ListTransactionsFilter) bool {
		return filter.Page.PageNumber == 99 && filter.Page.PageSize == 10
	})).Return([]domain.Transaction{}, int64(25), nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{PageNumber: 99, PageSize: 10})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.Equal(int64(25), resp.TotalCount)
	suite.Equal(99, resp.PageNumber)
	suite.Equal(3, resp.TotalPages)
}

func (suite *TransactionServiceTestSuite) TestGetJournalEntries_TransactionNotFound() {
	ctx := context.Background()
	transactionID := uuid.New()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	entries, err := suite.service.GetJournalEntriesForTransaction(ctx, transactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(entries)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindEntriesByTransactionID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestGetJournalEntries_EmptyIsNotAnError() {
	ctx := context.Background()
	transactionID := uuid.New()
	txn := domain.Transaction{TransactionID: transactionID}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(&txn, nil).Once()
	suite.mockJournalRepo.On("FindEntriesByTransactionID", ctx, transactionID).Return([]domain.JournalEntry{}, nil).Once()

	entries, err := suite.service.GetJournalEntriesForTransaction(ctx, transactionID)

	suite.Require().NoError(err)
	suite.Empty(entries)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
