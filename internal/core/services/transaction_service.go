package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/dto"
	"github.com/astrofinance/afs_backend/internal/utils/accounting"
	"github.com/astrofinance/afs_backend/internal/utils/pagination"
)

// transactionService records financial transactions and derives their
// balanced journal entries.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	journalRepo  portsrepo.JournalEntryRepositoryFacade
	accountRepo  portsrepo.ChartOfAccountRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	loanRepo     portsrepo.LoanRepositoryFacade
	auditRepo    portsrepo.AuditLogRepositoryFacade
	smsSvc       portssvc.SmsSvcFacade
	clock        portssvc.Clock
}

// NewTransactionService creates a new transaction service. smsSvc may be nil
// when notifications are disabled.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	journalRepo portsrepo.JournalEntryRepositoryFacade,
	accountRepo portsrepo.ChartOfAccountRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	loanRepo portsrepo.LoanRepositoryFacade,
	auditRepo portsrepo.AuditLogRepositoryFacade,
	smsSvc portssvc.SmsSvcFacade,
	clock portssvc.Clock,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		loanRepo:     loanRepo,
		auditRepo:    auditRepo,
		smsSvc:       smsSvc,
		clock:        clock,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// RecordTransaction validates the request, resolves the owning customer,
// generates the balanced journal entry for the transaction type and persists
// everything atomically.
func (s *transactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	txnType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return nil, err
	}

	amount, err := domain.NewPositiveMoney(req.Amount)
	if err != nil {
		return nil, err
	}

	customer, loanID, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	txnDate := now
	if req.TransactionDate != nil {
		txnDate = *req.TransactionDate
	}

	txn := domain.Transaction{
		TransactionID:   uuid.New(),
		LoanID:          loanID,
		CustomerID:      customer.CustomerID,
		Amount:          amount,
		Type:            txnType,
		Description:     req.Description,
		TransactionDate: txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
		CustomerName: customer.FullName(),
	}

	entry, details, err := s.generateJournalEntry(ctx, txn)
	if err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, entry, details); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", "transaction_id", txn.TransactionID)
		return nil, err
	}

	s.writeAudit(ctx, "Transaction", txn.TransactionID.String(), "CREATE",
		fmt.Sprintf("%s of %s recorded for customer %s", txn.Type, txn.Amount, customer.CustomerID),
		creatorUserID, now)

	if s.smsSvc != nil {
		// Notification failures never abort a recorded transaction
		if err := s.smsSvc.NotifyTransaction(ctx, txn, *customer); err != nil {
			s.LogWarn(ctx, "Transaction notification failed", "transaction_id", txn.TransactionID, "error", err.Error())
		}
	}

	s.LogInfo(ctx, "Transaction recorded", "transaction_id", txn.TransactionID, "type", string(txn.Type), "amount", txn.Amount.String())
	return &txn, nil
}

// resolveCustomer determines the owning customer. With a loan ID the customer
// comes from the loan; a customer ID given alongside must agree with it.
func (s *transactionService) resolveCustomer(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Customer, *uuid.UUID, error) {
	if req.LoanID == nil && req.CustomerID == nil {
		return nil, nil, apperrors.NewValidationError("either loanId or customerId must be provided")
	}

	if req.LoanID != nil {
		loan, err := s.loanRepo.FindLoanByID(ctx, *req.LoanID)
		if err != nil {
			return nil, nil, err
		}
		if req.CustomerID != nil && *req.CustomerID != loan.CustomerID {
			return nil, nil, apperrors.NewValidationError("customerId does not match the loan's customer")
		}
		customer := loan.Customer
		if customer == nil {
			customer, err = s.customerRepo.FindCustomerByID(ctx, loan.CustomerID)
			if err != nil {
				return nil, nil, err
			}
		}
		return customer, req.LoanID, nil
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID)
	if err != nil {
		return nil, nil, err
	}
	return customer, nil, nil
}

// generateJournalEntry builds the double-entry posting for a transaction.
// Each transaction yields exactly one entry with one debit and one credit
// line of the full amount. An unbalanced result here is a defect in the
// posting rules, not bad user input, and surfaces as an internal error.
func (s *transactionService) generateJournalEntry(ctx context.Context, txn domain.Transaction) (domain.JournalEntry, []domain.JournalEntryDetail, error) {
	rule, err := accounting.RuleFor(txn.Type)
	if err != nil {
		return domain.JournalEntry{}, nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
	}

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, []string{rule.DebitAccountCode, rule.CreditAccountCode})
	if err != nil {
		return domain.JournalEntry{}, nil, err
	}
	debitAccount, err := postableAccount(accounts, rule.DebitAccountCode)
	if err != nil {
		return domain.JournalEntry{}, nil, err
	}
	creditAccount, err := postableAccount(accounts, rule.CreditAccountCode)
	if err != nil {
		return domain.JournalEntry{}, nil, err
	}

	entry := domain.JournalEntry{
		EntryID:       uuid.New(),
		TransactionID: txn.TransactionID,
		EntryDate:     txn.TransactionDate,
		Description:   fmt.Sprintf("%s of %s for %s", txn.Type, txn.Amount, txn.CustomerName),
		AuditFields:   txn.AuditFields,
	}

	details := []domain.JournalEntryDetail{
		{
			DetailID:    uuid.New(),
			EntryID:     entry.EntryID,
			AccountID:   debitAccount.AccountID,
			Debit:       txn.Amount,
			Description: debitAccount.AccountName,
		},
		{
			DetailID:    uuid.New(),
			EntryID:     entry.EntryID,
			AccountID:   creditAccount.AccountID,
			Credit:      txn.Amount,
			Description: creditAccount.AccountName,
		},
	}

	if err := accounting.ValidateEntryBalance(details); err != nil {
		s.LogError(ctx, err, "Generated journal entry does not balance", "transaction_id", txn.TransactionID)
		return domain.JournalEntry{}, nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
	}

	return entry, details, nil
}

// postableAccount requires the coded account to exist and be active. A hole
// in the chart of accounts means the ledger seed is broken.
func postableAccount(accounts map[string]domain.ChartOfAccount, code string) (domain.ChartOfAccount, error) {
	account, ok := accounts[code]
	if !ok {
		return domain.ChartOfAccount{}, fmt.Errorf("%w: ledger account %s is missing from the chart of accounts", apperrors.ErrInternal, code)
	}
	if !account.IsActive {
		return domain.ChartOfAccount{}, fmt.Errorf("%w: ledger account %s is inactive", apperrors.ErrInternal, code)
	}
	return account, nil
}

// DeleteTransaction removes a transaction that has no journal entries. The
// repository runs the existence check and delete in one database transaction
// while holding a row lock, so a concurrent journalization cannot slip past.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID uuid.UUID, requestingUserID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}

	s.writeAudit(ctx, "Transaction", transactionID.String(), "DELETE", "transaction deleted", requestingUserID, s.clock.Now())
	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID)
	return nil
}

// GetTransactionByID retrieves a transaction with its customer name.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions retrieves one page of transactions matching the filters.
// A page number past the end yields an empty page with correct totals.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.TransactionsListResponse, error) {
	page := pagination.Normalize(params.PageNumber, params.PageSize)

	txns, totalCount, err := s.txnRepo.ListTransactions(ctx, portsrepo.ListTransactionsFilter{
		SearchTerm: params.SearchTerm,
		LoanID:     params.LoanID,
		CustomerID: params.CustomerID,
		FromDate:   params.FromDate,
		ToDate:     params.ToDate,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = dto.ToTransactionResponse(&txns[i])
	}

	return &dto.TransactionsListResponse{
		Transactions: responses,
		TotalCount:   totalCount,
		PageNumber:   page.PageNumber,
		PageSize:     page.PageSize,
		TotalPages:   pagination.TotalPages(totalCount, page.PageSize),
	}, nil
}

// GetJournalEntriesForTransaction retrieves the entries derived from a
// transaction, oldest first. The transaction must exist; having no entries is
// not an error.
func (s *transactionService) GetJournalEntriesForTransaction(ctx context.Context, transactionID uuid.UUID) ([]domain.JournalEntry, error) {
	if _, err := s.txnRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return nil, err
	}
	return s.journalRepo.FindEntriesByTransactionID(ctx, transactionID)
}

// writeAudit records the action without ever failing the caller.
func (s *transactionService) writeAudit(ctx context.Context, entityType, entityID, action, detail, performedBy string, at time.Time) {
	log := domain.AuditLog{
		LogID:       uuid.New(),
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Detail:      detail,
		PerformedBy: performedBy,
		PerformedAt: at,
	}
	if err := s.auditRepo.SaveAuditLog(ctx, log); err != nil {
		s.LogWarn(ctx, "Audit log write failed", "entity_type", entityType, "entity_id", entityID, "action", action, "error", err.Error())
	}
}
