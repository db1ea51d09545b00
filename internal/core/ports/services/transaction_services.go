package services

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/dto"
	"github.com/google/uuid"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction with its customer name.
	GetTransactionByID(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated, filtered transaction list.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.TransactionsListResponse, error)

	// GetJournalEntriesForTransaction retrieves the entries derived from a transaction.
	GetJournalEntriesForTransaction(ctx context.Context, transactionID uuid.UUID) ([]domain.JournalEntry, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// RecordTransaction validates and persists a new transaction together
	// with its balanced journal entry, returning the stored transaction.
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// DeleteTransaction removes an unjournalized transaction. Fails with a
	// validation error once journal entries reference it.
	DeleteTransaction(ctx context.Context, transactionID uuid.UUID, requestingUserID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
