package repositories

import (
	"context"
	"time"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

// ListTransactionsFilter holds the conjunctive filters for transaction listings.
// Nil fields are not applied.
type ListTransactionsFilter struct {
	SearchTerm *string
	LoanID     *uuid.UUID
	CustomerID *uuid.UUID
	FromDate   *time.Time
	ToDate     *time.Time
	Page       pagination.Params
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier,
	// with the owning customer's name populated.
	FindTransactionByID(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error)

	// ListTransactions retrieves one page of transactions matching the filter,
	// ordered by transaction date descending, plus the total match count.
	ListTransactions(ctx context.Context, filter ListTransactionsFilter) ([]domain.Transaction, int64, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a transaction together with its generated
	// journal entry and details in a single database transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction, entry domain.JournalEntry, details []domain.JournalEntryDetail) error

	// DeleteTransaction removes a transaction. The row is locked and the
	// journal-entry existence check runs inside the same database transaction
	// as the delete, so a concurrent journalization cannot race past the
	// guard. Returns ErrNotFound when absent and ErrValidation when journal
	// entries reference the transaction.
	DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
