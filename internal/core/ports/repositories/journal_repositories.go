package repositories

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/google/uuid"
)

// JournalEntryReader defines read operations for journal entry data.
// Entries are written only by TransactionWriter.SaveTransaction, atomically
// with their originating transaction; there is no standalone entry writer.
type JournalEntryReader interface {
	// FindEntryByID retrieves an entry with its details.
	FindEntryByID(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)

	// FindEntriesByTransactionID retrieves all entries (with details) derived
	// from one transaction, oldest first.
	FindEntriesByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]domain.JournalEntry, error)

	// HasEntriesForTransaction reports whether any entry references the
	// transaction. Advisory only: the authoritative check runs inside
	// DeleteTransaction's database transaction.
	HasEntriesForTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error)
}

// JournalEntryRepositoryFacade combines all journal entry repository interfaces.
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
}
