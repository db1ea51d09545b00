package pgsql

import (
	"context"
	"errors"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	"github.com/astrofinance/afs_backend/internal/models"
	"github.com/astrofinance/afs_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new read-side repository for journal
// entries. Writes happen exclusively through the transaction repository.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalEntryRepository implements portsrepo.JournalEntryRepositoryFacade
var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

// FindEntryByID retrieves an entry with its details.
func (r *PgxJournalEntryRepository) FindEntryByID(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, transaction_id, entry_date, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE entry_id = $1;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.TransactionID,
		&m.EntryDate,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID.String(), err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	details, err := r.findDetailsByEntryIDs(ctx, []uuid.UUID{entry.EntryID})
	if err != nil {
		return nil, err
	}
	entry.Details = details[entry.EntryID]
	return &entry, nil
}

// FindEntriesByTransactionID retrieves all entries (with details) derived from
// one transaction, oldest first.
func (r *PgxJournalEntryRepository) FindEntriesByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, transaction_id, entry_date, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE transaction_id = $1
		ORDER BY entry_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries for transaction "+transactionID.String(), err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	entryIDs := []uuid.UUID{}
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.TransactionID,
			&m.EntryDate,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
		entryIDs = append(entryIDs, m.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	if len(entries) == 0 {
		return entries, nil
	}

	detailsByEntry, err := r.findDetailsByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Details = detailsByEntry[entries[i].EntryID]
	}
	return entries, nil
}

// HasEntriesForTransaction reports whether any entry references the transaction.
func (r *PgxJournalEntryRepository) HasEntriesForTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE transaction_id = $1);`, transactionID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check journal entries for transaction "+transactionID.String(), err)
	}
	return exists, nil
}

// findDetailsByEntryIDs loads detail lines for a set of entries in one query,
// grouped by entry ID.
func (r *PgxJournalEntryRepository) findDetailsByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID][]domain.JournalEntryDetail, error) {
	query := `
		SELECT detail_id, entry_id, account_id, debit, credit, description
		FROM journal_entry_details
		WHERE entry_id = ANY($1)
		ORDER BY debit DESC, detail_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entry details", err)
	}
	defer rows.Close()

	detailsByEntry := make(map[uuid.UUID][]domain.JournalEntryDetail, len(entryIDs))
	for rows.Next() {
		var m models.JournalEntryDetail
		err := rows.Scan(
			&m.DetailID,
			&m.EntryID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.Description,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry detail row", err)
		}
		detailsByEntry[m.EntryID] = append(detailsByEntry[m.EntryID], mapping.ToDomainJournalEntryDetail(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry detail rows", err)
	}
	return detailsByEntry, nil
}
