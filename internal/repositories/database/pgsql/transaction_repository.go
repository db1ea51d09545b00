package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	"github.com/astrofinance/afs_backend/internal/models"
	"github.com/astrofinance/afs_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts the transaction, its journal entry and the entry's
// detail lines within a single database transaction. Either everything lands
// or nothing does.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entry domain.JournalEntry, details []domain.JournalEntryDetail) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelTxn := mapping.ToModelTransaction(txn)
	txnQuery := `
		INSERT INTO transactions (
			transaction_id, loan_id, customer_id, amount, type, description,
			transaction_date, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, txnQuery,
		modelTxn.TransactionID,
		modelTxn.LoanID,
		modelTxn.CustomerID,
		modelTxn.Amount,
		modelTxn.Type,
		modelTxn.Description,
		modelTxn.TransactionDate,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID.String(), err)
	}

	modelEntry := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (
			entry_id, transaction_id, entry_date, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.TransactionID,
		modelEntry.EntryDate,
		modelEntry.Description,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry for transaction "+modelTxn.TransactionID.String(), err)
	}

	batch := &pgx.Batch{}
	detailQuery := `
		INSERT INTO journal_entry_details (detail_id, entry_id, account_id, debit, credit, description)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, d := range details {
		modelDetail := mapping.ToModelJournalEntryDetail(d)
		batch.Queue(detailQuery,
			modelDetail.DetailID,
			modelDetail.EntryID,
			modelDetail.AccountID,
			modelDetail.Debit,
			modelDetail.Credit,
			modelDetail.Description,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute detail batch for transaction "+modelTxn.TransactionID.String(), err)
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction after verifying no journal entries
// reference it. The row lock and the existence check run in the same database
// transaction as the delete, so a journal entry committed concurrently cannot
// slip past the guard.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID uuid.UUID) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var lockedID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT transaction_id FROM transactions WHERE transaction_id = $1 FOR UPDATE;`, transactionID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock transaction "+transactionID.String(), err)
	}

	var hasEntries bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE transaction_id = $1);`, transactionID).Scan(&hasEntries)
	if err != nil {
		return apperrors.NewAppError(500, "failed to check journal entries for transaction "+transactionID.String(), err)
	}
	if hasEntries {
		return apperrors.NewValidationError("cannot delete transaction with associated journal entries")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID); err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID.String(), err)
	}

	return r.Commit(ctx, tx)
}

const transactionSelectColumns = `
	t.transaction_id, t.loan_id, t.customer_id, t.amount, t.type, t.description,
	t.transaction_date, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
	c.first_name || ' ' || c.last_name AS customer_name
`

// FindTransactionByID retrieves a transaction with its customer name populated.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionSelectColumns + `
		FROM transactions t
		JOIN customers c ON t.customer_id = c.customer_id
		WHERE t.transaction_id = $1;
	`
	row := r.Pool.QueryRow(ctx, query, transactionID)
	modelTxn, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID.String(), err)
	}

	domainTxn := mapping.ToDomainTransaction(*modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves one page of transactions matching the filter,
// newest first, plus the total match count. Filters compose conjunctively.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, int64, error) {
	conditions := []string{}
	args := []interface{}{}

	addArg := func(value interface{}) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		placeholder := addArg("%" + *filter.SearchTerm + "%")
		conditions = append(conditions, "t.description ILIKE "+placeholder)
	}
	if filter.LoanID != nil {
		conditions = append(conditions, "t.loan_id = "+addArg(*filter.LoanID))
	}
	if filter.CustomerID != nil {
		conditions = append(conditions, "t.customer_id = "+addArg(*filter.CustomerID))
	}
	if filter.FromDate != nil {
		conditions = append(conditions, "t.transaction_date >= "+addArg(*filter.FromDate))
	}
	if filter.ToDate != nil {
		conditions = append(conditions, "t.transaction_date <= "+addArg(*filter.ToDate))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}
	fromClause := `
		FROM transactions t
		JOIN customers c ON t.customer_id = c.customer_id
	`

	var totalCount int64
	countQuery := "SELECT COUNT(*)" + fromClause + whereClause + ";"
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	listQuery := "SELECT " + transactionSelectColumns + fromClause + whereClause +
		" ORDER BY t.transaction_date DESC, t.created_at DESC" +
		" LIMIT " + addArg(filter.Page.PageSize) +
		" OFFSET " + addArg(filter.Page.Offset()) + ";"

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		modelTxn, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, *modelTxn)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(transactions), totalCount, nil
}

// scanTransaction scans one row of transactionSelectColumns.
func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.LoanID,
		&t.CustomerID,
		&t.Amount,
		&t.Type,
		&t.Description,
		&t.TransactionDate,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
		&t.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
