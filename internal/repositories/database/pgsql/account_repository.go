package pgsql

import (
	"context"
	"errors"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	"github.com/astrofinance/afs_backend/internal/models"
	"github.com/astrofinance/afs_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChartOfAccountRepository struct {
	BaseRepository
}

// newPgxChartOfAccountRepository creates a new repository for the chart of accounts.
func newPgxChartOfAccountRepository(pool *pgxpool.Pool) portsrepo.ChartOfAccountRepositoryFacade {
	return &PgxChartOfAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxChartOfAccountRepository implements portsrepo.ChartOfAccountRepositoryFacade
var _ portsrepo.ChartOfAccountRepositoryFacade = (*PgxChartOfAccountRepository)(nil)

const accountSelectColumns = `
	account_id, account_code, account_name, category, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

// FindAccountsByCodes retrieves accounts keyed by account code. Codes with no
// matching account are simply absent from the map.
func (r *PgxChartOfAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.ChartOfAccount, error) {
	query := `
		SELECT ` + accountSelectColumns + `
		FROM chart_of_accounts
		WHERE account_code = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, codes)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by code", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.ChartOfAccount, len(codes))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[m.AccountCode] = mapping.ToDomainChartOfAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// ListAccounts retrieves the full chart of accounts ordered by code.
func (r *PgxChartOfAccountRepository) ListAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	query := `
		SELECT ` + accountSelectColumns + `
		FROM chart_of_accounts
		ORDER BY account_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query chart of accounts", err)
	}
	defer rows.Close()

	accounts := []domain.ChartOfAccount{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainChartOfAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// SaveAccount persists a new ledger account.
func (r *PgxChartOfAccountRepository) SaveAccount(ctx context.Context, account domain.ChartOfAccount) error {
	m := mapping.ToModelChartOfAccount(account)
	query := `
		INSERT INTO chart_of_accounts (
			account_id, account_code, account_name, category, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.AccountCode,
		m.AccountName,
		m.Category,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.AccountCode, err)
	}
	return nil
}

func scanAccount(row pgx.Row) (*models.ChartOfAccount, error) {
	var m models.ChartOfAccount
	err := row.Scan(
		&m.AccountID,
		&m.AccountCode,
		&m.AccountName,
		&m.Category,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
