package repositories

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
)

// ChartOfAccountReader defines read operations for the chart of accounts
type ChartOfAccountReader interface {
	// FindAccountsByCodes retrieves accounts keyed by account code.
	// Codes with no matching account are simply absent from the map.
	FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.ChartOfAccount, error)

	// ListAccounts retrieves the full chart of accounts ordered by code.
	ListAccounts(ctx context.Context) ([]domain.ChartOfAccount, error)
}

// ChartOfAccountWriter defines write operations for the chart of accounts
type ChartOfAccountWriter interface {
	// SaveAccount persists a new ledger account. Returns ErrDuplicate when
	// the account code is already taken.
	SaveAccount(ctx context.Context, account domain.ChartOfAccount) error
}

// ChartOfAccountRepositoryFacade combines chart-of-account repository interfaces.
type ChartOfAccountRepositoryFacade interface {
	ChartOfAccountReader
	ChartOfAccountWriter
}
