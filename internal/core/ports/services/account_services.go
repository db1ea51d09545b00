package services

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/dto"
)

// ChartOfAccountSvcFacade exposes chart-of-account operations.
type ChartOfAccountSvcFacade interface {
	// CreateAccount adds a ledger account with a unique code.
	CreateAccount(ctx context.Context, req dto.CreateChartOfAccountRequest, creatorUserID string) (*domain.ChartOfAccount, error)

	// ListAccounts returns the full chart of accounts ordered by code.
	ListAccounts(ctx context.Context) ([]domain.ChartOfAccount, error)
}
