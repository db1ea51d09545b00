package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/dto"
)

// chartOfAccountService manages the ledger's chart of accounts.
type chartOfAccountService struct {
	BaseService
	accountRepo portsrepo.ChartOfAccountRepositoryFacade
	clock       portssvc.Clock
}

// NewChartOfAccountService creates a new chart-of-account service.
func NewChartOfAccountService(accountRepo portsrepo.ChartOfAccountRepositoryFacade, clock portssvc.Clock) portssvc.ChartOfAccountSvcFacade {
	return &chartOfAccountService{
		accountRepo: accountRepo,
		clock:       clock,
	}
}

var _ portssvc.ChartOfAccountSvcFacade = (*chartOfAccountService)(nil)

// CreateAccount adds a ledger account. Account codes are unique; a taken code
// surfaces as ErrDuplicate from the repository.
func (s *chartOfAccountService) CreateAccount(ctx context.Context, req dto.CreateChartOfAccountRequest, creatorUserID string) (*domain.ChartOfAccount, error) {
	category, err := domain.ParseAccountCategory(req.Category)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	account := domain.ChartOfAccount{
		AccountID:   uuid.New(),
		AccountCode: req.AccountCode,
		AccountName: req.AccountName,
		Category:    category,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Ledger account created", "account_code", account.AccountCode, "category", string(account.Category))
	return &account, nil
}

// ListAccounts returns the full chart of accounts ordered by code.
func (s *chartOfAccountService) ListAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	return s.accountRepo.ListAccounts(ctx)
}
