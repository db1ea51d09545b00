package dto

import (
	"time"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/google/uuid"
)

// CreateChartOfAccountRequest defines the data needed to add a ledger account.
type CreateChartOfAccountRequest struct {
	AccountCode string `json:"accountCode" binding:"required"`
	AccountName string `json:"accountName" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
}

// ChartOfAccountResponse defines the data returned for a ledger account.
type ChartOfAccountResponse struct {
	AccountID   uuid.UUID `json:"accountID"`
	AccountCode string    `json:"accountCode"`
	AccountName string    `json:"accountName"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToChartOfAccountResponse converts a domain.ChartOfAccount to its DTO.
func ToChartOfAccountResponse(acc *domain.ChartOfAccount) ChartOfAccountResponse {
	return ChartOfAccountResponse{
		AccountID:   acc.AccountID,
		AccountCode: acc.AccountCode,
		AccountName: acc.AccountName,
		Category:    string(acc.Category),
		IsActive:    acc.IsActive,
		CreatedAt:   acc.CreatedAt,
	}
}

// ToChartOfAccountResponses converts a slice of accounts to DTOs.
func ToChartOfAccountResponses(accs []domain.ChartOfAccount) []ChartOfAccountResponse {
	responses := make([]ChartOfAccountResponse, len(accs))
	for i := range accs {
		responses[i] = ToChartOfAccountResponse(&accs[i])
	}
	return responses
}
