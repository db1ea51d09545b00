package domain

import (
	"fmt"
	"strings"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/google/uuid"
)

// AccountCategory defines the fundamental accounting category of a ledger account.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Income    AccountCategory = "INCOME"
	Expense   AccountCategory = "EXPENSE"
)

// ParseAccountCategory matches an input string against the category enum,
// case-insensitively.
func ParseAccountCategory(s string) (AccountCategory, error) {
	switch AccountCategory(strings.ToUpper(strings.TrimSpace(s))) {
	case Asset:
		return Asset, nil
	case Liability:
		return Liability, nil
	case Equity:
		return Equity, nil
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: invalid account category %q", apperrors.ErrValidation, s)
	}
}

// Well-known account codes seeded by the initial migration. Posting rules
// reference accounts by code, not by ID.
const (
	AccountCodeCash             = "1000"
	AccountCodeLoanReceivable   = "1200"
	AccountCodeCustomerDeposits = "2100"
	AccountCodeFeeIncome        = "4100"
	AccountCodePenaltyIncome    = "4200"
)

// ChartOfAccount is one line of the chart of accounts that journal entry
// details post against. Inactive accounts are not postable.
type ChartOfAccount struct {
	AccountID   uuid.UUID       `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Category    AccountCategory `json:"category"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
