package accounting_test

import (
	"testing"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleFor_CoversAllTypes(t *testing.T) {
	types := []domain.TransactionType{
		domain.Disbursement, domain.Repayment, domain.Fee,
		domain.Penalty, domain.Deposit, domain.Withdrawal,
	}
	for _, txnType := range types {
		rule, err := accounting.RuleFor(txnType)
		require.NoError(t, err, "missing posting rule for %s", txnType)
		assert.NotEmpty(t, rule.DebitAccountCode)
		assert.NotEmpty(t, rule.CreditAccountCode)
		assert.NotEqual(t, rule.DebitAccountCode, rule.CreditAccountCode)
	}

	_, err := accounting.RuleFor(domain.TransactionType("TRANSFER"))
	assert.Error(t, err)
}

func TestRuleFor_DisbursementPostsLoanReceivableAgainstCash(t *testing.T) {
	rule, err := accounting.RuleFor(domain.Disbursement)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountCodeLoanReceivable, rule.DebitAccountCode)
	assert.Equal(t, domain.AccountCodeCash, rule.CreditAccountCode)
}

func detail(debit, credit string) domain.JournalEntryDetail {
	return domain.JournalEntryDetail{
		DetailID: uuid.New(),
		Debit:    domain.MustMoney(decimal.RequireFromString(debit)),
		Credit:   domain.MustMoney(decimal.RequireFromString(credit)),
	}
}

func TestValidateEntryBalance(t *testing.T) {
	tests := []struct {
		name    string
		details []domain.JournalEntryDetail
		wantErr bool
	}{
		{
			name:    "balanced pair",
			details: []domain.JournalEntryDetail{detail("500.00", "0"), detail("0", "500.00")},
		},
		{
			name: "balanced split credit",
			details: []domain.JournalEntryDetail{
				detail("100.00", "0"), detail("0", "60.00"), detail("0", "40.00"),
			},
		},
		{
			name:    "unbalanced",
			details: []domain.JournalEntryDetail{detail("500.00", "0"), detail("0", "499.99")},
			wantErr: true,
		},
		{
			name:    "single line",
			details: []domain.JournalEntryDetail{detail("500.00", "0")},
			wantErr: true,
		},
		{
			name:    "both sides set on one line",
			details: []domain.JournalEntryDetail{detail("500.00", "500.00"), detail("0", "0")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateEntryBalance(tt.details)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
