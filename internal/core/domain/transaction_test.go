package domain_test

import (
	"testing"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.TransactionType
		wantErr bool
	}{
		{name: "exact match", input: "DISBURSEMENT", want: domain.Disbursement},
		{name: "lowercase", input: "repayment", want: domain.Repayment},
		{name: "mixed case", input: "Repayment", want: domain.Repayment},
		{name: "surrounding whitespace", input: "  deposit ", want: domain.Deposit},
		{name: "withdrawal", input: "withdrawal", want: domain.Withdrawal},
		{name: "fee", input: "FEE", want: domain.Fee},
		{name: "penalty", input: "Penalty", want: domain.Penalty},
		{name: "unknown value", input: "TRANSFER", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseTransactionType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAccountCategory(t *testing.T) {
	got, err := domain.ParseAccountCategory("asset")
	assert.NoError(t, err)
	assert.Equal(t, domain.Asset, got)

	_, err = domain.ParseAccountCategory("receivable")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
