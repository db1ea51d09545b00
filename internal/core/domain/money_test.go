package domain_test

import (
	"testing"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name    string
		value   decimal.Decimal
		wantErr bool
	}{
		{name: "whole amount", value: decimal.NewFromInt(500)},
		{name: "two decimal places", value: decimal.RequireFromString("500.25")},
		{name: "zero is allowed", value: decimal.Zero},
		{name: "trailing zeros beyond scale", value: decimal.RequireFromString("10.5000")},
		{name: "negative rejected", value: decimal.RequireFromString("-0.01"), wantErr: true},
		{name: "sub-cent precision rejected", value: decimal.RequireFromString("1.005"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.NewMoney(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, m.Decimal().Equal(tt.value))
		})
	}
}

func TestNewPositiveMoney_RejectsZero(t *testing.T) {
	_, err := domain.NewPositiveMoney(decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	m, err := domain.NewPositiveMoney(decimal.RequireFromString("0.01"))
	require.NoError(t, err)
	assert.Equal(t, "0.01", m.String())
}

func TestMoney_ArithmeticIsExact(t *testing.T) {
	// 0.10 added a hundred times must be exactly 10.00, which would drift
	// under binary floating point.
	dime := domain.MustMoney(decimal.RequireFromString("0.10"))
	sum := domain.Money{}
	for i := 0; i < 100; i++ {
		sum = sum.Add(dime)
	}
	assert.True(t, sum.Equal(domain.MustMoney(decimal.NewFromInt(10))))
	assert.Equal(t, "10.00", sum.String())
}

func TestMoney_SubUnderflow(t *testing.T) {
	five := domain.MustMoney(decimal.NewFromInt(5))
	ten := domain.MustMoney(decimal.NewFromInt(10))

	got, err := ten.Sub(five)
	require.NoError(t, err)
	assert.Equal(t, "5.00", got.String())

	_, err = five.Sub(ten)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMoney_Cmp(t *testing.T) {
	a := domain.MustMoney(decimal.RequireFromString("1.50"))
	b := domain.MustMoney(decimal.RequireFromString("1.5"))
	c := domain.MustMoney(decimal.NewFromInt(2))

	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, -1, a.Cmp(c))
	assert.Equal(t, 1, c.Cmp(a))
}
