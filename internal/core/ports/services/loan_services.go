package services

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/dto"
	"github.com/google/uuid"
)

// LoanSvcFacade exposes loan operations.
type LoanSvcFacade interface {
	// CreateLoan opens a loan for a customer and generates its payment schedule.
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest, creatorUserID string) (*domain.Loan, error)

	// GetLoanByID retrieves a loan with its customer populated.
	GetLoanByID(ctx context.Context, loanID uuid.UUID) (*domain.Loan, error)

	// ListLoans retrieves loans, optionally scoped to one customer.
	ListLoans(ctx context.Context, customerID *uuid.UUID, pageNumber, pageSize int) ([]domain.Loan, int64, error)

	// GetPaymentSchedule retrieves a loan's installment schedule.
	GetPaymentSchedule(ctx context.Context, loanID uuid.UUID) ([]domain.PaymentSchedule, error)
}
