package repositories

import (
	"context"
	"time"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

// ListLoansFilter holds the filters for loan listings.
type ListLoansFilter struct {
	CustomerID *uuid.UUID
	Status     *domain.LoanStatus
	Page       pagination.Params
}

// LoanReader defines read operations for loan data
type LoanReader interface {
	// FindLoanByID retrieves a loan with its owning customer populated.
	FindLoanByID(ctx context.Context, loanID uuid.UUID) (*domain.Loan, error)

	// ListLoans retrieves one page of loans ordered by creation time
	// descending, plus the total match count.
	ListLoans(ctx context.Context, filter ListLoansFilter) ([]domain.Loan, int64, error)

	// FindSchedulesByLoanID retrieves a loan's payment schedule ordered by due date.
	FindSchedulesByLoanID(ctx context.Context, loanID uuid.UUID) ([]domain.PaymentSchedule, error)
}

// LoanWriter defines write operations for loan data
type LoanWriter interface {
	// SaveLoan persists a loan and its payment schedule in a single database
	// transaction.
	SaveLoan(ctx context.Context, loan domain.Loan, schedule []domain.PaymentSchedule) error

	// UpdateLoanStatus transitions a loan's status, stamping audit fields.
	UpdateLoanStatus(ctx context.Context, loanID uuid.UUID, status domain.LoanStatus, disbursementDate *time.Time, updatedBy string, updatedAt time.Time) error
}

// LoanRepositoryFacade combines loan repository interfaces.
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}
