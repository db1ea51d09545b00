package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/dto"
	"github.com/astrofinance/afs_backend/internal/utils/pagination"
)

// loanService manages loans and their flat-rate payment schedules.
type loanService struct {
	BaseService
	loanRepo     portsrepo.LoanRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	clock        portssvc.Clock
}

// NewLoanService creates a new loan service.
func NewLoanService(loanRepo portsrepo.LoanRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, clock portssvc.Clock) portssvc.LoanSvcFacade {
	return &loanService{
		loanRepo:     loanRepo,
		customerRepo: customerRepo,
		clock:        clock,
	}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// CreateLoan opens a loan in PENDING status and generates its payment
// schedule. The loan and schedule persist in one database transaction.
func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, creatorUserID string) (*domain.Loan, error) {
	principal, err := domain.NewPositiveMoney(req.Principal)
	if err != nil {
		return nil, err
	}
	if req.TermMonths <= 0 {
		return nil, apperrors.NewValidationError("termMonths must be greater than zero")
	}
	if req.InterestRate.IsNegative() {
		return nil, apperrors.NewValidationError("interestRate must not be negative")
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	startDate := now
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	loan := domain.Loan{
		LoanID:       uuid.New(),
		CustomerID:   customer.CustomerID,
		Principal:    principal,
		InterestRate: req.InterestRate,
		TermMonths:   req.TermMonths,
		Status:       domain.LoanPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
		Customer: customer,
	}

	schedule, err := s.generateSchedule(loan, startDate)
	if err != nil {
		return nil, err
	}

	if err := s.loanRepo.SaveLoan(ctx, loan, schedule); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Loan created", "loan_id", loan.LoanID, "customer_id", loan.CustomerID, "principal", loan.Principal.String())
	return &loan, nil
}

// generateSchedule splits the flat-rate total repayable into equal monthly
// installments. Total = principal * (1 + rate/100 * term/12), rounded per
// installment to the minor unit, with any rounding remainder carried by the
// last installment so the schedule sums to the total exactly.
func (s *loanService) generateSchedule(loan domain.Loan, startDate time.Time) ([]domain.PaymentSchedule, error) {
	hundred := decimal.NewFromInt(100)
	twelve := decimal.NewFromInt(12)
	term := decimal.NewFromInt(int64(loan.TermMonths))

	interestFactor := loan.InterestRate.Div(hundred).Mul(term).Div(twelve)
	total := loan.Principal.Decimal().Mul(decimal.NewFromInt(1).Add(interestFactor)).Round(2)

	installment := total.Div(term).Round(2)
	lastInstallment := total.Sub(installment.Mul(term.Sub(decimal.NewFromInt(1))))
	if !lastInstallment.IsPositive() {
		return nil, fmt.Errorf("%w: schedule rounding produced a non-positive final installment", apperrors.ErrInternal)
	}

	schedule := make([]domain.PaymentSchedule, loan.TermMonths)
	for i := 0; i < loan.TermMonths; i++ {
		amount := installment
		if i == loan.TermMonths-1 {
			amount = lastInstallment
		}
		m, err := domain.NewPositiveMoney(amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInternal, err.Error())
		}
		schedule[i] = domain.PaymentSchedule{
			ScheduleID:  uuid.New(),
			LoanID:      loan.LoanID,
			DueDate:     startDate.AddDate(0, i+1, 0),
			Amount:      m,
			IsPaid:      false,
			AuditFields: loan.AuditFields,
		}
	}
	return schedule, nil
}

// GetLoanByID retrieves a loan with its customer populated.
func (s *loanService) GetLoanByID(ctx context.Context, loanID uuid.UUID) (*domain.Loan, error) {
	return s.loanRepo.FindLoanByID(ctx, loanID)
}

// ListLoans retrieves loans, optionally scoped to one customer.
func (s *loanService) ListLoans(ctx context.Context, customerID *uuid.UUID, pageNumber, pageSize int) ([]domain.Loan, int64, error) {
	page := pagination.Normalize(pageNumber, pageSize)
	return s.loanRepo.ListLoans(ctx, portsrepo.ListLoansFilter{
		CustomerID: customerID,
		Page:       page,
	})
}

// GetPaymentSchedule retrieves a loan's installment schedule ordered by due date.
func (s *loanService) GetPaymentSchedule(ctx context.Context, loanID uuid.UUID) ([]domain.PaymentSchedule, error) {
	if _, err := s.loanRepo.FindLoanByID(ctx, loanID); err != nil {
		return nil, err
	}
	return s.loanRepo.FindSchedulesByLoanID(ctx, loanID)
}
