package dto

import (
	"time"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to open a loan.
type CreateLoanRequest struct {
	CustomerID   uuid.UUID       `json:"customerId" binding:"required"`
	Principal    decimal.Decimal `json:"principal" binding:"required"`
	InterestRate decimal.Decimal `json:"interestRate"`
	TermMonths   int             `json:"termMonths" binding:"required,gt=0"`
	StartDate    *time.Time      `json:"startDate"` // Optional, first installment anchor
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID           uuid.UUID       `json:"loanID"`
	CustomerID       uuid.UUID       `json:"customerID"`
	CustomerName     string          `json:"customerName,omitempty"`
	Principal        decimal.Decimal `json:"principal"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	TermMonths       int             `json:"termMonths"`
	Status           string          `json:"status"`
	DisbursementDate *time.Time      `json:"disbursementDate,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// PaymentScheduleResponse is one expected installment of a loan.
type PaymentScheduleResponse struct {
	ScheduleID uuid.UUID       `json:"scheduleID"`
	DueDate    time.Time       `json:"dueDate"`
	Amount     decimal.Decimal `json:"amount"`
	IsPaid     bool            `json:"isPaid"`
}

// ToLoanResponse converts a domain.Loan to its DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	resp := LoanResponse{
		LoanID:           l.LoanID,
		CustomerID:       l.CustomerID,
		Principal:        l.Principal.Decimal(),
		InterestRate:     l.InterestRate,
		TermMonths:       l.TermMonths,
		Status:           string(l.Status),
		DisbursementDate: l.DisbursementDate,
		CreatedAt:        l.CreatedAt,
	}
	if l.Customer != nil {
		resp.CustomerName = l.Customer.FullName()
	}
	return resp
}

// ToLoanResponses converts a slice of loans to DTOs.
func ToLoanResponses(ls []domain.Loan) []LoanResponse {
	responses := make([]LoanResponse, len(ls))
	for i := range ls {
		responses[i] = ToLoanResponse(&ls[i])
	}
	return responses
}

// ToPaymentScheduleResponses converts schedule rows to DTOs.
func ToPaymentScheduleResponses(ss []domain.PaymentSchedule) []PaymentScheduleResponse {
	responses := make([]PaymentScheduleResponse, len(ss))
	for i, s := range ss {
		responses[i] = PaymentScheduleResponse{
			ScheduleID: s.ScheduleID,
			DueDate:    s.DueDate,
			Amount:     s.Amount.Decimal(),
			IsPaid:     s.IsPaid,
		}
	}
	return responses
}
