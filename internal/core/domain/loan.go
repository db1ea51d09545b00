package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus tracks a loan through its lifecycle.
type LoanStatus string

const (
	LoanPending   LoanStatus = "PENDING"
	LoanActive    LoanStatus = "ACTIVE"
	LoanClosed    LoanStatus = "CLOSED"
	LoanDefaulted LoanStatus = "DEFAULTED"
)

// Loan represents a customer loan with a flat-rate repayment schedule.
type Loan struct {
	LoanID           uuid.UUID       `json:"loanID"`
	CustomerID       uuid.UUID       `json:"customerID"`
	Principal        Money           `json:"principal"`
	InterestRate     decimal.Decimal `json:"interestRate"` // annual flat rate, percent
	TermMonths       int             `json:"termMonths"`
	Status           LoanStatus      `json:"status"`
	DisbursementDate *time.Time      `json:"disbursementDate,omitempty"`
	AuditFields

	// Customer is populated on reads that join the owning customer.
	Customer *Customer `json:"customer,omitempty"`
}

// PaymentSchedule is one expected installment of a loan.
type PaymentSchedule struct {
	ScheduleID uuid.UUID `json:"scheduleID"`
	LoanID     uuid.UUID `json:"loanID"`
	DueDate    time.Time `json:"dueDate"`
	Amount     Money     `json:"amount"`
	IsPaid     bool      `json:"isPaid"`
	AuditFields
}
