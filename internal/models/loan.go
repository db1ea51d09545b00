package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan is a row of the loans table.
type Loan struct {
	LoanID           uuid.UUID       `db:"loan_id"`
	CustomerID       uuid.UUID       `db:"customer_id"`
	Principal        decimal.Decimal `db:"principal"`
	InterestRate     decimal.Decimal `db:"interest_rate"`
	TermMonths       int             `db:"term_months"`
	Status           string          `db:"status"`
	DisbursementDate *time.Time      `db:"disbursement_date"`
	AuditFields
}

// PaymentSchedule is a row of the payment_schedules table.
type PaymentSchedule struct {
	ScheduleID uuid.UUID       `db:"schedule_id"`
	LoanID     uuid.UUID       `db:"loan_id"`
	DueDate    time.Time       `db:"due_date"`
	Amount     decimal.Decimal `db:"amount"`
	IsPaid     bool            `db:"is_paid"`
	AuditFields
}
