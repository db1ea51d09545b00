package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. LoanID is nullable; deposits
// and withdrawals are recorded directly against a customer.
type Transaction struct {
	TransactionID   uuid.UUID       `db:"transaction_id"`
	LoanID          *uuid.UUID      `db:"loan_id"`
	CustomerID      uuid.UUID       `db:"customer_id"`
	Amount          decimal.Decimal `db:"amount"`
	Type            string          `db:"type"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	AuditFields

	// CustomerName is populated by list/detail queries joining customers.
	CustomerName string `db:"customer_name"`
}
