package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/google/uuid"
)

// TransactionType enumerates the supported kinds of ledger movements.
type TransactionType string

const (
	Disbursement TransactionType = "DISBURSEMENT"
	Repayment    TransactionType = "REPAYMENT"
	Fee          TransactionType = "FEE"
	Penalty      TransactionType = "PENALTY"
	Deposit      TransactionType = "DEPOSIT"
	Withdrawal   TransactionType = "WITHDRAWAL"
)

// ParseTransactionType matches an input string against the closed enumeration,
// case-insensitively. Unknown values fail with a validation error.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(strings.TrimSpace(s))) {
	case Disbursement:
		return Disbursement, nil
	case Repayment:
		return Repayment, nil
	case Fee:
		return Fee, nil
	case Penalty:
		return Penalty, nil
	case Deposit:
		return Deposit, nil
	case Withdrawal:
		return Withdrawal, nil
	default:
		return "", fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, s)
	}
}

// Transaction is an immutable record of a single financial movement against a
// customer, optionally tied to a loan. CustomerID is denormalized from the loan
// at recording time for query convenience. Once a journal entry references a
// transaction it can no longer be deleted.
type Transaction struct {
	TransactionID   uuid.UUID       `json:"transactionID"`
	LoanID          *uuid.UUID      `json:"loanID,omitempty"`
	CustomerID      uuid.UUID       `json:"customerID"`
	Amount          Money           `json:"amount"`
	Type            TransactionType `json:"type"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields

	// CustomerName is populated on reads from the customers join. It is not
	// persisted on the transaction row itself.
	CustomerName string `json:"customerName,omitempty"`
}
