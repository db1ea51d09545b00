package dto

import (
	"time"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Either LoanID or CustomerID must be provided; with a LoanID the customer is
// resolved from the loan.
type CreateTransactionRequest struct {
	LoanID          *uuid.UUID      `json:"loanId"`
	CustomerID      *uuid.UUID      `json:"customerId"`
	Type            string          `json:"type" binding:"required,txntype"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate *time.Time      `json:"transactionDate"` // Optional, defaults to the server clock
	Description     string          `json:"description"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	LoanID          *uuid.UUID      `json:"loanId,omitempty"`
	CustomerID      uuid.UUID       `json:"customerId"`
	CustomerName    string          `json:"customerName,omitempty"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ListTransactionsParams holds the query-side filters for the transaction list.
// All provided filters compose conjunctively.
type ListTransactionsParams struct {
	SearchTerm *string
	LoanID     *uuid.UUID
	CustomerID *uuid.UUID
	FromDate   *time.Time
	ToDate     *time.Time
	PageNumber int
	PageSize   int
}

// TransactionsListResponse is the paginated envelope for transaction listings.
type TransactionsListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalCount   int64                 `json:"totalCount"`
	PageNumber   int                   `json:"pageNumber"`
	PageSize     int                   `json:"pageSize"`
	TotalPages   int                   `json:"totalPages"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.TransactionID,
		LoanID:          txn.LoanID,
		CustomerID:      txn.CustomerID,
		CustomerName:    txn.CustomerName,
		Type:            string(txn.Type),
		Amount:          txn.Amount.Decimal(),
		TransactionDate: txn.TransactionDate,
		Description:     txn.Description,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
	}
}
