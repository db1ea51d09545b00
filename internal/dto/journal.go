package dto

import (
	"time"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalEntryDetailResponse is one posting line of a journal entry.
type JournalEntryDetailResponse struct {
	DetailID    uuid.UUID       `json:"detailID"`
	AccountID   uuid.UUID       `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry and its details.
type JournalEntryResponse struct {
	EntryID       uuid.UUID                    `json:"entryID"`
	TransactionID uuid.UUID                    `json:"transactionID"`
	EntryDate     time.Time                    `json:"entryDate"`
	Description   string                       `json:"description"`
	CreatedAt     time.Time                    `json:"createdAt"`
	CreatedBy     string                       `json:"createdBy"`
	Details       []JournalEntryDetailResponse `json:"details"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	details := make([]JournalEntryDetailResponse, len(entry.Details))
	for i, d := range entry.Details {
		details[i] = JournalEntryDetailResponse{
			DetailID:    d.DetailID,
			AccountID:   d.AccountID,
			Debit:       d.Debit.Decimal(),
			Credit:      d.Credit.Decimal(),
			Description: d.Description,
		}
	}
	return JournalEntryResponse{
		EntryID:       entry.EntryID,
		TransactionID: entry.TransactionID,
		EntryDate:     entry.EntryDate,
		Description:   entry.Description,
		CreatedAt:     entry.CreatedAt,
		CreatedBy:     entry.CreatedBy,
		Details:       details,
	}
}

// ToJournalEntryResponses converts a slice of entries to DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
