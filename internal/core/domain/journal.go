package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a balanced double-entry bookkeeping record derived from
// exactly one transaction. Entries are append-only: they are never mutated,
// and their presence blocks deletion of the originating transaction.
type JournalEntry struct {
	EntryID       uuid.UUID `json:"entryID"`
	TransactionID uuid.UUID `json:"transactionID"`
	EntryDate     time.Time `json:"entryDate"`
	Description   string    `json:"description"`
	AuditFields

	// Details are loaded alongside the entry where the caller needs them.
	Details []JournalEntryDetail `json:"details,omitempty"`
}

// JournalEntryDetail is one posting line of a journal entry. Exactly one of
// Debit and Credit is nonzero.
type JournalEntryDetail struct {
	DetailID    uuid.UUID `json:"detailID"`
	EntryID     uuid.UUID `json:"entryID"`
	AccountID   uuid.UUID `json:"accountID"`
	Debit       Money     `json:"debit"`
	Credit      Money     `json:"credit"`
	Description string    `json:"description"`
}

// DebitTotal sums the debit side of the entry's details.
func (e JournalEntry) DebitTotal() Money {
	total := Money{}
	for _, d := range e.Details {
		total = total.Add(d.Debit)
	}
	return total
}

// CreditTotal sums the credit side of the entry's details.
func (e JournalEntry) CreditTotal() Money {
	total := Money{}
	for _, d := range e.Details {
		total = total.Add(d.Credit)
	}
	return total
}
