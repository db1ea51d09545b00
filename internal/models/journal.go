package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID       uuid.UUID `db:"entry_id"`
	TransactionID uuid.UUID `db:"transaction_id"`
	EntryDate     time.Time `db:"entry_date"`
	Description   string    `db:"description"`
	AuditFields
}

// JournalEntryDetail is a row of the journal_entry_details table.
// Exactly one of Debit and Credit is nonzero, enforced before insert.
type JournalEntryDetail struct {
	DetailID    uuid.UUID       `db:"detail_id"`
	EntryID     uuid.UUID       `db:"entry_id"`
	AccountID   uuid.UUID       `db:"account_id"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Description string          `db:"description"`
}
