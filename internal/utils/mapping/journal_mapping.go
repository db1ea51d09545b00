package mapping

import (
	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:       d.EntryID,
		TransactionID: d.TransactionID,
		EntryDate:     d.EntryDate,
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		TransactionID: m.TransactionID,
		EntryDate:     m.EntryDate,
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntryDetail converts a domain JournalEntryDetail to a model JournalEntryDetail
func ToModelJournalEntryDetail(d domain.JournalEntryDetail) models.JournalEntryDetail {
	return models.JournalEntryDetail{
		DetailID:    d.DetailID,
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		Debit:       d.Debit.Decimal(),
		Credit:      d.Credit.Decimal(),
		Description: d.Description,
	}
}

// ToDomainJournalEntryDetail converts a model JournalEntryDetail to a domain JournalEntryDetail
func ToDomainJournalEntryDetail(m models.JournalEntryDetail) domain.JournalEntryDetail {
	return domain.JournalEntryDetail{
		DetailID:    m.DetailID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Debit:       domain.MustMoney(m.Debit),
		Credit:      domain.MustMoney(m.Credit),
		Description: m.Description,
	}
}

// ToDomainJournalEntryDetailSlice converts a slice of model details to domain details
func ToDomainJournalEntryDetailSlice(ms []models.JournalEntryDetail) []domain.JournalEntryDetail {
	ds := make([]domain.JournalEntryDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntryDetail(m)
	}
	return ds
}
