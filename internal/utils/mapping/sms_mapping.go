package mapping

import (
	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/models"
)

// ToModelSmsTemplate converts a domain SmsTemplate to a model SmsTemplate
func ToModelSmsTemplate(d domain.SmsTemplate) models.SmsTemplate {
	return models.SmsTemplate{
		TemplateID:  d.TemplateID,
		Name:        d.Name,
		Body:        d.Body,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSmsTemplate converts a model SmsTemplate to a domain SmsTemplate
func ToDomainSmsTemplate(m models.SmsTemplate) domain.SmsTemplate {
	return domain.SmsTemplate{
		TemplateID:  m.TemplateID,
		Name:        m.Name,
		Body:        m.Body,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSmsHistory converts a domain SmsHistory to a model SmsHistory
func ToModelSmsHistory(d domain.SmsHistory) models.SmsHistory {
	return models.SmsHistory{
		HistoryID:   d.HistoryID,
		CustomerID:  d.CustomerID,
		PhoneNumber: d.PhoneNumber,
		Message:     d.Message,
		Status:      string(d.Status),
		SentAt:      d.SentAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSmsHistory converts a model SmsHistory to a domain SmsHistory
func ToDomainSmsHistory(m models.SmsHistory) domain.SmsHistory {
	return domain.SmsHistory{
		HistoryID:   m.HistoryID,
		CustomerID:  m.CustomerID,
		PhoneNumber: m.PhoneNumber,
		Message:     m.Message,
		Status:      domain.SmsStatus(m.Status),
		SentAt:      m.SentAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSmsHistorySlice converts model history rows to domain rows
func ToDomainSmsHistorySlice(ms []models.SmsHistory) []domain.SmsHistory {
	ds := make([]domain.SmsHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSmsHistory(m)
	}
	return ds
}
