package mapping

import (
	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/models"
)

// ToModelChartOfAccount converts a domain ChartOfAccount to a model ChartOfAccount
func ToModelChartOfAccount(d domain.ChartOfAccount) models.ChartOfAccount {
	return models.ChartOfAccount{
		AccountID:   d.AccountID,
		AccountCode: d.AccountCode,
		AccountName: d.AccountName,
		Category:    string(d.Category),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChartOfAccount converts a model ChartOfAccount to a domain ChartOfAccount
func ToDomainChartOfAccount(m models.ChartOfAccount) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		AccountName: m.AccountName,
		Category:    domain.AccountCategory(m.Category),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
