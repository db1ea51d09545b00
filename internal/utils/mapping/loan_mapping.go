package mapping

import (
	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:           d.LoanID,
		CustomerID:       d.CustomerID,
		Principal:        d.Principal.Decimal(),
		InterestRate:     d.InterestRate,
		TermMonths:       d.TermMonths,
		Status:           string(d.Status),
		DisbursementDate: d.DisbursementDate,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:           m.LoanID,
		CustomerID:       m.CustomerID,
		Principal:        domain.MustMoney(m.Principal),
		InterestRate:     m.InterestRate,
		TermMonths:       m.TermMonths,
		Status:           domain.LoanStatus(m.Status),
		DisbursementDate: m.DisbursementDate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPaymentSchedule converts a domain PaymentSchedule to a model PaymentSchedule
func ToModelPaymentSchedule(d domain.PaymentSchedule) models.PaymentSchedule {
	return models.PaymentSchedule{
		ScheduleID:  d.ScheduleID,
		LoanID:      d.LoanID,
		DueDate:     d.DueDate,
		Amount:      d.Amount.Decimal(),
		IsPaid:      d.IsPaid,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentSchedule converts a model PaymentSchedule to a domain PaymentSchedule
func ToDomainPaymentSchedule(m models.PaymentSchedule) domain.PaymentSchedule {
	return domain.PaymentSchedule{
		ScheduleID:  m.ScheduleID,
		LoanID:      m.LoanID,
		DueDate:     m.DueDate,
		Amount:      domain.MustMoney(m.Amount),
		IsPaid:      m.IsPaid,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
