package models

import "github.com/google/uuid"

// ChartOfAccount is a row of the chart_of_accounts table.
type ChartOfAccount struct {
	AccountID   uuid.UUID `db:"account_id"`
	AccountCode string    `db:"account_code"`
	AccountName string    `db:"account_name"`
	Category    string    `db:"category"`
	IsActive    bool      `db:"is_active"`
	AuditFields
}
