// Package models holds the database-shaped records scanned by the pgsql
// repositories. Amounts are raw decimals here; the domain layer wraps them
// into Money on the way out.
package models

import "time"

// AuditFields mirrors the audit columns present on every auditable table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
