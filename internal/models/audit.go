package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is a row of the audit_logs table. Unlike auditable entities these
// rows carry their own single timestamp and are never updated.
type AuditLog struct {
	LogID       uuid.UUID `db:"log_id"`
	EntityType  string    `db:"entity_type"`
	EntityID    string    `db:"entity_id"`
	Action      string    `db:"action"`
	Detail      string    `db:"detail"`
	PerformedBy string    `db:"performed_by"`
	PerformedAt time.Time `db:"performed_at"`
}
