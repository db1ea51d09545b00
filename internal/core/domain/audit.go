package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records one mutating action against a back-office entity.
type AuditLog struct {
	LogID       uuid.UUID `json:"logID"`
	EntityType  string    `json:"entityType"`
	EntityID    string    `json:"entityID"`
	Action      string    `json:"action"`
	Detail      string    `json:"detail"`
	PerformedBy string    `json:"performedBy"`
	PerformedAt time.Time `json:"performedAt"`
}
