package repositories

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
)

// AuditLogWriter defines write operations for the audit trail
type AuditLogWriter interface {
	// SaveAuditLog records one mutating action. Callers treat failures as
	// non-fatal; an audit write must never fail the business operation.
	SaveAuditLog(ctx context.Context, log domain.AuditLog) error
}

// AuditLogRepositoryFacade combines audit repository interfaces.
type AuditLogRepositoryFacade interface {
	AuditLogWriter
}
