package pgsql

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

// newPgxAuditLogRepository creates a new repository for the audit trail.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAuditLogRepository implements portsrepo.AuditLogRepositoryFacade
var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

// SaveAuditLog records one mutating action.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (log_id, entity_type, entity_id, action, detail, performed_by, performed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		log.LogID,
		log.EntityType,
		log.EntityID,
		log.Action,
		log.Detail,
		log.PerformedBy,
		log.PerformedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log "+log.LogID.String(), err)
	}
	return nil
}
