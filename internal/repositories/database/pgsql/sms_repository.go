package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	"github.com/astrofinance/afs_backend/internal/models"
	"github.com/astrofinance/afs_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSmsRepository struct {
	BaseRepository
}

// newPgxSmsRepository creates a new repository for SMS templates and history.
func newPgxSmsRepository(pool *pgxpool.Pool) portsrepo.SmsRepositoryFacade {
	return &PgxSmsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSmsRepository implements portsrepo.SmsRepositoryFacade
var _ portsrepo.SmsRepositoryFacade = (*PgxSmsRepository)(nil)

const templateSelectColumns = `
	template_id, name, body, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

// FindTemplateByName retrieves a template by its unique name.
func (r *PgxSmsRepository) FindTemplateByName(ctx context.Context, name string) (*domain.SmsTemplate, error) {
	query := `SELECT ` + templateSelectColumns + ` FROM sms_templates WHERE name = $1;`
	m, err := scanTemplate(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find SMS template "+name, err)
	}

	template := mapping.ToDomainSmsTemplate(*m)
	return &template, nil
}

// ListTemplates retrieves all templates ordered by name.
func (r *PgxSmsRepository) ListTemplates(ctx context.Context) ([]domain.SmsTemplate, error) {
	query := `SELECT ` + templateSelectColumns + ` FROM sms_templates ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query SMS templates", err)
	}
	defer rows.Close()

	templates := []domain.SmsTemplate{}
	for rows.Next() {
		m, err := scanTemplate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan SMS template row", err)
		}
		templates = append(templates, mapping.ToDomainSmsTemplate(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating SMS template rows", err)
	}
	return templates, nil
}

// SaveTemplate persists a new template.
func (r *PgxSmsRepository) SaveTemplate(ctx context.Context, template domain.SmsTemplate) error {
	m := mapping.ToModelSmsTemplate(template)
	query := `
		INSERT INTO sms_templates (
			template_id, name, body, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TemplateID,
		m.Name,
		m.Body,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert SMS template "+m.Name, err)
	}
	return nil
}

// SaveHistory records one notification attempt.
func (r *PgxSmsRepository) SaveHistory(ctx context.Context, history domain.SmsHistory) error {
	m := mapping.ToModelSmsHistory(history)
	query := `
		INSERT INTO sms_history (
			history_id, customer_id, phone_number, message, status, sent_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.HistoryID,
		m.CustomerID,
		m.PhoneNumber,
		m.Message,
		m.Status,
		m.SentAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert SMS history "+m.HistoryID.String(), err)
	}
	return nil
}

// ListHistory retrieves one page of history rows newest first, plus the total
// match count.
func (r *PgxSmsRepository) ListHistory(ctx context.Context, filter portsrepo.ListSmsHistoryFilter) ([]domain.SmsHistory, int64, error) {
	whereClause := ""
	args := []interface{}{}
	if filter.CustomerID != nil {
		whereClause = " WHERE customer_id = $1"
		args = append(args, *filter.CustomerID)
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM sms_history" + whereClause + ";"
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count SMS history", err)
	}

	limitPos := len(args) + 1
	listQuery := `
		SELECT history_id, customer_id, phone_number, message, status, sent_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM sms_history` + whereClause + `
		ORDER BY sent_at DESC
		LIMIT $` + strconv.Itoa(limitPos) + ` OFFSET $` + strconv.Itoa(limitPos+1) + `;`
	args = append(args, filter.Page.PageSize, filter.Page.Offset())

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query SMS history", err)
	}
	defer rows.Close()

	history := []models.SmsHistory{}
	for rows.Next() {
		var m models.SmsHistory
		err := rows.Scan(
			&m.HistoryID,
			&m.CustomerID,
			&m.PhoneNumber,
			&m.Message,
			&m.Status,
			&m.SentAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan SMS history row", err)
		}
		history = append(history, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating SMS history rows", err)
	}

	return mapping.ToDomainSmsHistorySlice(history), totalCount, nil
}

func scanTemplate(row pgx.Row) (*models.SmsTemplate, error) {
	var m models.SmsTemplate
	err := row.Scan(
		&m.TemplateID,
		&m.Name,
		&m.Body,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
