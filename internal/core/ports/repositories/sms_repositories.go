package repositories

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

// ListSmsHistoryFilter holds the filters for notification history listings.
type ListSmsHistoryFilter struct {
	CustomerID *uuid.UUID
	Page       pagination.Params
}

// SmsTemplateReader defines read operations for SMS templates
type SmsTemplateReader interface {
	// FindTemplateByName retrieves a template by its unique name.
	FindTemplateByName(ctx context.Context, name string) (*domain.SmsTemplate, error)

	// ListTemplates retrieves all templates ordered by name.
	ListTemplates(ctx context.Context) ([]domain.SmsTemplate, error)
}

// SmsWriter defines write operations for SMS data
type SmsWriter interface {
	// SaveTemplate persists a new template. Returns ErrDuplicate when the
	// name is taken.
	SaveTemplate(ctx context.Context, template domain.SmsTemplate) error

	// SaveHistory records one notification attempt.
	SaveHistory(ctx context.Context, history domain.SmsHistory) error
}

// SmsHistoryReader defines read operations for notification history
type SmsHistoryReader interface {
	// ListHistory retrieves one page of history rows newest first, plus the
	// total match count.
	ListHistory(ctx context.Context, filter ListSmsHistoryFilter) ([]domain.SmsHistory, int64, error)
}

// SmsRepositoryFacade combines SMS repository interfaces.
type SmsRepositoryFacade interface {
	SmsTemplateReader
	SmsHistoryReader
	SmsWriter
}
