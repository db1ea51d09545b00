package services

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/dto"
)

// SmsSvcFacade exposes SMS template and notification operations.
type SmsSvcFacade interface {
	// CreateTemplate registers a notification template.
	CreateTemplate(ctx context.Context, req dto.CreateSmsTemplateRequest, creatorUserID string) (*domain.SmsTemplate, error)

	// ListTemplates returns all templates.
	ListTemplates(ctx context.Context) ([]domain.SmsTemplate, error)

	// ListHistory retrieves paginated notification history.
	ListHistory(ctx context.Context, params dto.ListSmsHistoryParams) (*dto.SmsHistoryListResponse, error)

	// NotifyTransaction renders and records the notification for a recorded
	// transaction. Missing or inactive templates skip silently; any failure
	// is reported to the caller but must not abort the recording.
	NotifyTransaction(ctx context.Context, txn domain.Transaction, customer domain.Customer) error
}
