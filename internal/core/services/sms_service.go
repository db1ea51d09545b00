package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/dto"
	"github.com/astrofinance/afs_backend/internal/utils/pagination"
)

// smsService renders notification templates and records delivery history.
// Templates are looked up by transaction type name, so operators control
// which transaction types notify at all.
type smsService struct {
	BaseService
	smsRepo portsrepo.SmsRepositoryFacade
	clock   portssvc.Clock
}

// NewSmsService creates a new SMS service.
func NewSmsService(smsRepo portsrepo.SmsRepositoryFacade, clock portssvc.Clock) portssvc.SmsSvcFacade {
	return &smsService{
		smsRepo: smsRepo,
		clock:   clock,
	}
}

var _ portssvc.SmsSvcFacade = (*smsService)(nil)

// CreateTemplate registers a notification template. Names are unique.
func (s *smsService) CreateTemplate(ctx context.Context, req dto.CreateSmsTemplateRequest, creatorUserID string) (*domain.SmsTemplate, error) {
	now := s.clock.Now()
	template := domain.SmsTemplate{
		TemplateID: uuid.New(),
		Name:       strings.ToUpper(strings.TrimSpace(req.Name)),
		Body:       req.Body,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.smsRepo.SaveTemplate(ctx, template); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "SMS template created", "template_name", template.Name)
	return &template, nil
}

// ListTemplates returns all templates ordered by name.
func (s *smsService) ListTemplates(ctx context.Context) ([]domain.SmsTemplate, error) {
	return s.smsRepo.ListTemplates(ctx)
}

// ListHistory retrieves one page of notification history, newest first.
func (s *smsService) ListHistory(ctx context.Context, params dto.ListSmsHistoryParams) (*dto.SmsHistoryListResponse, error) {
	page := pagination.Normalize(params.PageNumber, params.PageSize)

	history, totalCount, err := s.smsRepo.ListHistory(ctx, portsrepo.ListSmsHistoryFilter{
		CustomerID: params.CustomerID,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}

	return &dto.SmsHistoryListResponse{
		History:    dto.ToSmsHistoryResponses(history),
		TotalCount: totalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalPages: pagination.TotalPages(totalCount, page.PageSize),
	}, nil
}

// NotifyTransaction renders the template named after the transaction type and
// records the notification. No template, or an inactive one, means the type
// simply does not notify.
func (s *smsService) NotifyTransaction(ctx context.Context, txn domain.Transaction, customer domain.Customer) error {
	template, err := s.smsRepo.FindTemplateByName(ctx, string(txn.Type))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if !template.IsActive {
		return nil
	}

	message := renderTemplate(template.Body, map[string]string{
		"customerName": customer.FullName(),
		"amount":       txn.Amount.String(),
		"type":         string(txn.Type),
		"date":         txn.TransactionDate.Format("2006-01-02"),
	})

	now := s.clock.Now()
	history := domain.SmsHistory{
		HistoryID:   uuid.New(),
		CustomerID:  customer.CustomerID,
		PhoneNumber: customer.PhoneNumber,
		Message:     message,
		Status:      domain.SmsSent,
		SentAt:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     txn.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: txn.CreatedBy,
		},
	}

	if err := s.smsRepo.SaveHistory(ctx, history); err != nil {
		return err
	}

	s.LogInfo(ctx, "Transaction notification recorded", "customer_id", customer.CustomerID, "template_name", template.Name)
	return nil
}

// renderTemplate substitutes {placeholder} tokens in a template body.
// Unknown placeholders are left as-is.
func renderTemplate(body string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(body)
}
