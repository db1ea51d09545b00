package dto

import (
	"time"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/google/uuid"
)

// CreateSmsTemplateRequest defines the data needed to register a template.
// Placeholders in the body use {name} syntax, e.g. {customerName}, {amount}.
type CreateSmsTemplateRequest struct {
	Name string `json:"name" binding:"required"`
	Body string `json:"body" binding:"required"`
}

// SmsTemplateResponse defines the data returned for a template.
type SmsTemplateResponse struct {
	TemplateID uuid.UUID `json:"templateID"`
	Name       string    `json:"name"`
	Body       string    `json:"body"`
	IsActive   bool      `json:"isActive"`
}

// SmsHistoryResponse defines the data returned for one notification record.
type SmsHistoryResponse struct {
	HistoryID   uuid.UUID `json:"historyID"`
	CustomerID  uuid.UUID `json:"customerID"`
	PhoneNumber string    `json:"phoneNumber"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	SentAt      time.Time `json:"sentAt"`
}

// ListSmsHistoryParams holds filters for the notification history list.
type ListSmsHistoryParams struct {
	CustomerID *uuid.UUID
	PageNumber int
	PageSize   int
}

// SmsHistoryListResponse is the paginated envelope for notification history.
type SmsHistoryListResponse struct {
	History    []SmsHistoryResponse `json:"history"`
	TotalCount int64                `json:"totalCount"`
	PageNumber int                  `json:"pageNumber"`
	PageSize   int                  `json:"pageSize"`
	TotalPages int                  `json:"totalPages"`
}

// ToSmsTemplateResponse converts a domain.SmsTemplate to its DTO.
func ToSmsTemplateResponse(t *domain.SmsTemplate) SmsTemplateResponse {
	return SmsTemplateResponse{
		TemplateID: t.TemplateID,
		Name:       t.Name,
		Body:       t.Body,
		IsActive:   t.IsActive,
	}
}

// ToSmsHistoryResponses converts history rows to DTOs.
func ToSmsHistoryResponses(hs []domain.SmsHistory) []SmsHistoryResponse {
	responses := make([]SmsHistoryResponse, len(hs))
	for i, h := range hs {
		responses[i] = SmsHistoryResponse{
			HistoryID:   h.HistoryID,
			CustomerID:  h.CustomerID,
			PhoneNumber: h.PhoneNumber,
			Message:     h.Message,
			Status:      string(h.Status),
			SentAt:      h.SentAt,
		}
	}
	return responses
}
