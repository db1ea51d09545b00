package models

import (
	"time"

	"github.com/google/uuid"
)

// SmsTemplate is a row of the sms_templates table.
type SmsTemplate struct {
	TemplateID uuid.UUID `db:"template_id"`
	Name       string    `db:"name"`
	Body       string    `db:"body"`
	IsActive   bool      `db:"is_active"`
	AuditFields
}

// SmsHistory is a row of the sms_history table.
type SmsHistory struct {
	HistoryID   uuid.UUID `db:"history_id"`
	CustomerID  uuid.UUID `db:"customer_id"`
	PhoneNumber string    `db:"phone_number"`
	Message     string    `db:"message"`
	Status      string    `db:"status"`
	SentAt      time.Time `db:"sent_at"`
	AuditFields
}
