package domain

import (
	"time"

	"github.com/google/uuid"
)

// SmsStatus records the outcome of a notification attempt.
type SmsStatus string

const (
	SmsSent   SmsStatus = "SENT"
	SmsFailed SmsStatus = "FAILED"
)

// SmsTemplate is a named message body with {placeholder} substitution.
// Transaction notifications look templates up by transaction type name.
type SmsTemplate struct {
	TemplateID uuid.UUID `json:"templateID"`
	Name       string    `json:"name"`
	Body       string    `json:"body"`
	IsActive   bool      `json:"isActive"`
	AuditFields
}

// SmsHistory is one delivered (or failed) notification.
type SmsHistory struct {
	HistoryID   uuid.UUID `json:"historyID"`
	CustomerID  uuid.UUID `json:"customerID"`
	PhoneNumber string    `json:"phoneNumber"`
	Message     string    `json:"message"`
	Status      SmsStatus `json:"status"`
	SentAt      time.Time `json:"sentAt"`
	AuditFields
}
