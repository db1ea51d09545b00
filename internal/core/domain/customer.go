package domain

import "github.com/google/uuid"

// Customer is a microfinance client who owns loans and transactions.
type Customer struct {
	CustomerID  uuid.UUID `json:"customerID"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"isActive"`
	AuditFields
}

// FullName renders the display name used on transaction listings and SMS.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
