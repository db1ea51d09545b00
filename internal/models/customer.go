package models

import "github.com/google/uuid"

// Customer is a row of the customers table.
type Customer struct {
	CustomerID  uuid.UUID `db:"customer_id"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	PhoneNumber string    `db:"phone_number"`
	Address     string    `db:"address"`
	IsActive    bool      `db:"is_active"`
	AuditFields
}
