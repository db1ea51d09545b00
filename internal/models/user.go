package models

import "github.com/google/uuid"

// User is a row of the users table.
type User struct {
	UserID       uuid.UUID `db:"user_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	AuditFields
}
