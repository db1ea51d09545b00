package domain

import "github.com/google/uuid"

// UserRole scopes what a back-office user may do.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// User is a back-office operator account.
type User struct {
	UserID       uuid.UUID `json:"userID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	IsActive     bool      `json:"isActive"`
	AuditFields
}
