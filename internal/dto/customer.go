package dto

import (
	"time"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/google/uuid"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID  uuid.UUID `json:"customerID"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListCustomersParams holds filters for the customer list.
type ListCustomersParams struct {
	SearchTerm *string
	PageNumber int
	PageSize   int
}

// CustomersListResponse is the paginated envelope for customer listings.
type CustomersListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	TotalCount int64              `json:"totalCount"`
	PageNumber int                `json:"pageNumber"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

// ToCustomerResponse converts a domain.Customer to its DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.CustomerID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of customers to DTOs.
func ToCustomerResponses(cs []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(cs))
	for i := range cs {
		responses[i] = ToCustomerResponse(&cs[i])
	}
	return responses
}
