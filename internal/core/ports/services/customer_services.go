package services

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/dto"
	"github.com/google/uuid"
)

// CustomerSvcFacade exposes customer operations.
type CustomerSvcFacade interface {
	// CreateCustomer registers a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// GetCustomerByID retrieves a customer.
	GetCustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)

	// ListCustomers retrieves a paginated customer list with optional name search.
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.CustomersListResponse, error)
}
