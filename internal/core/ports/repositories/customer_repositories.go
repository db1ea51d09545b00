package repositories

import (
	"context"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/astrofinance/afs_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

// ListCustomersFilter holds the filters for customer listings.
type ListCustomersFilter struct {
	SearchTerm *string
	Page       pagination.Params
}

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)

	// ListCustomers retrieves one page of customers ordered by name, plus the
	// total match count. SearchTerm matches a case-insensitive substring of
	// first or last name.
	ListCustomers(ctx context.Context, filter ListCustomersFilter) ([]domain.Customer, int64, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
