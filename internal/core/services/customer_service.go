package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
	"github.com/astrofinance/afs_backend/internal/dto"
	"github.com/astrofinance/afs_backend/internal/utils/pagination"
)

// customerService manages microfinance customers.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	clock        portssvc.Clock
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, clock portssvc.Clock) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo: customerRepo,
		clock:        clock,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer registers a new customer.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	now := s.clock.Now()
	customer := domain.Customer{
		CustomerID:  uuid.New(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", "customer_id", customer.CustomerID)
	return &customer, nil
}

// GetCustomerByID retrieves a customer.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

// ListCustomers retrieves one page of customers with optional name search.
func (s *customerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) (*dto.CustomersListResponse, error) {
	page := pagination.Normalize(params.PageNumber, params.PageSize)

	customers, totalCount, err := s.customerRepo.ListCustomers(ctx, portsrepo.ListCustomersFilter{
		SearchTerm: params.SearchTerm,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CustomersListResponse{
		Customers:  dto.ToCustomerResponses(customers),
		TotalCount: totalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalPages: pagination.TotalPages(totalCount, page.PageSize),
	}, nil
}
