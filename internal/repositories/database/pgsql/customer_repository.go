package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	"github.com/astrofinance/afs_backend/internal/models"
	"github.com/astrofinance/afs_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerSelectColumns = `
	customer_id, first_name, last_name, phone_number, address, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

// FindCustomerByID retrieves a customer by its unique identifier.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	query := `
		SELECT ` + customerSelectColumns + `
		FROM customers
		WHERE customer_id = $1;
	`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find customer by ID "+customerID.String(), err)
	}

	customer := mapping.ToDomainCustomer(*m)
	return &customer, nil
}

// ListCustomers retrieves one page of customers ordered by name, plus the
// total match count.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, filter portsrepo.ListCustomersFilter) ([]domain.Customer, int64, error) {
	whereClause := ""
	args := []interface{}{}
	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		whereClause = ` WHERE first_name || ' ' || last_name ILIKE $1`
		args = append(args, "%"+*filter.SearchTerm+"%")
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM customers" + whereClause + ";"
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count customers", err)
	}

	limitPos := len(args) + 1
	listQuery := "SELECT " + customerSelectColumns + " FROM customers" + whereClause +
		" ORDER BY first_name, last_name" +
		" LIMIT $" + strconv.Itoa(limitPos) + " OFFSET $" + strconv.Itoa(limitPos+1) + ";"
	args = append(args, filter.Page.PageSize, filter.Page.Offset())

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query customers", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan customer row", err)
		}
		customers = append(customers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating customer rows", err)
	}

	return mapping.ToDomainCustomerSlice(customers), totalCount, nil
}

// SaveCustomer persists a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (
			customer_id, first_name, last_name, phone_number, address, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.FirstName,
		m.LastName,
		m.PhoneNumber,
		m.Address,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert customer "+m.CustomerID.String(), err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.FirstName,
		&m.LastName,
		&m.PhoneNumber,
		&m.Address,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
