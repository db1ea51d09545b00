package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/astrofinance/afs_backend/internal/apperrors"
	"github.com/astrofinance/afs_backend/internal/core/domain"
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	"github.com/astrofinance/afs_backend/internal/models"
	"github.com/astrofinance/afs_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loan data.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLoanRepository implements portsrepo.LoanRepositoryFacade
var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

const loanSelectColumns = `
	l.loan_id, l.customer_id, l.principal, l.interest_rate, l.term_months,
	l.status, l.disbursement_date,
	l.created_at, l.created_by, l.last_updated_at, l.last_updated_by
`

// FindLoanByID retrieves a loan with its owning customer populated.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID uuid.UUID) (*domain.Loan, error) {
	query := `
		SELECT ` + loanSelectColumns + `,
		       c.customer_id, c.first_name, c.last_name, c.phone_number, c.address, c.is_active,
		       c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM loans l
		JOIN customers c ON l.customer_id = c.customer_id
		WHERE l.loan_id = $1;
	`
	var ml models.Loan
	var mc models.Customer
	err := r.Pool.QueryRow(ctx, query, loanID).Scan(
		&ml.LoanID,
		&ml.CustomerID,
		&ml.Principal,
		&ml.InterestRate,
		&ml.TermMonths,
		&ml.Status,
		&ml.DisbursementDate,
		&ml.CreatedAt,
		&ml.CreatedBy,
		&ml.LastUpdatedAt,
		&ml.LastUpdatedBy,
		&mc.CustomerID,
		&mc.FirstName,
		&mc.LastName,
		&mc.PhoneNumber,
		&mc.Address,
		&mc.IsActive,
		&mc.CreatedAt,
		&mc.CreatedBy,
		&mc.LastUpdatedAt,
		&mc.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find loan by ID "+loanID.String(), err)
	}

	loan := mapping.ToDomainLoan(ml)
	customer := mapping.ToDomainCustomer(mc)
	loan.Customer = &customer
	return &loan, nil
}

// ListLoans retrieves one page of loans ordered by creation time descending,
// plus the total match count.
func (r *PgxLoanRepository) ListLoans(ctx context.Context, filter portsrepo.ListLoansFilter) ([]domain.Loan, int64, error) {
	conditions := ""
	args := []interface{}{}
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		conditions = " WHERE l.customer_id = $1"
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		clause := "l.status = $" + strconv.Itoa(len(args))
		if conditions == "" {
			conditions = " WHERE " + clause
		} else {
			conditions += " AND " + clause
		}
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM loans l" + conditions + ";"
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count loans", err)
	}

	limitPos := len(args) + 1
	listQuery := "SELECT " + loanSelectColumns + " FROM loans l" + conditions +
		" ORDER BY l.created_at DESC" +
		" LIMIT $" + strconv.Itoa(limitPos) + " OFFSET $" + strconv.Itoa(limitPos+1) + ";"
	args = append(args, filter.Page.PageSize, filter.Page.Offset())

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query loans", err)
	}
	defer rows.Close()

	loans := []domain.Loan{}
	for rows.Next() {
		var m models.Loan
		err := rows.Scan(
			&m.LoanID,
			&m.CustomerID,
			&m.Principal,
			&m.InterestRate,
			&m.TermMonths,
			&m.Status,
			&m.DisbursementDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan loan row", err)
		}
		loans = append(loans, mapping.ToDomainLoan(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating loan rows", err)
	}

	return loans, totalCount, nil
}

// FindSchedulesByLoanID retrieves a loan's payment schedule ordered by due date.
func (r *PgxLoanRepository) FindSchedulesByLoanID(ctx context.Context, loanID uuid.UUID) ([]domain.PaymentSchedule, error) {
	query := `
		SELECT schedule_id, loan_id, due_date, amount, is_paid,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM payment_schedules
		WHERE loan_id = $1
		ORDER BY due_date;
	`
	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment schedules for loan "+loanID.String(), err)
	}
	defer rows.Close()

	schedules := []domain.PaymentSchedule{}
	for rows.Next() {
		var m models.PaymentSchedule
		err := rows.Scan(
			&m.ScheduleID,
			&m.LoanID,
			&m.DueDate,
			&m.Amount,
			&m.IsPaid,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment schedule row", err)
		}
		schedules = append(schedules, mapping.ToDomainPaymentSchedule(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment schedule rows", err)
	}
	return schedules, nil
}

// SaveLoan persists a loan and its payment schedule in a single database transaction.
func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan, schedule []domain.PaymentSchedule) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelLoan(loan)
	loanQuery := `
		INSERT INTO loans (
			loan_id, customer_id, principal, interest_rate, term_months, status,
			disbursement_date, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, loanQuery,
		m.LoanID,
		m.CustomerID,
		m.Principal,
		m.InterestRate,
		m.TermMonths,
		m.Status,
		m.DisbursementDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert loan "+m.LoanID.String(), err)
	}

	batch := &pgx.Batch{}
	scheduleQuery := `
		INSERT INTO payment_schedules (
			schedule_id, loan_id, due_date, amount, is_paid,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, s := range schedule {
		ms := mapping.ToModelPaymentSchedule(s)
		batch.Queue(scheduleQuery,
			ms.ScheduleID,
			ms.LoanID,
			ms.DueDate,
			ms.Amount,
			ms.IsPaid,
			ms.CreatedAt,
			ms.CreatedBy,
			ms.LastUpdatedAt,
			ms.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute schedule batch for loan "+m.LoanID.String(), err)
	}

	return r.Commit(ctx, tx)
}

// UpdateLoanStatus transitions a loan's status, stamping audit fields.
func (r *PgxLoanRepository) UpdateLoanStatus(ctx context.Context, loanID uuid.UUID, status domain.LoanStatus, disbursementDate *time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE loans
		SET status = $2,
		    disbursement_date = COALESCE($3, disbursement_date),
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE loan_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, loanID, string(status), disbursementDate, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for loan "+loanID.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
