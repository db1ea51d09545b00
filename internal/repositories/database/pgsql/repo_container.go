package pgsql

import (
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		JournalEntryRepo: newPgxJournalEntryRepository(dbPool),
		AccountRepo:      newPgxChartOfAccountRepository(dbPool),
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		LoanRepo:         newPgxLoanRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		SmsRepo:          newPgxSmsRepository(dbPool),
		AuditRepo:        newPgxAuditLogRepository(dbPool),
	}
}
