package services

import (
	portsrepo "github.com/astrofinance/afs_backend/internal/core/ports/repositories"
	portssvc "github.com/astrofinance/afs_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, clock portssvc.Clock) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo, clock)
	container.Account = NewChartOfAccountService(repos.AccountRepo, clock)
	container.Loan = NewLoanService(repos.LoanRepo, repos.CustomerRepo, clock)
	container.User = NewUserService(repos.UserRepo)
	container.Sms = NewSmsService(repos.SmsRepo, clock)

	// Transaction service goes last; it notifies through the SMS service
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.JournalEntryRepo,
		repos.AccountRepo,
		repos.CustomerRepo,
		repos.LoanRepo,
		repos.AuditRepo,
		container.Sms,
		clock,
	)

	return container
}
