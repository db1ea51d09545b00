package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo  TransactionRepositoryFacade
	JournalEntryRepo JournalEntryRepositoryFacade
	AccountRepo      ChartOfAccountRepositoryFacade
	CustomerRepo     CustomerRepositoryFacade
	LoanRepo         LoanRepositoryFacade
	UserRepo         UserRepositoryFacade
	SmsRepo          SmsRepositoryFacade
	AuditRepo        AuditLogRepositoryFacade
}
