package services

import (
	"time"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Account     ChartOfAccountSvcFacade
	Customer    CustomerSvcFacade
	Loan        LoanSvcFacade
	User        UserSvcFacade
	Sms         SmsSvcFacade
}

// Clock abstracts the source of the current time so services can be tested
// with a fixed instant. The production implementation reads the system clock
// in UTC.
type Clock interface {
	Now() time.Time
}
