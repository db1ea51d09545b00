// Package accounting holds the double-entry posting rules shared by services
// and repositories so the balance logic lives in exactly one place.
package accounting

import (
	"fmt"

	"github.com/astrofinance/afs_backend/internal/core/domain"
)

// PostingRule names the account codes a transaction type posts against.
type PostingRule struct {
	DebitAccountCode  string
	CreditAccountCode string
}

// postingRules maps every supported transaction type to its debit/credit pair.
// Disbursement moves cash out into the loan book; repayment reverses it.
// Deposits and withdrawals move against the customer-deposit liability, and
// fees/penalties recognize income against cash.
var postingRules = map[domain.TransactionType]PostingRule{
	domain.Disbursement: {DebitAccountCode: domain.AccountCodeLoanReceivable, CreditAccountCode: domain.AccountCodeCash},
	domain.Repayment:    {DebitAccountCode: domain.AccountCodeCash, CreditAccountCode: domain.AccountCodeLoanReceivable},
	domain.Deposit:      {DebitAccountCode: domain.AccountCodeCash, CreditAccountCode: domain.AccountCodeCustomerDeposits},
	domain.Withdrawal:   {DebitAccountCode: domain.AccountCodeCustomerDeposits, CreditAccountCode: domain.AccountCodeCash},
	domain.Fee:          {DebitAccountCode: domain.AccountCodeCash, CreditAccountCode: domain.AccountCodeFeeIncome},
	domain.Penalty:      {DebitAccountCode: domain.AccountCodeCash, CreditAccountCode: domain.AccountCodePenaltyIncome},
}

// RuleFor returns the posting rule for a transaction type.
func RuleFor(txnType domain.TransactionType) (PostingRule, error) {
	rule, ok := postingRules[txnType]
	if !ok {
		return PostingRule{}, fmt.Errorf("no posting rule for transaction type %q", txnType)
	}
	return rule, nil
}

// ValidateEntryBalance enforces the double-entry invariant on an entry's
// details: at least two lines, one nonzero side per line, and debit and credit
// totals exactly equal. Callers treat a failure here as a programming defect,
// not user input error.
func ValidateEntryBalance(details []domain.JournalEntryDetail) error {
	if len(details) < 2 {
		return fmt.Errorf("journal entry must have at least two detail lines, got %d", len(details))
	}

	debits := domain.Money{}
	credits := domain.Money{}
	for _, d := range details {
		debitSet := !d.Debit.IsZero()
		creditSet := !d.Credit.IsZero()
		if debitSet == creditSet {
			return fmt.Errorf("journal entry detail %s must have exactly one of debit or credit set", d.DetailID)
		}
		debits = debits.Add(d.Debit)
		credits = credits.Add(d.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("journal entry does not balance: debits %s, credits %s", debits, credits)
	}
	return nil
}
