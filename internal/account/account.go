// Package account owns the running balance and enforces the minimum-balance
// invariant on every operation that moves money. It is the only writer of the
// balance and of its ledger.
package account

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jmcardoso/pennyledger/internal/ledger"
	"github.com/jmcardoso/pennyledger/internal/valuation"
)

var (
	// ErrInsufficientFunds rejects any debit that would drop the balance
	// below the configured minimum. The account is left untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidParameter rejects operations called with out-of-domain
	// arguments before any balance check runs.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Account holds the balance and the ledger of everything that has happened to
// it. After every completed operation, balance >= minimum.
type Account struct {
	balance decimal.Decimal
	minimum decimal.Decimal
	ledger  *ledger.Ledger
}

// New opens an account with the given balances. The opening balance must not
// already sit below the minimum.
func New(opening, minimum decimal.Decimal) (*Account, error) {
	if opening.LessThan(minimum) {
		return nil, fmt.Errorf("%w: opening balance %s is below the minimum %s", ErrInvalidParameter, opening, minimum)
	}

	return &Account{
		balance: opening,
		minimum: minimum,
		ledger:  ledger.New(),
	}, nil
}

// RecordIncome credits the balance by amount and appends an income
// transaction. It only fails on a negative amount.
func (a *Account) RecordIncome(amount decimal.Decimal, description string) (ledger.Transaction, error) {
	if amount.IsNegative() {
		return ledger.Transaction{}, fmt.Errorf("%w: income amount must not be negative", ErrInvalidParameter)
	}

	tx := ledger.NewTransaction(ledger.KindIncome, amount, description)

	a.balance = a.balance.Add(amount)
	a.ledger.RecordTransaction(tx)

	return tx, nil
}

// RecordExpenditure debits the balance by amount and appends an expenditure
// transaction. The debit is rejected with ErrInsufficientFunds if it would
// leave the balance strictly below the minimum; on rejection neither the
// balance nor the ledger changes.
func (a *Account) RecordExpenditure(amount decimal.Decimal, description string) (ledger.Transaction, error) {
	if amount.IsNegative() {
		return ledger.Transaction{}, fmt.Errorf("%w: expenditure amount must not be negative", ErrInvalidParameter)
	}

	projected := a.balance.Sub(amount)
	if projected.LessThan(a.minimum) {
		return ledger.Transaction{}, fmt.Errorf("%w: balance cannot fall below %s", ErrInsufficientFunds, a.minimum)
	}

	tx := ledger.NewTransaction(ledger.KindExpenditure, amount, description)

	a.balance = projected
	a.ledger.RecordTransaction(tx)

	return tx, nil
}

// InvestmentParams carries everything needed to open an investment.
// MonthlyContribution only applies to recurring plans and is normalized to
// zero for fixed deposits.
type InvestmentParams struct {
	Variant             ledger.Variant
	Principal           decimal.Decimal
	DurationYears       int
	MonthlyContribution decimal.Decimal
}

// MakeInvestment debits the principal from the balance and appends an
// investment record. Parameters are validated before the balance check; the
// same strict minimum-balance rule applies as for expenditures. Either both
// the balance change and the record insertion happen, or nothing does.
func (a *Account) MakeInvestment(params InvestmentParams) (ledger.Investment, error) {
	if err := params.validate(); err != nil {
		return ledger.Investment{}, err
	}

	projected := a.balance.Sub(params.Principal)
	if projected.LessThan(a.minimum) {
		return ledger.Investment{}, fmt.Errorf("%w: balance cannot fall below %s", ErrInsufficientFunds, a.minimum)
	}

	monthly := params.MonthlyContribution
	if params.Variant == ledger.VariantFixedDeposit {
		monthly = decimal.Zero
	}

	inv := ledger.NewInvestment(params.Variant, params.Principal, params.DurationYears, monthly)

	a.balance = projected
	a.ledger.RecordInvestment(inv)

	return inv, nil
}

func (p InvestmentParams) validate() error {
	switch p.Variant {
	case ledger.VariantRecurringPlan, ledger.VariantFixedDeposit:
	default:
		return fmt.Errorf("%w: unknown investment variant %q", ErrInvalidParameter, p.Variant)
	}

	if !p.Principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidParameter)
	}

	if p.DurationYears <= 0 {
		return fmt.Errorf("%w: duration must be at least one year", ErrInvalidParameter)
	}

	if p.Variant == ledger.VariantRecurringPlan && p.MonthlyContribution.IsNegative() {
		return fmt.Errorf("%w: monthly contribution must not be negative", ErrInvalidParameter)
	}

	return nil
}

// Projection pairs an investment with its computed maturity value.
type Projection struct {
	Investment    ledger.Investment
	MaturityValue decimal.Decimal
}

// ProjectedMaturities values every stored investment, in insertion order.
func (a *Account) ProjectedMaturities() []Projection {
	invs := a.ledger.Investments()

	projections := make([]Projection, len(invs))
	for i, inv := range invs {
		projections[i] = Projection{
			Investment:    inv,
			MaturityValue: valuation.MaturityValue(inv),
		}
	}

	return projections
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Transactions returns the transaction history in insertion order.
func (a *Account) Transactions() []ledger.Transaction {
	return a.ledger.Transactions()
}

// Investments returns the investment portfolio in insertion order.
func (a *Account) Investments() []ledger.Investment {
	return a.ledger.Investments()
}
