package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind represents the direction of a cash-flow transaction.
type Kind string

const (
	KindIncome      Kind = "income"
	KindExpenditure Kind = "expenditure"
)

// Transaction is an immutable cash-flow record. It is stored and returned by
// value, so holders can never reach back into the ledger through it.
type Transaction struct {
	ID          uuid.UUID
	Kind        Kind
	Amount      decimal.Decimal // always non-negative; Kind carries the direction
	Description string
	RecordedAt  time.Time
}

// NewTransaction stamps a fresh record. Amount validation belongs to the
// account layer; the ledger stores whatever was accepted there.
func NewTransaction(kind Kind, amount decimal.Decimal, description string) Transaction {
	return Transaction{
		ID:          uuid.New(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		RecordedAt:  time.Now(),
	}
}
