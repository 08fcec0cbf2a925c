// Package ledger holds the append-only record store and the record types it
// owns. Records are immutable once appended: there are no update or delete
// operations, and reads hand out copies rather than views into storage.
package ledger

import "slices"

// Ledger is an in-memory, insertion-ordered store of transactions and
// investments. Duplicate records are permitted; two identical expenditures
// are two distinct events.
type Ledger struct {
	transactions []Transaction
	investments  []Investment
}

func New() *Ledger {
	return &Ledger{}
}

// RecordTransaction appends a transaction. Insertion order is preserved.
func (l *Ledger) RecordTransaction(t Transaction) {
	l.transactions = append(l.transactions, t)
}

// RecordInvestment appends an investment. Insertion order is preserved.
func (l *Ledger) RecordInvestment(i Investment) {
	l.investments = append(l.investments, i)
}

// Transactions returns the recorded transactions in insertion order. The
// slice is a copy; mutating it does not touch the ledger.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// Investments returns the recorded investments in insertion order. The slice
// is a copy; mutating it does not touch the ledger.
func (l *Ledger) Investments() []Investment {
	return slices.Clone(l.investments)
}
