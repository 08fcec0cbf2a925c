package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcardoso/pennyledger/internal/ledger"
)

func TestLedger_RecordTransaction_PreservesOrder(t *testing.T) {
	l := ledger.New()

	first := ledger.NewTransaction(ledger.KindIncome, decimal.NewFromInt(100), "salary")
	second := ledger.NewTransaction(ledger.KindExpenditure, decimal.NewFromInt(40), "groceries")
	third := ledger.NewTransaction(ledger.KindExpenditure, decimal.NewFromInt(40), "groceries")

	l.RecordTransaction(first)
	l.RecordTransaction(second)
	l.RecordTransaction(third)

	txs := l.Transactions()
	require.Len(t, txs, 3)
	assert.Equal(t, first.ID, txs[0].ID)
	assert.Equal(t, second.ID, txs[1].ID)
	assert.Equal(t, third.ID, txs[2].ID)

	// Identical parameters are allowed; the records stay distinct events.
	assert.NotEqual(t, txs[1].ID, txs[2].ID)
	assert.True(t, txs[1].Amount.Equal(txs[2].Amount))
}

func TestLedger_RecordInvestment_PreservesOrder(t *testing.T) {
	l := ledger.New()

	fd := ledger.NewInvestment(ledger.VariantFixedDeposit, decimal.NewFromInt(1000), 5, decimal.Zero)
	rp := ledger.NewInvestment(ledger.VariantRecurringPlan, decimal.NewFromInt(500), 2, decimal.NewFromInt(50))

	l.RecordInvestment(fd)
	l.RecordInvestment(rp)

	invs := l.Investments()
	require.Len(t, invs, 2)
	assert.Equal(t, fd.ID, invs[0].ID)
	assert.Equal(t, rp.ID, invs[1].ID)
}

func TestLedger_Reads_AreCopies(t *testing.T) {
	l := ledger.New()
	l.RecordTransaction(ledger.NewTransaction(ledger.KindIncome, decimal.NewFromInt(100), "salary"))

	view := l.Transactions()
	view[0].Description = "tampered"
	view[0].Amount = decimal.NewFromInt(-1)

	again := l.Transactions()
	require.Len(t, again, 1)
	assert.Equal(t, "salary", again[0].Description)
	assert.True(t, again[0].Amount.Equal(decimal.NewFromInt(100)))

	// Appending to a returned slice must not leak into the ledger either.
	_ = append(view, ledger.NewTransaction(ledger.KindIncome, decimal.NewFromInt(1), "ghost"))
	assert.Len(t, l.Transactions(), 1)
}

func TestLedger_Reads_AreIdempotent(t *testing.T) {
	l := ledger.New()
	l.RecordTransaction(ledger.NewTransaction(ledger.KindExpenditure, decimal.NewFromInt(25), "coffee"))
	l.RecordInvestment(ledger.NewInvestment(ledger.VariantFixedDeposit, decimal.NewFromInt(1000), 1, decimal.Zero))

	assert.Equal(t, l.Transactions(), l.Transactions())
	assert.Equal(t, l.Investments(), l.Investments())
}

func TestLedger_Empty(t *testing.T) {
	l := ledger.New()
	assert.Empty(t, l.Transactions())
	assert.Empty(t, l.Investments())
}
