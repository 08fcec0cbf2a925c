package valuation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jmcardoso/pennyledger/internal/ledger"
	"github.com/jmcardoso/pennyledger/internal/valuation"
)

func TestMaturityValue_FixedDeposit(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		years     int
		want      float64
	}{
		{name: "FiveYears", principal: 10000, years: 5, want: 14091.18},   // 10000 × 1.071^5
		{name: "OneYear", principal: 1000, years: 1, want: 1071.00},       // exactly one compounding
		{name: "ZeroYears", principal: 10000, years: 0, want: 10000.00},   // matures immediately
		{name: "ZeroPrincipal", principal: 0, years: 3, want: 0.00},       // nothing to grow
		{name: "LongTerm", principal: 2500, years: 20, want: 9856.65}, // 2500 × 1.071^20
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := ledger.NewInvestment(ledger.VariantFixedDeposit, decimal.NewFromInt(tt.principal), tt.years, decimal.Zero)

			got, _ := valuation.MaturityValue(inv).Float64()
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestMaturityValue_RecurringPlan(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		years     int
		monthly   int64
		want      float64
	}{
		// Pure annuity: 1000 × ((1.008^12 − 1) / 0.008).
		{name: "ContributionsOnly", principal: 0, years: 1, monthly: 1000, want: 12542.34},
		// Pure lump sum: 1000 × 1.008^12.
		{name: "LumpSumOnly", principal: 1000, years: 1, monthly: 0, want: 1100.34},
		// Both terms: 5000 × 1.008^24 + 500 × ((1.008^24 − 1) / 0.008).
		{name: "LumpSumPlusContributions", principal: 5000, years: 2, monthly: 500, want: 19225.30},
		// Zero duration collapses to the principal; the annuity term is zero.
		{name: "ZeroYears", principal: 5000, years: 0, monthly: 500, want: 5000.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := ledger.NewInvestment(
				ledger.VariantRecurringPlan,
				decimal.NewFromInt(tt.principal),
				tt.years,
				decimal.NewFromInt(tt.monthly),
			)

			got, _ := valuation.MaturityValue(inv).Float64()
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestMaturityValue_IsPure(t *testing.T) {
	inv := ledger.NewInvestment(ledger.VariantRecurringPlan, decimal.NewFromInt(5000), 2, decimal.NewFromInt(500))

	first := valuation.MaturityValue(inv)
	second := valuation.MaturityValue(inv)

	assert.True(t, first.Equal(second))
	// The record itself stays untouched.
	assert.True(t, inv.Principal.Equal(decimal.NewFromInt(5000)))
}

func TestMaturityValue_UnknownVariantPanics(t *testing.T) {
	inv := ledger.Investment{Variant: ledger.Variant("lottery")}

	assert.Panics(t, func() {
		valuation.MaturityValue(inv)
	})
}
