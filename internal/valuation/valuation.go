// Package valuation computes maturity values for investment records. All
// functions are pure: the result depends only on the record's parameters and
// the fixed rate of its variant.
package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jmcardoso/pennyledger/internal/ledger"
)

// Annual rates are fixed per variant.
var (
	fixedDepositRate  = decimal.RequireFromString("0.071")
	recurringPlanRate = decimal.RequireFromString("0.096")
)

const monthsPerYear = 12

var one = decimal.NewFromInt(1)

// MaturityValue returns the projected value of inv at the end of its stated
// duration. The variant set is closed; an unknown variant is a programming
// error upstream, not a recoverable condition.
func MaturityValue(inv ledger.Investment) decimal.Decimal {
	switch inv.Variant {
	case ledger.VariantFixedDeposit:
		return fixedDeposit(inv.Principal, inv.DurationYears)
	case ledger.VariantRecurringPlan:
		return recurringPlan(inv.Principal, inv.DurationYears, inv.MonthlyContribution)
	default:
		panic(fmt.Sprintf("valuation: unknown investment variant %q", inv.Variant))
	}
}

// fixedDeposit compounds the principal annually: principal × (1 + rate)^years.
func fixedDeposit(principal decimal.Decimal, years int) decimal.Decimal {
	if years == 0 {
		return principal
	}

	growth := one.Add(fixedDepositRate).Pow(decimal.NewFromInt(int64(years)))

	return principal.Mul(growth)
}

// recurringPlan compounds monthly over n = years × 12 periods:
//
//	principal × (1+r)^n + monthly × ((1+r)^n − 1)/r
//
// where r is the monthly rate. The second term is the future value of an
// ordinary annuity of the monthly contributions. n == 0 short-circuits to the
// principal so the annuity term never turns into a division artifact.
func recurringPlan(principal decimal.Decimal, years int, monthly decimal.Decimal) decimal.Decimal {
	n := years * monthsPerYear
	if n == 0 {
		return principal
	}

	r := recurringPlanRate.Div(decimal.NewFromInt(monthsPerYear))
	growth := one.Add(r).Pow(decimal.NewFromInt(int64(n)))

	lump := principal.Mul(growth)
	annuity := monthly.Mul(growth.Sub(one).Div(r))

	return lump.Add(annuity)
}
