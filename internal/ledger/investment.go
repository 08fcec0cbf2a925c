package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Variant identifies the kind of investment product. The set is closed: the
// valuation engine switches over it exhaustively.
type Variant string

const (
	// VariantRecurringPlan is a lump sum plus fixed monthly contributions,
	// compounded monthly.
	VariantRecurringPlan Variant = "recurring_plan"
	// VariantFixedDeposit is a single lump sum compounded annually.
	VariantFixedDeposit Variant = "fixed_deposit"
)

// Investment is an immutable record of a committed investment. Its maturity
// value is never stored; it is recomputed on demand from these parameters.
type Investment struct {
	ID                  uuid.UUID
	Variant             Variant
	Principal           decimal.Decimal
	DurationYears       int
	MonthlyContribution decimal.Decimal // zero unless Variant is VariantRecurringPlan
	RecordedAt          time.Time
}

// NewInvestment stamps a fresh record with the given parameters.
func NewInvestment(variant Variant, principal decimal.Decimal, durationYears int, monthly decimal.Decimal) Investment {
	return Investment{
		ID:                  uuid.New(),
		Variant:             variant,
		Principal:           principal,
		DurationYears:       durationYears,
		MonthlyContribution: monthly,
		RecordedAt:          time.Now(),
	}
}
