package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jmcardoso/pennyledger/internal/ledger"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount with two decimals and grouped thousands,
// e.g. 14,091.18.
func FormatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprintf("%.2f", f)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// KindLabel returns the display name of a transaction kind.
func KindLabel(k ledger.Kind) string {
	switch k {
	case ledger.KindIncome:
		return "Income"
	case ledger.KindExpenditure:
		return "Expenditure"
	}

	return string(k)
}

// VariantLabel returns the display name of an investment variant.
func VariantLabel(v ledger.Variant) string {
	switch v {
	case ledger.VariantRecurringPlan:
		return "Recurring Plan"
	case ledger.VariantFixedDeposit:
		return "Fixed Deposit"
	}

	return string(v)
}

// parseAmount parses user input into a decimal amount.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("enter a number, e.g. 1500.00")
	}

	return d, nil
}
