package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmcardoso/pennyledger/internal/account"
	"github.com/jmcardoso/pennyledger/internal/ledger"
	"github.com/jmcardoso/pennyledger/internal/valuation"
)

type investState int

const (
	investStateVariant investState = iota
	investStateDetails
	investStateDone
)

// InvestModel collects the parameters of a new investment in two steps:
// variant first, then the numbers for that variant.
type InvestModel struct {
	CommonModel
	account *account.Account

	state  investState
	form   *huh.Form
	status string

	formVariant   ledger.Variant
	formPrincipal string
	formDuration  string
	formMonthly   string
}

func NewInvestModel(acct *account.Account) InvestModel {
	m := InvestModel{
		account:     acct,
		formVariant: ledger.VariantRecurringPlan,
	}
	m.form = m.variantForm()

	return m
}

func (m InvestModel) Title() string { return "Make Investment" }

func (m InvestModel) ShortHelp() string {
	if m.state == investStateDone {
		return "Esc/Enter: back to menu"
	}

	return "Esc: cancel | Enter/Tab: navigate form"
}

func (m InvestModel) variantForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ledger.Variant]().
				Key("variant").
				Title("Investment type").
				Options(
					huh.NewOption("Recurring Plan (monthly contributions, 9.6% p.a.)", ledger.VariantRecurringPlan),
					huh.NewOption("Fixed Deposit (lump sum, 7.1% p.a.)", ledger.VariantFixedDeposit),
				).
				Value(&m.formVariant),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m InvestModel) detailsForm(variant ledger.Variant) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("principal").
			Title("Principal amount").
			Placeholder("0.00").
			Value(&m.formPrincipal).
			Validate(func(s string) error {
				d, err := parseAmount(s)
				if err != nil {
					return err
				}
				if !d.IsPositive() {
					return fmt.Errorf("principal must be positive")
				}
				return nil
			}),

		huh.NewInput().
			Key("duration").
			Title("Duration in years").
			Placeholder("5").
			Value(&m.formDuration).
			Validate(func(s string) error {
				years, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil {
					return fmt.Errorf("enter a whole number of years")
				}
				if years <= 0 {
					return fmt.Errorf("duration must be at least one year")
				}
				return nil
			}),
	}

	if variant == ledger.VariantRecurringPlan {
		fields = append(fields,
			huh.NewInput().
				Key("monthly").
				Title("Monthly contribution").
				Placeholder("0.00").
				Value(&m.formMonthly).
				Validate(func(s string) error {
					d, err := parseAmount(s)
					if err != nil {
						return err
					}
					if d.IsNegative() {
						return fmt.Errorf("monthly contribution must not be negative")
					}
					return nil
				}),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithWidth(50).WithShowHelp(false)
}

func (m InvestModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m InvestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == investStateDone {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, Back
		}

		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case investStateVariant:
		variant := m.form.Get("variant").(ledger.Variant)
		m.formVariant = variant
		m.form = m.detailsForm(variant)
		m.state = investStateDetails

		return m, m.form.Init()

	case investStateDetails:
		return m.submit()
	}

	return m, cmd
}

func (m InvestModel) submit() (tea.Model, tea.Cmd) {
	params := account.InvestmentParams{
		Variant:       m.formVariant,
		DurationYears: mustAtoi(m.form.GetString("duration")),
	}
	params.Principal, _ = parseAmount(m.form.GetString("principal"))

	if m.formVariant == ledger.VariantRecurringPlan {
		params.MonthlyContribution, _ = parseAmount(m.form.GetString("monthly"))
	}

	inv, err := m.account.MakeInvestment(params)
	if err != nil {
		m.status = fmt.Sprintf("Declined: %v", err)
	} else {
		m.status = fmt.Sprintf("%s opened: %s invested, matures to %s.",
			VariantLabel(inv.Variant),
			FormatMoney(inv.Principal),
			FormatMoney(valuation.MaturityValue(inv)),
		)
	}

	m.state = investStateDone

	return m, nil
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func (m InvestModel) View() string {
	if m.state == investStateDone {
		body := m.status + "\n\n" +
			fmt.Sprintf("Current Balance: %s", FormatMoney(m.account.Balance())) + "\n\n" +
			lipgloss.NewStyle().Faint(true).Render("Press any key to return.")

		return lipgloss.NewStyle().Padding(1).Render(body)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		m.Title() + "\n\n" + m.form.View(),
	)
}
