package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmcardoso/pennyledger/internal/account"
	"github.com/jmcardoso/pennyledger/internal/ledger"
	"github.com/jmcardoso/pennyledger/internal/matching"
)

type recordState int

const (
	recordStateForm recordState = iota
	recordStateDone
)

// RecordModel collects and records a single income or expenditure.
type RecordModel struct {
	CommonModel
	account *account.Account
	matcher *matching.Service
	kind    ledger.Kind

	state  recordState
	form   *huh.Form
	status string

	formAmount string
	formDesc   string
}

func NewRecordModel(acct *account.Account, matcher *matching.Service, kind ledger.Kind) RecordModel {
	m := RecordModel{
		account: acct,
		matcher: matcher,
		kind:    kind,
	}
	m.form = m.newForm()

	return m
}

func (m RecordModel) Title() string {
	if m.kind == ledger.KindIncome {
		return "Record Income"
	}

	return "Record Expenditure"
}

func (m RecordModel) ShortHelp() string {
	if m.state == recordStateDone {
		return "Esc/Enter: back to menu"
	}

	return "Esc: cancel | Enter/Tab: navigate form"
}

func (m RecordModel) newForm() *huh.Form {
	placeholder := "e.g. Salary"
	if m.kind == ledger.KindExpenditure {
		placeholder = "e.g. Groceries"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					d, err := parseAmount(s)
					if err != nil {
						return err
					}
					if d.IsNegative() {
						return fmt.Errorf("amount must not be negative")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Placeholder(placeholder).
				Suggestions(m.matcher.Suggestions()).
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m RecordModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m RecordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == recordStateDone {
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

	return m.submit()
}

func (m RecordModel) submit() (tea.Model, tea.Cmd) {
	amount, err := parseAmount(m.form.GetString("amount"))
	if err != nil {
		// The form already validated; a parse failure here is unreachable.
		m.status = fmt.Sprintf("Error: %v", err)
		m.state = recordStateDone

		return m, nil
	}

	description := strings.TrimSpace(m.form.GetString("description"))

	var opErr error
	if m.kind == ledger.KindIncome {
		_, opErr = m.account.RecordIncome(amount, description)
	} else {
		_, opErr = m.account.RecordExpenditure(amount, description)
	}

	if opErr != nil {
		m.status = fmt.Sprintf("Declined: %v", opErr)
	} else {
		m.matcher.Learn(description)
		m.status = fmt.Sprintf("%s of %s recorded.", KindLabel(m.kind), FormatMoney(amount))
	}

	m.state = recordStateDone

	return m, nil
}

func (m RecordModel) View() string {
	if m.state == recordStateDone {
		body := m.status + "\n\n" +
			fmt.Sprintf("Current Balance: %s", FormatMoney(m.account.Balance())) + "\n\n" +
			lipgloss.NewStyle().Faint(true).Render("Press any key to return.")

		return lipgloss.NewStyle().Padding(1).Render(body)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		m.Title() + "\n\n" + m.form.View(),
	)
}
