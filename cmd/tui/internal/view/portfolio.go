package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmcardoso/pennyledger/internal/account"
	"github.com/jmcardoso/pennyledger/internal/ledger"
)

// PortfolioModel shows the committed investments, oldest first.
type PortfolioModel struct {
	CommonModel

	table table.Model
	empty bool
}

func NewPortfolioModel(acct *account.Account) PortfolioModel {
	columns := []table.Column{
		{Title: "Recorded", Width: 12},
		{Title: "Type", Width: 16},
		{Title: "Principal", Width: 14},
		{Title: "Duration", Width: 10},
		{Title: "Monthly", Width: 14},
	}

	invs := acct.Investments()

	rows := make([]table.Row, len(invs))
	for i, inv := range invs {
		monthly := ""
		if inv.Variant == ledger.VariantRecurringPlan {
			monthly = FormatMoney(inv.MonthlyContribution)
		}

		rows[i] = table.Row{
			FormatDate(inv.RecordedAt),
			VariantLabel(inv.Variant),
			FormatMoney(inv.Principal),
			fmt.Sprintf("%d yrs", inv.DurationYears),
			monthly,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	return PortfolioModel{
		table: t,
		empty: len(invs) == 0,
	}
}

func (m PortfolioModel) Title() string     { return "Investment Portfolio" }
func (m PortfolioModel) ShortHelp() string { return "Esc: back | ↑/↓: scroll" }

func (m PortfolioModel) Init() tea.Cmd {
	return nil
}

func (m PortfolioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m PortfolioModel) View() string {
	if m.empty {
		return lipgloss.NewStyle().Padding(2).Render("No investments made yet.")
	}

	return lipgloss.NewStyle().Padding(1).Render(
		m.Title() + "\n\n" + m.table.View(),
	)
}
