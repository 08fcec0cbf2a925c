package view

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmcardoso/pennyledger/internal/account"
)

// HistoryModel shows the transaction history, oldest first.
type HistoryModel struct {
	CommonModel

	table table.Model
	empty bool
}

func NewHistoryModel(acct *account.Account) HistoryModel {
	columns := []table.Column{
		{Title: "Recorded", Width: 12},
		{Title: "Type", Width: 13},
		{Title: "Amount", Width: 14},
		{Title: "Description", Width: 40},
	}

	txs := acct.Transactions()

	rows := make([]table.Row, len(txs))
	for i, tx := range txs {
		rows[i] = table.Row{
			FormatDate(tx.RecordedAt),
			KindLabel(tx.Kind),
			FormatMoney(tx.Amount),
			tx.Description,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	return HistoryModel{
		table: t,
		empty: len(txs) == 0,
	}
}

func (m HistoryModel) Title() string     { return "Transaction History" }
func (m HistoryModel) ShortHelp() string { return "Esc: back | ↑/↓: scroll" }

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m HistoryModel) View() string {
	if m.empty {
		return lipgloss.NewStyle().Padding(2).Render("No transactions recorded yet.")
	}

	return lipgloss.NewStyle().Padding(1).Render(
		m.Title() + "\n\n" + m.table.View(),
	)
}

// tableStyles is the shared look for tabular views.
func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return s
}
