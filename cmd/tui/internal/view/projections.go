package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmcardoso/pennyledger/internal/account"
)

// ProjectionsModel shows the maturity value of every investment.
type ProjectionsModel struct {
	CommonModel
	account  *account.Account
	currency string
}

func NewProjectionsModel(acct *account.Account, currency string) ProjectionsModel {
	return ProjectionsModel{
		account:  acct,
		currency: currency,
	}
}

func (m ProjectionsModel) Title() string     { return "Maturity Projections" }
func (m ProjectionsModel) ShortHelp() string { return "Esc: back" }

func (m ProjectionsModel) Init() tea.Cmd {
	return nil
}

func (m ProjectionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, Back
	}

	return m, nil
}

func (m ProjectionsModel) View() string {
	projections := m.account.ProjectedMaturities()
	if len(projections) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No investments made yet.")
	}

	itemStyle := lipgloss.NewStyle().Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	var b strings.Builder

	b.WriteString(m.Title() + "\n\n")

	for i, p := range projections {
		b.WriteString(itemStyle.Render(fmt.Sprintf(
			"Portfolio Item %d (%s)", i+1, VariantLabel(p.Investment.Variant),
		)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(
			"  %s over %d yrs matures to %s",
			FormatMoney(p.Investment.Principal),
			p.Investment.DurationYears,
			valueStyle.Render(FormatMoney(p.MaturityValue)+" "+m.currency),
		))
		b.WriteString("\n\n")
	}

	return lipgloss.NewStyle().Padding(1).Render(strings.TrimRight(b.String(), "\n"))
}
