package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jmcardoso/pennyledger/cmd/tui/internal/view"
	"github.com/jmcardoso/pennyledger/internal/account"
	"github.com/jmcardoso/pennyledger/internal/config"
	"github.com/jmcardoso/pennyledger/internal/ledger"
	"github.com/jmcardoso/pennyledger/internal/matching"
	matchingStore "github.com/jmcardoso/pennyledger/internal/matching/store"
)

type model struct {
	account *account.Account
	matcher *matching.Service

	appName  string
	currency string

	currentView View

	incomeView      view.RecordModel
	expenditureView view.RecordModel
	investView      view.InvestModel
	historyView     view.HistoryModel
	portfolioView   view.PortfolioModel
	projectionsView view.ProjectionsModel
}

type View int

const (
	ViewMenu        View = 0
	ViewIncome      View = 1
	ViewExpenditure View = 2
	ViewInvest      View = 3
	ViewHistory     View = 4
	ViewPortfolio   View = 5
	ViewProjections View = 6
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	acct, err := account.New(cfg.Account.OpeningBalance, cfg.Account.MinimumBalance)
	if err != nil {
		slog.Error("failed to open account", "error", err)
		os.Exit(1)
	}

	matcher := matching.NewService(matchingStore.New())

	return model{
		account:     acct,
		matcher:     matcher,
		appName:     cfg.App.Name,
		currency:    cfg.App.Currency,
		currentView: ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewIncome
				m.incomeView = view.NewRecordModel(m.account, m.matcher, ledger.KindIncome)

				return m, m.incomeView.Init()
			case "2":
				m.currentView = ViewExpenditure
				m.expenditureView = view.NewRecordModel(m.account, m.matcher, ledger.KindExpenditure)

				return m, m.expenditureView.Init()
			case "3":
				m.currentView = ViewInvest
				m.investView = view.NewInvestModel(m.account)

				return m, m.investView.Init()
			case "4":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.account)

				return m, m.historyView.Init()
			case "5":
				m.currentView = ViewPortfolio
				m.portfolioView = view.NewPortfolioModel(m.account)

				return m, m.portfolioView.Init()
			case "6":
				m.currentView = ViewProjections
				m.projectionsView = view.NewProjectionsModel(m.account, m.currency)

				return m, m.projectionsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewIncome:
		var newModel tea.Model
		newModel, cmd = m.incomeView.Update(msg)
		m.incomeView = newModel.(view.RecordModel)
	case ViewExpenditure:
		var newModel tea.Model
		newModel, cmd = m.expenditureView.Update(msg)
		m.expenditureView = newModel.(view.RecordModel)
	case ViewInvest:
		var newModel tea.Model
		newModel, cmd = m.investView.Update(msg)
		m.investView = newModel.(view.InvestModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewPortfolio:
		var newModel tea.Model
		newModel, cmd = m.portfolioView.Update(msg)
		m.portfolioView = newModel.(view.PortfolioModel)
	case ViewProjections:
		var newModel tea.Model
		newModel, cmd = m.projectionsView.Update(msg)
		m.projectionsView = newModel.(view.ProjectionsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		balance := fmt.Sprintf("Current Balance: %s %s", view.FormatMoney(m.account.Balance()), m.currency)

		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n\n" +
				lipgloss.NewStyle().Bold(true).Render(balance) + "\n\n" +
				"1. Record Income\n" +
				"2. Record Expenditure\n" +
				"3. Make Investment\n" +
				"4. Transaction History\n" +
				"5. Investment Portfolio\n" +
				"6. Maturity Projections\n\n" +
				"q. Quit",
		)
	case ViewIncome:
		return m.incomeView.View()
	case ViewExpenditure:
		return m.expenditureView.View()
	case ViewInvest:
		return m.investView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewPortfolio:
		return m.portfolioView.View()
	case ViewProjections:
		return m.projectionsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
