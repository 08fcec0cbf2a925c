package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

// BackMsg tells the root model to return to the main menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
