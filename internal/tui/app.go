// Package tui is the terminal front-end. It drives the same ledger engine
// as the HTTP API, calling it directly from the event handlers; there is no
// second copy of the bookkeeping rules here.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"envelope/internal/ledger"
)

type mode int

const (
	modeCategories mode = iota
	modeTransactions
	modeReport
	modeEntry
)

var tabModes = []mode{modeCategories, modeTransactions, modeReport}

func tabLabel(m mode) string {
	switch m {
	case modeCategories:
		return "Categories"
	case modeTransactions:
		return "Transactions"
	case modeReport:
		return "Report"
	default:
		return ""
	}
}

type App struct {
	engine        *ledger.Engine
	mode          mode
	tabIndex      int
	width, height int
	statusMsg     string

	categories   categoriesModel
	transactions transactionsModel
	report       reportModel
	entry        entryModel
}

func NewApp(engine *ledger.Engine) *App {
	a := &App{
		engine:       engine,
		mode:         modeCategories,
		categories:   newCategories(engine),
		transactions: newTransactions(engine),
		report:       newReport(engine),
	}
	a.refreshAll()
	return a
}

func (a *App) refreshAll() {
	a.categories.refresh()
	a.transactions.refresh()
	a.report.refresh()
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = msg.Width
		a.height = msg.Height
		a.categories.width = msg.Width
		a.categories.height = msg.Height - 6
		a.transactions.width = msg.Width
		a.transactions.height = msg.Height - 6
		a.report.width = msg.Width
		a.report.height = msg.Height - 6
		a.entry.width = msg.Width
		return a, nil
	}

	// The entry form is modal: it sees every message until it finishes.
	if a.mode == modeEntry {
		var cmd tea.Cmd
		a.entry, cmd = a.entry.update(msg)
		if a.entry.done {
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = a.entry.statusMsg
			a.refreshAll()
			return a, nil
		}
		if a.entry.cancelled {
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = "Transaction cancelled"
			return a, nil
		}
		return a, cmd
	}

	// Inline category input and delete confirmation also take all keys.
	if a.mode == modeCategories && (a.categories.creating || a.categories.confirmDelete) {
		var cmd tea.Cmd
		var status string
		a.categories, cmd, status = a.categories.update(msg)
		if status != "" {
			a.statusMsg = status
			a.refreshAll()
		}
		return a, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, keys.Tab):
			a.tabIndex = (a.tabIndex + 1) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = ""
			a.refreshAll()
			return a, nil

		case key.Matches(msg, keys.ShiftTab):
			a.tabIndex = (a.tabIndex - 1 + len(tabModes)) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			a.statusMsg = ""
			a.refreshAll()
			return a, nil

		case key.Matches(msg, keys.NewTxn):
			a.mode = modeEntry
			a.entry = newEntry(a.engine)
			a.statusMsg = ""
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.mode {
	case modeCategories:
		var status string
		a.categories, cmd, status = a.categories.update(msg)
		if status != "" {
			a.statusMsg = status
			a.refreshAll()
		}
	case modeTransactions:
		a.transactions, cmd = a.transactions.update(msg)
	case modeReport:
		a.report, cmd = a.report.update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	tabs := ""
	for i, m := range tabModes {
		label := tabLabel(m)
		if i == a.tabIndex && a.mode != modeEntry {
			tabs += activeTabStyle.Render(label)
		} else {
			tabs += inactiveTabStyle.Render(label)
		}
		if i < len(tabModes)-1 {
			tabs += " "
		}
	}

	var content string
	switch a.mode {
	case modeCategories:
		content = a.categories.view()
	case modeTransactions:
		content = a.transactions.view()
	case modeReport:
		content = a.report.view()
	case modeEntry:
		content = a.entry.view()
	}

	status := ""
	if a.statusMsg != "" {
		status = successStyle.Render(a.statusMsg)
	}

	helpText := dimStyle.Render("tab:switch  n:new category  d:delete  t:new transaction  r:range  v:detail  q:quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		"",
		content,
		"",
		status,
		helpText,
	)
}
