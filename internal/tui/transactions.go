package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"envelope/internal/ledger"
)

type transactionsModel struct {
	engine *ledger.Engine
	txns   []ledger.Transaction
	cursor int
	width  int
	height int
}

func newTransactions(engine *ledger.Engine) transactionsModel {
	return transactionsModel{engine: engine}
}

func (m *transactionsModel) refresh() {
	m.txns = m.engine.Transactions("")
	if m.cursor >= len(m.txns) {
		m.cursor = len(m.txns) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m transactionsModel) update(msg tea.Msg) (transactionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.txns)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *transactionsModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Transactions"))
	b.WriteString("\n")

	if len(m.txns) == 0 {
		b.WriteString(dimStyle.Render("No transactions yet. Press 't' to add one."))
		return b.String()
	}

	header := fmt.Sprintf("  %-20s %-15s %-12s %10s  %s", "DATE", "CATEGORY", "TYPE", "AMOUNT", "DESCRIPTION")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	maxRows := m.height - 4
	if maxRows < 1 {
		maxRows = 10
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}

	for i := start; i < len(m.txns) && i < start+maxRows; i++ {
		t := m.txns[i]
		desc := t.Description
		if len(desc) > 30 {
			desc = desc[:28] + ".."
		}
		amount := fmt.Sprintf("%10.2f", t.Amount)
		if t.Amount >= 0 {
			amount = inflowStyle.Render(amount)
		} else {
			amount = outflowStyle.Render(amount)
		}
		line := fmt.Sprintf("  %-20s %-15s %-12s %s  %s",
			t.Date.Format("2006-01-02 15:04:05"), t.Category, t.Type, amount, desc)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(">") + line[1:])
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n  %d transactions", len(m.txns)))
	return b.String()
}
