package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"envelope/internal/ledger"
)

type categoriesModel struct {
	engine     *ledger.Engine
	categories []ledger.CategoryBalance
	cursor     int
	width      int
	height     int
	err        error

	creating      bool
	nameInput     textinput.Model
	confirmDelete bool
	deleteTarget  string
}

func newCategories(engine *ledger.Engine) categoriesModel {
	ti := textinput.New()
	ti.Placeholder = "Category name"
	ti.CharLimit = 40
	return categoriesModel{engine: engine, nameInput: ti}
}

func (m *categoriesModel) refresh() {
	m.categories = m.engine.Categories()
	if m.cursor >= len(m.categories) {
		m.cursor = len(m.categories) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *categoriesModel) selectedName() string {
	if m.cursor >= 0 && m.cursor < len(m.categories) {
		return m.categories[m.cursor].Name
	}
	return ""
}

func (m categoriesModel) update(msg tea.Msg) (categoriesModel, tea.Cmd, string) {
	status := ""

	if m.creating {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.Enter):
				name := m.nameInput.Value()
				m.creating = false
				m.nameInput.Blur()
				m.nameInput.SetValue("")
				cat, err := m.engine.CreateCategory(name)
				if err != nil {
					m.err = err
					return m, nil, ""
				}
				m.err = nil
				m.refresh()
				return m, nil, fmt.Sprintf("Category %q created", cat.Name)
			case key.Matches(msg, keys.Escape):
				m.creating = false
				m.nameInput.Blur()
				m.nameInput.SetValue("")
				return m, nil, ""
			}
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd, ""
	}

	if m.confirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				name := m.deleteTarget
				m.confirmDelete = false
				m.deleteTarget = ""
				if err := m.engine.DeleteCategory(name); err != nil {
					m.err = err
					return m, nil, ""
				}
				m.err = nil
				m.refresh()
				status = fmt.Sprintf("Category %q deleted", name)
			default:
				m.confirmDelete = false
				m.deleteTarget = ""
			}
		}
		return m, nil, status
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.categories)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.New):
			m.creating = true
			m.err = nil
			return m, m.nameInput.Focus(), ""
		case key.Matches(msg, keys.Delete):
			if name := m.selectedName(); name != "" {
				m.confirmDelete = true
				m.deleteTarget = name
				m.err = nil
			}
		}
	}
	return m, nil, ""
}

func (m *categoriesModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Categories"))
	b.WriteString("\n")

	if len(m.categories) == 0 && !m.creating {
		b.WriteString(dimStyle.Render("No categories yet. Press 'n' to create one."))
		b.WriteString("\n")
	} else {
		header := fmt.Sprintf("  %-30s %15s", "NAME", "BALANCE")
		b.WriteString(headerStyle.Render(header))
		b.WriteString("\n")

		for i, c := range m.categories {
			line := fmt.Sprintf("  %-30s %15.2f", c.Name, c.Balance)
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + line[2:]))
			} else {
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}

	switch {
	case m.creating:
		b.WriteString("\n  New category: " + m.nameInput.View())
	case m.confirmDelete:
		b.WriteString("\n" + errorStyle.Render(fmt.Sprintf(
			"  Delete category %q and all its transactions? (y/n)", m.deleteTarget)))
	default:
		b.WriteString(fmt.Sprintf("\n  %d categories", len(m.categories)))
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()))
	}
	return b.String()
}
