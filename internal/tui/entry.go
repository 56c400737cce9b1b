package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"envelope/internal/ledger"
)

const (
	kindDeposit = iota
	kindWithdraw
	kindTransfer
)

var kindLabels = []string{"Deposit", "Withdraw", "Transfer"}

const (
	fieldKind = iota
	fieldCategory
	fieldTarget
	fieldAmount
	fieldDesc
)

// entryModel is the modal form for recording a deposit, withdrawal or
// transfer. Engine calls happen directly in the key handler; every
// operation is fast, local and bounded, so there is nothing to run
// asynchronously.
type entryModel struct {
	engine     *ledger.Engine
	categories []string
	kind       int
	catIdx     int
	targetIdx  int
	amount     textinput.Model
	desc       textinput.Model
	focus      int
	width      int

	done      bool
	cancelled bool
	statusMsg string
	err       error
}

func newEntry(engine *ledger.Engine) entryModel {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 16
	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = 80

	var names []string
	for _, c := range engine.Categories() {
		names = append(names, c.Name)
	}

	return entryModel{
		engine:     engine,
		categories: names,
		amount:     amount,
		desc:       desc,
		focus:      fieldKind,
	}
}

// fields returns the focus order for the current kind. Transfers have no
// description field: their descriptions are generated from the two category
// names.
func (m *entryModel) fields() []int {
	if m.kind == kindTransfer {
		return []int{fieldKind, fieldCategory, fieldTarget, fieldAmount}
	}
	return []int{fieldKind, fieldCategory, fieldAmount, fieldDesc}
}

func (m *entryModel) moveFocus(dir int) tea.Cmd {
	fields := m.fields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(fields)) % len(fields)
	m.focus = fields[idx]

	m.amount.Blur()
	m.desc.Blur()
	switch m.focus {
	case fieldAmount:
		return m.amount.Focus()
	case fieldDesc:
		return m.desc.Focus()
	}
	return nil
}

func (m *entryModel) cycle(idx *int, dir int, n int) {
	if n == 0 {
		return
	}
	*idx = (*idx + dir + n) % n
}

func (m entryModel) update(msg tea.Msg) (entryModel, tea.Cmd) {
	// Navigation uses literal key names here: hjkl must stay typeable in
	// the text fields.
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.cancelled = true
			return m, nil

		case "tab", "down":
			return m, m.moveFocus(1)

		case "shift+tab", "up":
			return m, m.moveFocus(-1)

		case "left", "right":
			if m.focus != fieldAmount && m.focus != fieldDesc {
				dir := 1
				if msg.String() == "left" {
					dir = -1
				}
				switch m.focus {
				case fieldKind:
					m.cycle(&m.kind, dir, len(kindLabels))
				case fieldCategory:
					m.cycle(&m.catIdx, dir, len(m.categories))
				case fieldTarget:
					m.cycle(&m.targetIdx, dir, len(m.categories))
				}
				return m, nil
			}

		case "enter":
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldAmount:
		m.amount, cmd = m.amount.Update(msg)
	case fieldDesc:
		m.desc, cmd = m.desc.Update(msg)
	}
	return m, cmd
}

func (m *entryModel) submit() {
	if len(m.categories) == 0 {
		m.err = fmt.Errorf("create a category first")
		return
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(m.amount.Value()), 64)
	if err != nil {
		m.err = fmt.Errorf("invalid amount %q", m.amount.Value())
		return
	}

	category := m.categories[m.catIdx]
	switch m.kind {
	case kindDeposit:
		_, balance, err := m.engine.Deposit(category, amount, m.desc.Value())
		if err != nil {
			m.err = err
			return
		}
		m.statusMsg = fmt.Sprintf("Deposited %.2f into %q (balance %.2f)", amount, category, balance)
	case kindWithdraw:
		_, balance, err := m.engine.Withdraw(category, amount, m.desc.Value())
		if err != nil {
			m.err = err
			return
		}
		m.statusMsg = fmt.Sprintf("Withdrew %.2f from %q (balance %.2f)", amount, category, balance)
	case kindTransfer:
		target := m.categories[m.targetIdx]
		fromBal, toBal, err := m.engine.Transfer(category, target, amount)
		if err != nil {
			m.err = err
			return
		}
		m.statusMsg = fmt.Sprintf("Transferred %.2f: %q %.2f, %q %.2f",
			amount, category, fromBal, target, toBal)
	}
	m.done = true
}

func (m *entryModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New Transaction"))
	b.WriteString("\n")

	b.WriteString(m.selectorRow(fieldKind, "Type", kindLabels[m.kind]))
	if len(m.categories) > 0 {
		b.WriteString(m.selectorRow(fieldCategory, "Category", m.categories[m.catIdx]))
		if m.kind == kindTransfer {
			b.WriteString(m.selectorRow(fieldTarget, "To", m.categories[m.targetIdx]))
		}
	} else {
		b.WriteString(labelStyle.Render("Category") + dimStyle.Render("(none)") + "\n")
	}
	b.WriteString(m.inputRow(fieldAmount, "Amount", m.amount.View()))
	if m.kind != kindTransfer {
		b.WriteString(m.inputRow(fieldDesc, "Description", m.desc.View()))
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()))
	}
	b.WriteString("\n" + dimStyle.Render("tab:next field  left/right:change  enter:save  esc:cancel"))
	return b.String()
}

func (m *entryModel) selectorRow(field int, label, value string) string {
	style := labelStyle
	marker := "  "
	if m.focus == field {
		style = focusedLabelStyle
		marker = "< "
	}
	end := ""
	if m.focus == field {
		end = " >"
	}
	return style.Render(label) + marker + value + end + "\n"
}

func (m *entryModel) inputRow(field int, label, input string) string {
	style := labelStyle
	if m.focus == field {
		style = focusedLabelStyle
	}
	return style.Render(label) + input + "\n"
}
