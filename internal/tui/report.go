package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"envelope/internal/ledger"
)

var reportRanges = []ledger.Range{
	ledger.RangeAll,
	ledger.RangeToday,
	ledger.RangeWeek,
	ledger.RangeMonth,
	ledger.RangeYear,
}

type reportModel struct {
	engine   *ledger.Engine
	rangeIdx int
	detailed bool
	content  string
	err      error
	width    int
	height   int
}

func newReport(engine *ledger.Engine) reportModel {
	return reportModel{engine: engine, detailed: true}
}

func (m *reportModel) refresh() {
	report, err := ledger.BuildReport(m.engine.Snapshot(), ledger.ReportOptions{
		Range:    reportRanges[m.rangeIdx],
		Detailed: m.detailed,
	})
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.content = report.Text()
}

func (m reportModel) update(msg tea.Msg) (reportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Range):
			m.rangeIdx = (m.rangeIdx + 1) % len(reportRanges)
			m.refresh()
		case key.Matches(msg, keys.Detail):
			m.detailed = !m.detailed
			m.refresh()
		}
	}
	return m, nil
}

func (m *reportModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Report"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("range: " + string(reportRanges[m.rangeIdx])))
	if m.detailed {
		b.WriteString(dimStyle.Render("  detail: on"))
	} else {
		b.WriteString(dimStyle.Render("  detail: off"))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		return b.String()
	}
	b.WriteString(m.content)
	return b.String()
}
