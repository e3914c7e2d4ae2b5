package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themecore/internal/trace"
)

// Lines taken by everything around the table.
const chromeHeight = 8

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("themecore • " + m.title()),
		m.renderTabs(),
		m.table.View(),
		footerStyle.Render(fmt.Sprintf("%d calls • tab/←→ switch surface • ↑↓ scroll • q quit", len(m.Visible()))),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.surfaces))
	for i, name := range m.surfaces {
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(name))
			continue
		}
		tabs = append(tabs, tabStyle.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) title() string {
	if strings.TrimSpace(m.data.Title) != "" {
		return m.data.Title
	}
	if m.data.Result != nil && m.data.Result.ConfigPath != "" {
		return m.data.Result.ConfigPath
	}
	return "setup"
}

func columns(width int) []table.Column {
	args := width - 6 - 12 - 28 - 8
	if args < 20 {
		args = 20
	}
	return []table.Column{
		{Title: "#", Width: 6},
		{Title: "Surface", Width: 12},
		{Title: "Op", Width: 28},
		{Title: "Args", Width: args},
	}
}

func callRow(call trace.Call) table.Row {
	args := make([]string, 0, len(call.Args))
	for _, arg := range call.Args {
		args = append(args, fmt.Sprintf("%v", arg))
	}
	return table.Row{strconv.Itoa(call.Seq), call.Surface, call.Op, strings.Join(args, ", ")}
}
