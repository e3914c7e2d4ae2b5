// Package tui renders the outcome of a theme setup run: a static report for
// plain terminals and an interactive trace browser.
package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themecore/internal/app/theme"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
	"github.com/alexisbeaulieu97/themecore/internal/trace"
)

// AllSurfaces is the tab that shows every recorded call.
const AllSurfaces = "all"

// Data is everything a run produced.
type Data struct {
	Title  string
	Result *theme.Result
	// Report is nil when no request lifecycle was fired.
	Report *memory.Report
	Calls  []trace.Call
}

// Model is the Bubbletea state of the trace browser.
type Model struct {
	data     Data
	surfaces []string
	tab      int
	table    table.Model
	width    int
	height   int
	quitting bool
}

// NewModel constructs the browser for data.
func NewModel(data Data) Model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	m := Model{
		data:     data,
		surfaces: surfaces(data.Calls),
		table:    t,
		width:    80,
		height:   24,
	}
	m.table.SetRows(m.rows())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Surface returns the active tab.
func (m Model) Surface() string {
	return m.surfaces[m.tab]
}

// Surfaces lists the tabs in display order.
func (m Model) Surfaces() []string {
	return append([]string(nil), m.surfaces...)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Visible returns the calls shown under the active tab.
func (m Model) Visible() []trace.Call {
	surface := m.Surface()
	if surface == AllSurfaces {
		return m.data.Calls
	}
	var out []trace.Call
	for _, call := range m.data.Calls {
		if call.Surface == surface {
			out = append(out, call)
		}
	}
	return out
}

func (m Model) rows() []table.Row {
	visible := m.Visible()
	rows := make([]table.Row, 0, len(visible))
	for _, call := range visible {
		rows = append(rows, callRow(call))
	}
	return rows
}

func (m *Model) selectTab(i int) {
	n := len(m.surfaces)
	m.tab = ((i % n) + n) % n
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func surfaces(calls []trace.Call) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, call := range calls {
		if _, ok := seen[call.Surface]; ok {
			continue
		}
		seen[call.Surface] = struct{}{}
		names = append(names, call.Surface)
	}
	sort.Strings(names)
	return append([]string{AllSurfaces}, names...)
}

// Fired counts the subscriptions whose tag was fired at least once.
func Fired(subs []ports.Subscription, calls []trace.Call) int {
	fired := map[any]struct{}{}
	for _, call := range calls {
		if call.Op == "do_action" || call.Op == "apply_filters" {
			fired[call.Arg(0)] = struct{}{}
		}
	}
	n := 0
	for _, sub := range subs {
		if _, ok := fired[sub.Tag]; ok {
			n++
		}
	}
	return n
}
