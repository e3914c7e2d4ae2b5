package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themecore/internal/tui/components"
)

// Report renders data for a non-interactive terminal.
func Report(data Data) string {
	m := Model{data: data}
	sections := []string{titleStyle.Render("themecore • " + m.title())}

	var summary components.SummaryData
	summary.Calls = len(data.Calls)
	if data.Result != nil {
		list := components.NewComponentList(data.Result.Components)
		entries := list.Entries()
		if len(entries) > 0 {
			sections = append(sections, sectionStyle.Render("Components"), renderComponents(entries))
		}

		subs := data.Result.Subscriptions()
		if data.Report != nil && len(subs) > 0 {
			coverage := components.NewCoverage(len(subs)).View(Fired(subs, data.Calls))
			sections = append(sections, sectionStyle.Render("Hooks"), coverage)
		}

		summary.Components = len(entries)
		summary.Subscriptions = len(subs)
		summary.Skipped = data.Result.Skipped
		summary.Duration = data.Result.Duration
	}

	if data.Report != nil {
		for _, err := range data.Report.Errors {
			summary.Errors = append(summary.Errors, err.Error())
		}
		if filters := renderFilters(data.Report.Filters); filters != "" {
			sections = append(sections, sectionStyle.Render("Filters"), filters)
		}
		if strings.TrimSpace(data.Report.Rendered) != "" {
			sections = append(sections, sectionStyle.Render("Output"), data.Report.Rendered)
		}
	}

	if view := components.NewSummary(summary).View(); view != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(view))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderComponents(entries []components.ComponentEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := fmt.Sprintf(" %s %s", nameStyle.Render("✓"), e.Name)
		if e.Aliased() {
			line += aliasStyle.Render(" (as " + e.ID + ")")
		}
		line += fmt.Sprintf(" line %d, %d subscriptions", e.Line, e.Subscriptions)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderFilters(filters map[string]any) string {
	tags := make([]string, 0, len(filters))
	for tag := range filters {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	lines := make([]string, 0, len(tags))
	for _, tag := range tags {
		lines = append(lines, fmt.Sprintf(" %s = %v", tag, filters[tag]))
	}
	return strings.Join(lines, "\n")
}

// Run starts the interactive trace browser and blocks until the user quits.
func Run(ctx context.Context, data Data, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(NewModel(data), opts...).Run(); err != nil {
		return fmt.Errorf("run trace browser: %w", err)
	}
	return nil
}

// Errors renders callback errors, one per line.
func Errors(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, errorStyle.Render("✗ ")+err.Error())
	}
	return strings.Join(lines, "\n")
}
