package components

import (
	"fmt"
	"strings"
	"time"
)

// SummaryData aggregates counts for rendering summaries.
type SummaryData struct {
	Components    int
	Subscriptions int
	Calls         int
	Skipped       []string
	Errors        []string
	Duration      time.Duration
}

// Summary renders a textual setup summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	if s.data.Components == 0 && len(s.data.Skipped) == 0 && len(s.data.Errors) == 0 {
		return ""
	}

	lines := []string{
		fmt.Sprintf("Components: %d initialized, %d subscriptions", s.data.Components, s.data.Subscriptions),
	}
	if s.data.Calls > 0 {
		lines = append(lines, fmt.Sprintf("Host calls: %d", s.data.Calls))
	}
	if s.data.Duration > 0 {
		lines = append(lines, fmt.Sprintf("Setup took %s", s.data.Duration.Truncate(time.Microsecond)))
	}
	if len(s.data.Skipped) > 0 {
		lines = append(lines, fmt.Sprintf("Skipped (not registered): %s", strings.Join(s.data.Skipped, ", ")))
	}
	if len(s.data.Errors) > 0 {
		lines = append(lines, "Callback errors:")
		for _, msg := range s.data.Errors {
			lines = append(lines, "  ✗ "+msg)
		}
	}
	return strings.Join(lines, "\n")
}
