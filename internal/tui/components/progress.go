package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Coverage renders how many subscriptions saw their event fire.
type Coverage struct {
	bar   progress.Model
	total int
}

// NewCoverage creates a coverage bar over total subscriptions.
func NewCoverage(total int) Coverage {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return Coverage{bar: bar, total: total}
}

// Ratio is the fired share of subscriptions, clamped to [0, 1].
func (c Coverage) Ratio(fired int) float64 {
	if c.total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1.0, float64(fired)/float64(c.total)))
}

// View renders the bar for fired subscriptions.
func (c Coverage) View(fired int) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d fired", fired, c.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", c.bar.ViewAs(c.Ratio(fired)))
}
