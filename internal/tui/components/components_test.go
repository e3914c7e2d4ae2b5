package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/app/theme"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

func TestComponentListKeepsOrder(t *testing.T) {
	t.Parallel()

	list := NewComponentList([]theme.Initialized{
		{ID: "HeroSection", Name: "hero-section", Line: 4, Subscriptions: []ports.Subscription{{Tag: "wp_head"}, {Tag: "save_post"}}},
		{ID: "constants", Name: "constants", Line: 1},
	})

	entries := list.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "hero-section", entries[0].Name)
	require.Equal(t, 2, entries[0].Subscriptions)
	require.True(t, entries[0].Aliased())
	require.False(t, entries[1].Aliased())

	entries[0].Name = "changed"
	require.Equal(t, "hero-section", list.Entries()[0].Name)
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     SummaryData
		contains []string
		empty    bool
	}{
		{
			name:  "empty run renders nothing",
			data:  SummaryData{},
			empty: true,
		},
		{
			name:     "counts",
			data:     SummaryData{Components: 3, Subscriptions: 7, Calls: 42, Duration: 1500 * time.Microsecond},
			contains: []string{"3 initialized, 7 subscriptions", "Host calls: 42", "Setup took 1.5ms"},
		},
		{
			name:     "skipped identifiers",
			data:     SummaryData{Skipped: []string{"Unknown", "Other"}},
			contains: []string{"Skipped (not registered): Unknown, Other"},
		},
		{
			name:     "callback errors",
			data:     SummaryData{Components: 1, Errors: []string{"hook error [wp] hooks::x: boom"}},
			contains: []string{"Callback errors:", "✗ hook error [wp] hooks::x: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := NewSummary(tt.data).View()
			if tt.empty {
				require.Empty(t, view)
				return
			}
			for _, want := range tt.contains {
				require.True(t, strings.Contains(view, want), "missing %q in %q", want, view)
			}
		})
	}
}

func TestCoverageRatio(t *testing.T) {
	t.Parallel()

	require.Zero(t, NewCoverage(0).Ratio(3))
	require.InDelta(t, 0.5, NewCoverage(4).Ratio(2), 1e-9)
	require.InDelta(t, 1.0, NewCoverage(4).Ratio(9), 1e-9)
	require.Contains(t, NewCoverage(4).View(2), "2/4 fired")
}
