package genesissettings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/components/componenttest"
	"github.com/alexisbeaulieu97/themecore/internal/components/genesissettings"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
)

func TestDefaultsOverlayHostDefaults(t *testing.T) {
	t.Parallel()

	doc := `
defaults:
  site_layout: full-width-content
  blog_cat_num: 6
`
	env, subs := componenttest.Setup(t, genesissettings.New, doc, memory.Request{})
	require.Equal(t, []string{"genesis_theme_settings_defaults"}, componenttest.Tags(subs))

	report := componenttest.Run(t, env)
	defaults, ok := report.Filters["genesis_theme_settings_defaults"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "full-width-content", defaults["site_layout"])
	require.Equal(t, 6, defaults["blog_cat_num"])
	require.Equal(t, "numeric", defaults["posts_nav"], "unconfigured keys keep the host default")
}

func TestForceAddsOneFilterPerKey(t *testing.T) {
	t.Parallel()

	doc := `
force:
  posts_nav: prev-next
  semantic_headings: 0
`
	env, subs := componenttest.Setup(t, genesissettings.New, doc, memory.Request{})
	require.Equal(t, []string{
		genesissettings.ForcePrefix + "posts_nav",
		genesissettings.ForcePrefix + "semantic_headings",
	}, componenttest.Tags(subs))
	require.Equal(t, "genesis-settings::force_posts_nav", subs[0].CallbackID)

	report := componenttest.Run(t, env)
	require.Equal(t, "prev-next", report.GenesisOptions["posts_nav"])
	require.Equal(t, 0, report.GenesisOptions["semantic_headings"])

	forced := env.Hooks.ApplyFilters(context.Background(), genesissettings.ForcePrefix+"posts_nav", "numeric")
	require.Equal(t, "prev-next", forced)
}

func TestEmptySliceSubscribesNothing(t *testing.T) {
	t.Parallel()

	_, subs := componenttest.Setup(t, genesissettings.New, "{}", memory.Request{})
	require.Empty(t, subs)
}
