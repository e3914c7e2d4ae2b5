package breadcrumbs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/components/breadcrumbs"
	"github.com/alexisbeaulieu97/themecore/internal/components/componenttest"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
)

func TestMergeOverridesRecursively(t *testing.T) {
	t.Parallel()

	base := map[string]any{
		"sep":    " / ",
		"home":   "Home",
		"labels": map[string]any{"prefix": "You are here: ", "author": "Archives for "},
	}
	override := map[string]any{
		"sep":    " » ",
		"labels": map[string]any{"prefix": "Path: "},
		"extra":  []any{"a", "b"},
	}

	merged, err := breadcrumbs.Merge(base, override)
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"sep":    " » ",
		"home":   "Home",
		"labels": map[string]any{"prefix": "Path: ", "author": "Archives for "},
		"extra":  []any{"a", "b"},
	}, merged)

	require.Equal(t, "You are here: ", base["labels"].(map[string]any)["prefix"])
	require.Equal(t, " / ", base["sep"])
}

func TestMergeIntoNil(t *testing.T) {
	t.Parallel()

	merged, err := breadcrumbs.Merge(nil, map[string]any{"home": "Start"})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"home": "Start"}, merged)
}

func TestFilterAppliesConfiguration(t *testing.T) {
	t.Parallel()

	doc := `
home: Start
labels:
  prefix: "Path: "
  "404": "Missing: "
`
	env, subs := componenttest.Setup(t, breadcrumbs.New, doc, memory.Request{})
	require.Equal(t, []string{"genesis_breadcrumb_args"}, componenttest.Tags(subs))

	report := componenttest.Run(t, env)
	args, ok := report.Filters["genesis_breadcrumb_args"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Start", args["home"])
	require.Equal(t, " / ", args["sep"])

	labels := args["labels"].(map[string]any)
	require.Equal(t, "Path: ", labels["prefix"])
	require.Equal(t, "Missing: ", labels["404"])
	require.Equal(t, "Archives for ", labels["author"])
}

func TestFilterWithoutCurrentArguments(t *testing.T) {
	t.Parallel()

	env, _ := componenttest.Setup(t, breadcrumbs.New, "home: Start\n", memory.Request{})
	got := env.Hooks.ApplyFilters(t.Context(), "genesis_breadcrumb_args", nil)
	require.Equal(t, map[string]any{"home": "Start"}, got)
	require.Empty(t, env.Hooks.Errors())
}

func TestMergeListsByIndex(t *testing.T) {
	t.Parallel()

	base := map[string]any{
		"list":   []any{"a", "b", "c"},
		"nested": map[string]any{"items": []any{map[string]any{"x": 1, "y": 2}, "keep"}},
		"short":  []any{"a"},
	}
	override := map[string]any{
		"list":   []any{"z"},
		"nested": map[string]any{"items": []any{map[string]any{"y": 3}}},
		"short":  []any{"p", "q"},
	}

	merged, err := breadcrumbs.Merge(base, override)
	require.NoError(t, err)
	require.Equal(t, []any{"z", "b", "c"}, merged["list"])
	require.Equal(t, []any{map[string]any{"x": 1, "y": 3}, "keep"}, merged["nested"].(map[string]any)["items"])
	require.Equal(t, []any{"p", "q"}, merged["short"])
	require.Equal(t, []any{"a", "b", "c"}, base["list"])
}

func TestMergeAppliesFalseAndEmptyOverrides(t *testing.T) {
	t.Parallel()

	merged, err := breadcrumbs.Merge(
		map[string]any{"home": "Home", "heirarchial_attachments": true},
		map[string]any{"home": "", "heirarchial_attachments": false},
	)
	require.NoError(t, err)
	require.Equal(t, "", merged["home"])
	require.Equal(t, false, merged["heirarchial_attachments"])
}
