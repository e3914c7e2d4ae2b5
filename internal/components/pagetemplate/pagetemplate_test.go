package pagetemplate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/alexisbeaulieu97/themecore/internal/components/componenttest"
	"github.com/alexisbeaulieu97/themecore/internal/components/pagetemplate"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
)

func TestRegisterAndUnregisterFilters(t *testing.T) {
	t.Parallel()

	doc := `
register:
  templates/landing.php: Landing Page
unregister:
  - page_archive.php
`
	req := memory.Request{Templates: map[string]string{
		pagetemplate.Archive: "Archive",
		pagetemplate.Blog:    "Blog",
	}}
	env, subs := componenttest.Setup(t, pagetemplate.New, doc, req)
	require.Equal(t, []string{"theme_page_templates", "theme_page_templates"}, componenttest.Tags(subs))

	report := componenttest.Run(t, env)
	require.Equal(t, map[string]string{
		pagetemplate.Blog:       "Blog",
		"templates/landing.php": "Landing Page",
	}, report.Filters["theme_page_templates"])
}

func TestOnlyPresentKeysSubscribe(t *testing.T) {
	t.Parallel()

	_, subs := componenttest.Setup(t, pagetemplate.New, "unregister: [page_blog.php]\n", memory.Request{})
	require.Len(t, subs, 1)
	require.Equal(t, "page-template::remove_templates", subs[0].CallbackID)
}

func TestAddThenRemoveRestoresTemplates(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		path := rapid.StringMatching(`/[a-z]{1,8}\.php`).Draw(t, "path")
		label := rapid.String().Draw(t, "label")
		base := rapid.MapOf(
			rapid.StringMatching(`[a-z]{1,8}\.php`),
			rapid.String(),
		).Draw(t, "base")

		added := pagetemplate.Add(base, config.Ordered[string]{{Key: path, Value: label}})
		if added[path] != label {
			t.Fatalf("registered template %q missing", path)
		}
		restored := pagetemplate.Remove(added, []string{path})
		if len(restored) != len(base) {
			t.Fatalf("got %d templates, want %d", len(restored), len(base))
		}
		for k, v := range base {
			if restored[k] != v {
				t.Fatalf("template %q changed: %q != %q", k, restored[k], v)
			}
		}
	})
}

func TestRoundTripThroughHost(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := map[string]string{pagetemplate.Blog: "Blog"}
	env, _ := componenttest.Setup(t, pagetemplate.New, `
register:
  /a.php: A
`, memory.Request{})
	added := env.Hooks.ApplyFilters(ctx, "theme_page_templates", base)

	env2, _ := componenttest.Setup(t, pagetemplate.New, `
unregister:
  - /a.php
`, memory.Request{})
	restored := env2.Hooks.ApplyFilters(ctx, "theme_page_templates", added)

	require.Equal(t, base, restored)
	require.Equal(t, map[string]string{pagetemplate.Blog: "Blog"}, base)
}
