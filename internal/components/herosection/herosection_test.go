package herosection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/components/componenttest"
	"github.com/alexisbeaulieu97/themecore/internal/components/herosection"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

const enableDoc = `
enable:
  front-page: true
  page: true
  post: true
  latest-posts: true
  error-404: true
  shop: false
`

func aboutPage() []ports.Post {
	return []ports.Post{{ID: 12, Title: "About", Slug: "about", Type: "page", Excerpt: "Who we are"}}
}

func noop(context.Context, ...any) any { return nil }

func TestSingularPageRendersHero(t *testing.T) {
	t.Parallel()

	req := memory.Request{Conditions: []string{"is_singular:page"}, PostID: 12, Posts: aboutPage()}
	env, subs := componenttest.Setup(t, herosection.New, enableDoc, req)
	require.True(t, env.Host.CurrentThemeSupports(herosection.Feature))
	require.Equal(t, []string{
		"add_meta_boxes", "save_post", "wp_head",
		"genesis_meta", "genesis_meta", "genesis_meta", "genesis_meta", "genesis_meta", "genesis_meta",
	}, componenttest.Tags(subs))
	require.Equal(t, 100, subs[3].Priority)

	env.Hooks.AddAction("genesis_entry_header", ports.Callback{ID: "genesis_do_post_title", Fn: noop}, 10, 1)
	report := componenttest.Run(t, env)

	require.Equal(t, []string{"has-hero-section"}, report.Filters["body_class"])
	require.False(t, env.Hooks.HasFilter("genesis_entry_header", "genesis_do_post_title"))
	require.Equal(t,
		`<section class="hero-section" id="hero-section" role="banner"><div class="wrap">`+
			`<h1 class="entry-title">About</h1>`+
			`<p class="entry-subtitle" itemprop="description">Who we are</p>`+
			`</div></section>`,
		report.Rendered)
}

func TestFrontPageNeverRenders(t *testing.T) {
	t.Parallel()

	req := memory.Request{Conditions: []string{"is_front_page", "is_singular:page"}, PostID: 12, Posts: aboutPage()}
	env, _ := componenttest.Setup(t, herosection.New, "enable:\n  front-page: true\n", req)
	report := componenttest.Run(t, env)

	require.NotContains(t, report.Rendered, "hero-section")
	require.Empty(t, env.Hooks.Subscriptions("child_theme_hero_section"))
	require.Empty(t, env.Trace.Ops("remove_action"))
}

func TestDisabledByPostMeta(t *testing.T) {
	t.Parallel()

	req := memory.Request{
		Conditions: []string{"is_singular:page"},
		PostID:     12,
		Posts:      aboutPage(),
		PostMeta:   map[int]map[string]any{12: {herosection.MetaKey: "disable"}},
	}
	env, _ := componenttest.Setup(t, herosection.New, enableDoc, req)
	report := componenttest.Run(t, env)

	require.Equal(t, []string{}, report.Filters["body_class"])
	require.Empty(t, report.Rendered)
}

func TestDisabledType(t *testing.T) {
	t.Parallel()

	env, _ := componenttest.Setup(t, herosection.New, enableDoc, memory.Request{Conditions: []string{"is_shop"}})
	report := componenttest.Run(t, env)
	require.Empty(t, report.Rendered)
}

func TestLatestPostsHeading(t *testing.T) {
	t.Parallel()

	req := memory.Request{
		Conditions: []string{"is_home"},
		Options:    map[string]any{"show_on_front": "posts"},
	}
	env, _ := componenttest.Setup(t, herosection.New, enableDoc, req)
	report := componenttest.Run(t, env)

	require.Contains(t, report.Rendered,
		`<h1 class="entry-title">Latest Posts</h1><p class="entry-subtitle" itemprop="description">Showing the latest posts</p>`)
}

func TestNotFoundHeadingAndTitleRemoval(t *testing.T) {
	t.Parallel()

	req := memory.Request{
		Conditions: []string{"is_404"},
		Posts:      []ports.Post{{ID: 40, Title: "Error", Slug: "error", Type: "page", Excerpt: "Try a search"}},
	}
	env, _ := componenttest.Setup(t, herosection.New, enableDoc, req)
	report := componenttest.Run(t, env)

	require.Contains(t, report.Rendered,
		`<h1 class="entry-title">Not found, error 404</h1><p class="entry-subtitle" itemprop="description">Try a search</p>`)
	for _, part := range []string{"open", "content", "close"} {
		require.True(t, env.Hooks.HasFilter("genesis_markup_entry-title_"+part, "__return_false"))
	}
}

func TestTitleToggleRemovesHeroCallbacks(t *testing.T) {
	t.Parallel()

	req := memory.Request{
		Conditions: []string{"is_singular:page"},
		PostID:     12,
		Posts:      aboutPage(),
		Events:     []string{"be_title_toggle_remove"},
	}
	env, _ := componenttest.Setup(t, herosection.New, enableDoc, req)
	componenttest.Run(t, env)

	require.False(t, env.Hooks.HasFilter("child_theme_hero_section", "hero-section::title"))
	require.False(t, env.Hooks.HasFilter("child_theme_hero_section", "hero-section::excerpt"))
}

func TestMetaBoxRendersChoices(t *testing.T) {
	t.Parallel()

	req := memory.Request{
		Conditions: []string{"is_admin"},
		PostID:     12,
		Posts:      aboutPage(),
		PostMeta:   map[int]map[string]any{12: {herosection.MetaKey: "no_image"}},
		Nonces:     map[string]string{"hero_section_nonce_action": "abc123"},
	}
	env, _ := componenttest.Setup(t, herosection.New, enableDoc, req)
	report := componenttest.Run(t, env)

	boxes := env.Host.MetaBoxes()
	require.Len(t, boxes, 1)
	require.Equal(t, "side", boxes[0].Context)
	require.Equal(t, []string{"post", "page", "product", "portfolio"}, boxes[0].Screens)

	require.Contains(t, report.Rendered,
		`<label for="hero_section_no_image"><input type="radio" name="hero_section" id="hero_section_no_image" value="no_image" checked='checked'> No Image</label><br>`)
	require.Contains(t, report.Rendered,
		`<label for="hero_section_disable"><input type="radio" name="hero_section" id="hero_section_disable" value="disable"> Disable</label><br>`)
	require.Contains(t, report.Rendered,
		`<input type="hidden" id="hero_section_nonce" name="hero_section_nonce" value="abc123" />`)
}

func TestSaveMetaBox(t *testing.T) {
	t.Parallel()

	valid := func() memory.Request {
		return memory.Request{
			Conditions:   []string{"is_admin"},
			SavePost:     12,
			Posts:        aboutPage(),
			Nonces:       map[string]string{"hero_section_nonce_action": "abc123"},
			Capabilities: []string{"edit_page"},
			Form: map[string]string{
				"hero_section_nonce": "abc123",
				"hero_section":       "default_image",
				"post_type":          "page",
			},
		}
	}

	tests := []struct {
		name   string
		modify func(*memory.Request)
		saved  bool
	}{
		{name: "valid", modify: func(*memory.Request) {}, saved: true},
		{name: "missing nonce", modify: func(r *memory.Request) { delete(r.Form, "hero_section_nonce") }},
		{name: "wrong nonce", modify: func(r *memory.Request) { r.Form["hero_section_nonce"] = "nope" }},
		{name: "autosave", modify: func(r *memory.Request) { r.Constants = map[string]any{"DOING_AUTOSAVE": true} }},
		{name: "post capability on a page", modify: func(r *memory.Request) { r.Capabilities = []string{"edit_post"} }},
		{name: "unknown choice", modify: func(r *memory.Request) { r.Form["hero_section"] = "banner" }},
		{name: "no value", modify: func(r *memory.Request) { delete(r.Form, "hero_section") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid()
			tt.modify(&req)
			env, _ := componenttest.Setup(t, herosection.New, enableDoc, req)
			componenttest.Run(t, env)

			calls := env.Trace.Ops("update_post_meta")
			if !tt.saved {
				require.Empty(t, calls)
				return
			}
			require.Len(t, calls, 1)
			v, _, err := env.Options.GetPostMeta(context.Background(), 12, herosection.MetaKey)
			require.NoError(t, err)
			require.Equal(t, "default_image", v)
		})
	}
}

func TestCustomHeader(t *testing.T) {
	t.Parallel()

	base := func() memory.Request {
		return memory.Request{
			Conditions:   []string{"is_singular:post"},
			PostID:       7,
			Posts:        []ports.Post{{ID: 7, Title: "News", Type: "post", Thumbnail: "https://example.com/hero.jpg"}},
			HeaderImage:  "https://example.com/default.jpg",
			ThemeSupport: map[string]any{"custom-header": map[string]any{"header-selector": ".hero-section"}},
		}
	}

	env, _ := componenttest.Setup(t, herosection.New, "{}", base())
	report := componenttest.Run(t, env)
	require.Equal(t, "<style type=\"text/css\">.hero-section{background-image:url(https://example.com/hero.jpg)}</style>\n", report.Rendered)

	req := base()
	req.PostMeta = map[int]map[string]any{7: {herosection.MetaKey: "default_image"}}
	env, _ = componenttest.Setup(t, herosection.New, "{}", req)
	h := componenttest.Build(t, herosection.New, "{}", env).(*herosection.HeroSection)
	require.Contains(t, h.CustomHeader(context.Background()), "url(https://example.com/default.jpg)")

	req = base()
	req.PostMeta = map[int]map[string]any{7: {herosection.MetaKey: "no_image"}}
	env, _ = componenttest.Setup(t, herosection.New, "{}", req)
	h = componenttest.Build(t, herosection.New, "{}", env).(*herosection.HeroSection)
	require.Empty(t, h.CustomHeader(context.Background()))
}

func TestChoiceLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Featured Image", herosection.ChoiceLabel("featured_image"))
	require.Equal(t, "Disable", herosection.ChoiceLabel("disable"))
}

func TestHooksFiredWithoutArguments(t *testing.T) {
	t.Parallel()

	req := memory.Request{Conditions: []string{"is_singular:page"}, PostID: 12, Posts: aboutPage()}
	env, _ := componenttest.Setup(t, herosection.New, enableDoc, req)
	ctx := t.Context()

	env.Hooks.DoAction(ctx, "save_post")
	env.Hooks.DoAction(ctx, "genesis_meta")
	env.Hooks.DoAction(ctx, "genesis_before_content_sidebar_wrap")
	require.Equal(t, []string{"has-hero-section"}, env.Hooks.ApplyFilters(ctx, "body_class", nil))
	require.Nil(t, env.Hooks.ApplyFilters(ctx, "genesis_attr_hero-section", nil))
	require.Empty(t, env.Hooks.Errors())
	require.Empty(t, env.Trace.Ops("update_post_meta"))
}
