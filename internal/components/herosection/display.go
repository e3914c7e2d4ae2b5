package herosection

import (
	"context"
	"fmt"
	"html"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

const heroAction = "child_theme_hero_section"

// replaced lists the framework callbacks the hero section takes over.
var replaced = []struct {
	tag      string
	callback string
	priority int
}{
	{"genesis_entry_header", "genesis_entry_header_markup_open", 5},
	{"genesis_entry_header", "genesis_entry_header_markup_close", 15},
	{"genesis_before_loop", "genesis_do_posts_page_heading", 10},
	{"genesis_archive_title_descriptions", "genesis_do_archive_headings_open", 5},
	{"genesis_archive_title_descriptions", "genesis_do_archive_headings_close", 15},
	{"genesis_before_loop", "genesis_do_date_archive_title", 10},
	{"genesis_before_loop", "genesis_do_blog_template_heading", 10},
	{"genesis_before_loop", "genesis_do_taxonomy_title_description", 15},
	{"genesis_before_loop", "genesis_do_author_title_description", 15},
	{"genesis_before_loop", "genesis_do_cpt_archive_title_description", 10},
	{"genesis_before_loop", "genesis_do_search_title", 10},
	{"woocommerce_single_product_summary", "woocommerce_template_single_title", 5},
	{"woocommerce_before_shop_loop", "woocommerce_result_count", 20},
}

// headings run inside the hero section in place of their usual spot.
var headings = []string{
	"genesis_do_posts_page_heading",
	"genesis_do_date_archive_title",
	"genesis_do_taxonomy_title_description",
	"genesis_do_author_title_description",
	"genesis_do_cpt_archive_title_description",
}

// setup rearranges the page once the hero section is known to show. Nothing
// changes in the admin or on the front page.
func (h *HeroSection) setup(context.Context) {
	q := h.Svc.Query
	if q.IsAdmin() || q.IsFrontPage() {
		return
	}

	if q.IsSingular() && !q.IsPageTemplate(blogTemplate) {
		h.Binder.RemoveAction("genesis_entry_header", "genesis_do_post_title", ports.DefaultPriority)
	}
	for _, r := range replaced {
		h.Binder.RemoveAction(r.tag, r.callback, r.priority)
	}

	h.addNamedFilter("woocommerce_show_page_title", "__return_null")
	h.addNamedFilter("genesis_search_title_output", "__return_false")

	for _, name := range headings {
		if cb, ok := h.named(name); ok {
			h.Binder.AddAction(heroAction, cb, ports.DefaultPriority, 1)
		}
	}
	h.Binder.Action(heroAction, "title", h.title, 10, 1)
	h.Binder.Action(heroAction, "excerpt", h.excerpt, 20, 1)
	h.Binder.Action("be_title_toggle_remove", "title_toggle", h.titleToggle, ports.DefaultPriority, 1)
	h.Binder.Action("genesis_before_content", "remove_404_title", h.remove404Title, ports.DefaultPriority, 1)
	h.Binder.Action("genesis_before_content_sidebar_wrap", "attributes", h.attributes, ports.DefaultPriority, 1)
	h.Binder.Action("genesis_before_content_sidebar_wrap", "display", h.display, ports.DefaultPriority, 1)
}

func (h *HeroSection) named(name string) (ports.Callback, bool) {
	cb, ok := h.Svc.Callables.Lookup(name)
	if !ok {
		h.Log.With("callback", name).Debug("callback not available")
	}
	return cb, ok
}

func (h *HeroSection) addNamedFilter(tag, name string) {
	if cb, ok := h.named(name); ok {
		h.Binder.AddFilter(tag, cb, ports.DefaultPriority, 1)
	}
}

func (h *HeroSection) remove404Title(context.Context, ...any) any {
	if !h.Svc.Query.Is404() {
		return nil
	}
	for _, part := range []string{"open", "content", "close"} {
		h.addNamedFilter("genesis_markup_entry-title_"+part, "__return_false")
	}
	return nil
}

func (h *HeroSection) titleToggle(context.Context, ...any) any {
	h.Binder.RemoveAction(heroAction, h.Binder.ID("title"), 10)
	h.Binder.RemoveAction(heroAction, h.Binder.ID("excerpt"), 20)
	return nil
}

func (h *HeroSection) title(ctx context.Context, _ ...any) any {
	q := h.Svc.Query
	switch {
	case q.IsShop():
		id, _ := h.Svc.Content.ShopPageID()
		page, _ := h.Svc.Content.Post(id)
		h.heading(ctx, page.Title)
	case h.latestPosts(ctx):
		h.heading(ctx, h.filtered(ctx, "child_theme_latest_posts_title", "Latest Posts"))
	case q.Is404():
		h.heading(ctx, h.filtered(ctx, "genesis_404_entry_title", "Not found, error 404"))
	case q.IsSearch():
		h.heading(ctx, h.filtered(ctx, "genesis_search_title_text", "Search results for: "+q.SearchQuery()))
	case q.IsPageTemplate(blogTemplate):
		post, _ := h.Svc.Content.Post(q.CurrentPostID())
		h.Svc.Hooks.DoAction(ctx, "genesis_archive_title_descriptions", post.Title, "", "posts-page-description")
	case q.IsSingular():
		if cb, ok := h.named("genesis_do_post_title"); ok {
			cb.Fn(ctx)
		}
	}
	return nil
}

func (h *HeroSection) heading(ctx context.Context, content string) {
	h.Svc.Output.Markup(ctx, ports.MarkupArgs{
		Open:    "<h1 %s>",
		Close:   "</h1>",
		Content: content,
		Context: "entry-title",
	})
}

func (h *HeroSection) filtered(ctx context.Context, tag, text string) string {
	v := h.Svc.Hooks.ApplyFilters(ctx, tag, html.EscapeString(text))
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func (h *HeroSection) excerpt(ctx context.Context, _ ...any) any {
	q := h.Svc.Query
	switch {
	case q.IsShop():
		if cb, ok := h.named("woocommerce_result_count"); ok {
			cb.Fn(ctx)
		}
	case h.latestPosts(ctx):
		h.subtitle(h.filtered(ctx, "child_theme_latest_posts_excerpt", "Showing the latest posts"))
	case q.IsSearch():
		h.pageExcerpt("search")
	case q.Is404():
		h.pageExcerpt("error")
	case q.IsSingular() && !q.IsSingular("product"):
		if post, ok := h.Svc.Content.Post(q.CurrentPostID()); ok && post.Excerpt != "" {
			h.subtitle(post.Excerpt)
		}
	}
	return nil
}

func (h *HeroSection) pageExcerpt(path string) {
	if page, ok := h.Svc.Content.PageByPath(path); ok && page.Excerpt != "" {
		h.subtitle(page.Excerpt)
	}
}

func (h *HeroSection) subtitle(text string) {
	h.Svc.Output.Write(`<p class="entry-subtitle" itemprop="description">` + text + `</p>`)
}

func (h *HeroSection) display(ctx context.Context, _ ...any) any {
	h.Svc.Output.Markup(ctx, ports.MarkupArgs{Open: `<section %s><div class="wrap">`, Context: "hero-section"})
	h.Svc.Hooks.DoAction(ctx, heroAction)
	h.Svc.Output.Markup(ctx, ports.MarkupArgs{Close: "</div></section>", Context: "hero-section"})
	return nil
}

func (h *HeroSection) attributes(context.Context, ...any) any {
	h.Binder.Filter("genesis_attr_entry", "entry_attributes", func(_ context.Context, args ...any) any {
		first := component.Arg(args, 0)
		attrs, ok := first.(map[string]string)
		if !ok || !h.Svc.Query.IsSingular() {
			return first
		}
		attrs["itemref"] = "hero-section"
		return attrs
	}, ports.DefaultPriority, 1)

	h.Binder.Filter("genesis_attr_hero-section", "hero_attributes", func(_ context.Context, args ...any) any {
		first := component.Arg(args, 0)
		attrs, ok := first.(map[string]string)
		if !ok {
			return first
		}
		attrs["id"] = "hero-section"
		attrs["role"] = "banner"
		return attrs
	}, ports.DefaultPriority, 1)
	return nil
}
