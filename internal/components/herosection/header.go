package herosection

import (
	"context"
	"fmt"
	"html"
	"strconv"

	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// CustomHeader returns the style block giving the hero section its
// background image, or "" when the current request has none.
func (h *HeroSection) CustomHeader(ctx context.Context) string {
	post, found := h.headerPost(ctx)

	url := ""
	if found {
		url = post.Thumbnail
	}
	switch h.postSetting(ctx, post.ID) {
	case "default_image":
		url = h.Svc.Content.HeaderImage()
	case "disable", "no_image":
		url = ""
	}
	if url == "" {
		return ""
	}

	selector, _ := h.Svc.Features.ThemeSupport("custom-header", "header-selector")
	return fmt.Sprintf("<style type=\"text/css\">%s{background-image:url(%s)}</style>\n",
		html.EscapeString(toString(selector)), html.EscapeString(url))
}

// headerPost finds the post whose image heads the current request.
func (h *HeroSection) headerPost(ctx context.Context) (ports.Post, bool) {
	q, content := h.Svc.Query, h.Svc.Content
	switch {
	case q.IsShop():
		id, ok := content.ShopPageID()
		if !ok {
			return ports.Post{}, false
		}
		return content.Post(id)
	case q.IsPostTypeArchive():
		page, ok := content.PageByPath(q.QueryVar("post_type"))
		if !ok || page.Thumbnail == "" {
			return ports.Post{}, false
		}
		return page, true
	case q.IsCategory():
		return content.AttachmentByTitle("category-" + q.QueryVar("category_name"))
	case q.IsTag():
		return content.AttachmentByTitle("tag-" + q.QueryVar("tag"))
	case q.IsTax():
		return content.AttachmentByTitle("term-" + q.QueryVar("term"))
	case q.IsFrontPage():
		return h.optionPost(ctx, "page_on_front")
	case h.latestPosts(ctx):
		return h.optionPost(ctx, "page_for_posts")
	case q.IsSearch():
		return content.PageByPath("search")
	case q.Is404():
		return content.PageByPath("error")
	case q.IsSingular():
		return content.Post(q.CurrentPostID())
	}
	return ports.Post{}, false
}

func (h *HeroSection) optionPost(ctx context.Context, name string) (ports.Post, bool) {
	id, err := strconv.Atoi(h.option(ctx, name))
	if err != nil || id <= 0 {
		return ports.Post{}, false
	}
	return h.Svc.Content.Post(id)
}

// customHeader prints the background style for themes that support a custom header.
func (h *HeroSection) customHeader(ctx context.Context, _ ...any) any {
	if h.Svc.Features.CurrentThemeSupports("custom-header") {
		h.Svc.Output.Write(h.CustomHeader(ctx))
	}
	return nil
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
