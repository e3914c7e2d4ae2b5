// Package herosection moves the page title and excerpt into a banner above
// the content for the page types it is enabled on.
package herosection

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "hero-section"

// Feature is the theme support flag that turns the hero section on.
const Feature = "hero-section"

// MetaKey is the post meta holding the per-post hero setting.
const MetaKey = "_hero_section"

const (
	blogTemplate    = "page_blog.php"
	landingTemplate = "/resources/views/page-landing.php"
	metaPriority    = 100
)

// Page types accepted under `enable`.
const (
	Page           = "page"
	Post           = "post"
	Product        = "product"
	PortfolioItem  = "portfolio-item"
	FrontPage      = "front-page"
	Attachment     = "attachment"
	LandingPage    = "landing-page"
	BlogTemplate   = "blog-template"
	Search         = "search"
	Error404       = "error-404"
	LatestPosts    = "latest-posts"
	Shop           = "shop"
	Portfolio      = "portfolio"
	PortfolioType  = "portfolio-type"
	ProductArchive = "product-archive"
	Author         = "author"
	Date           = "date"
	Blog           = "blog"
	Category       = "category"
	Tag            = "tag"
)

// HeroSection handles `enable`.
type HeroSection struct {
	*component.Base
	cfg config.HeroSectionConfig

	setupOnce sync.Once
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.HeroSectionConfig
	err := component.Decode(Name, slice, svc, &cfg,
		"callables", "features", "options", "query", "content", "output", "metaboxes", "request", "constants")
	if err != nil {
		return nil, err
	}
	h := &HeroSection{Base: component.NewBase(Name, svc, log), cfg: cfg}
	for _, pair := range cfg.Enable {
		if _, known := h.conditional(pair.Key); !known {
			h.Log.With("type", pair.Key).Warn("unknown page type never matches")
		}
	}
	return h, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"HeroSection"},
		Description: "Hero section with page title, excerpt and background image",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (h *HeroSection) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := h.Begin(ctx); err != nil {
		return nil, err
	}
	h.Svc.Features.AddThemeSupport(Feature, nil)

	h.Binder.Action("add_meta_boxes", "add_meta_box", h.addMetaBox, ports.DefaultPriority, 1)
	h.Binder.Action("save_post", "save_meta_box", h.saveMetaBox, ports.DefaultPriority, 1)
	h.Binder.Action("wp_head", "custom_header", h.customHeader, ports.DefaultPriority, 1)

	for _, pair := range h.cfg.Enable {
		pageType, enabled := pair.Key, pair.Value
		h.Binder.Action("genesis_meta", "enable_"+pageType, func(ctx context.Context, _ ...any) any {
			if h.Enabled(ctx, pageType, enabled) {
				h.setupOnce.Do(func() {
					h.Binder.Filter("body_class", "body_class", bodyClass, ports.DefaultPriority, 1)
					h.setup(ctx)
				})
			}
			return nil
		}, metaPriority, 1)
	}
	return h.Done()
}

// Enabled reports whether the hero section shows for pageType on the
// current request.
func (h *HeroSection) Enabled(ctx context.Context, pageType string, enabled bool) bool {
	if !enabled {
		return false
	}
	matches, known := h.conditional(pageType)
	if !known || !matches(ctx) {
		return false
	}
	if !h.Svc.Features.CurrentThemeSupports(Feature) {
		return false
	}
	return h.postSetting(ctx, h.Svc.Query.CurrentPostID()) != "disable"
}

func (h *HeroSection) conditional(pageType string) (func(context.Context) bool, bool) {
	q := h.Svc.Query
	conds := map[string]func(context.Context) bool{
		Page: func(context.Context) bool {
			return q.IsSingular("page") && !q.IsPageTemplate(blogTemplate) && !q.IsPageTemplate(landingTemplate)
		},
		Post:           func(context.Context) bool { return q.IsSingular("post") },
		Product:        func(context.Context) bool { return q.IsSingular("product") },
		PortfolioItem:  func(context.Context) bool { return q.IsSingular("portfolio") },
		FrontPage:      func(context.Context) bool { return q.IsFrontPage() },
		Attachment:     func(context.Context) bool { return q.IsAttachment() },
		LandingPage:    func(context.Context) bool { return q.IsPageTemplate(landingTemplate) },
		BlogTemplate:   func(context.Context) bool { return q.IsPageTemplate(blogTemplate) },
		Error404:       func(context.Context) bool { return q.Is404() },
		Search:         func(context.Context) bool { return q.IsSearch() },
		Author:         func(context.Context) bool { return q.IsAuthor() },
		Date:           func(context.Context) bool { return q.IsDate() },
		LatestPosts:    h.latestPosts,
		Blog:           func(context.Context) bool { return q.IsHome() },
		Shop:           func(context.Context) bool { return q.IsShop() },
		Portfolio:      func(context.Context) bool { return q.IsPostTypeArchive("portfolio") },
		PortfolioType:  func(context.Context) bool { return q.IsTax("portfolio-type") },
		ProductArchive: func(context.Context) bool { return q.IsTax("product_cat", "product_tag") },
		Category:       func(context.Context) bool { return q.IsCategory() },
		Tag:            func(context.Context) bool { return q.IsTag() },
	}
	fn, ok := conds[pageType]
	return fn, ok
}

// latestPosts is the posts index when the front page lists posts.
func (h *HeroSection) latestPosts(ctx context.Context) bool {
	return h.Svc.Query.IsHome() && h.option(ctx, "show_on_front") == "posts"
}

func (h *HeroSection) option(ctx context.Context, name string) string {
	v, ok, err := h.Svc.Options.GetOption(ctx, name)
	if err != nil {
		h.Log.Error(err, "read option "+name)
		return ""
	}
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func (h *HeroSection) postSetting(ctx context.Context, postID int) string {
	if postID <= 0 {
		return ""
	}
	v, ok, err := h.Svc.Options.GetPostMeta(ctx, postID, MetaKey)
	if err != nil {
		h.Log.Error(err, "read hero setting")
		return ""
	}
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func bodyClass(_ context.Context, args ...any) any {
	switch classes := component.Arg(args, 0).(type) {
	case []string:
		return append(append([]string(nil), classes...), "has-hero-section")
	case []any:
		return append(append([]any(nil), classes...), "has-hero-section")
	default:
		return []string{"has-hero-section"}
	}
}
