package memory

import (
	"context"
	"sort"
	"strings"
)

// Action and filter tags fired by Lifecycle.
var (
	setupActions = []string{
		"after_setup_theme",
		"init",
		"widgets_init",
	}

	requestActions = []string{
		"wp",
		"genesis_meta",
		"wp_enqueue_scripts",
	}

	structureActions = []string{
		"genesis_before",
		"genesis_before_header",
		"genesis_header",
		"genesis_header_right",
		"genesis_after_header",
		"genesis_before_content_sidebar_wrap",
		"genesis_before_content",
		"genesis_before_loop",
		"genesis_entry_header",
		"genesis_after_loop",
		"genesis_after_content",
		"genesis_after_content_sidebar_wrap",
		"genesis_before_footer",
		"genesis_footer",
		"genesis_after_footer",
		"genesis_after",
	}
)

const genesisOptionPrefix = "genesis_pre_get_option_"

// Report is what a lifecycle run produced.
type Report struct {
	Filters        map[string]any
	GenesisOptions map[string]any
	Rendered       string
	Errors         []error
}

// FilterTags lists the filtered tags in sorted order.
func (r *Report) FilterTags() []string {
	tags := make([]string, 0, len(r.Filters))
	for tag := range r.Filters {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Lifecycle fires the events of one page request in the order a theme sees them.
type Lifecycle struct {
	env *Environment
}

// NewLifecycle returns a lifecycle bound to env.
func NewLifecycle(env *Environment) *Lifecycle {
	return &Lifecycle{env: env}
}

// Run fires every phase and collects the filtered values.
func (l *Lifecycle) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Filters:        make(map[string]any),
		GenesisOptions: make(map[string]any),
	}

	steps := []func(context.Context, *Report){
		l.setup,
		l.customizer,
		l.admin,
		l.request,
		l.filters,
		l.genesisOptions,
		l.demoImport,
		l.render,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		step(ctx, report)
	}

	report.Rendered = l.env.Host.Rendered()
	report.Errors = l.env.Hooks.Errors()
	return report, nil
}

func (l *Lifecycle) setup(ctx context.Context, _ *Report) {
	for _, tag := range setupActions {
		l.env.Hooks.DoAction(ctx, tag)
	}
}

func (l *Lifecycle) customizer(ctx context.Context, _ *Report) {
	l.env.Hooks.DoAction(ctx, "customize_register", l.env.Customizer)
	if l.env.Host.conds.Has("is_customize_preview") {
		l.env.Hooks.DoAction(ctx, "customize_controls_print_styles")
		l.env.Hooks.DoAction(ctx, "customize_controls_print_scripts")
	}
}

func (l *Lifecycle) admin(ctx context.Context, _ *Report) {
	if !l.env.Host.IsAdmin() {
		return
	}
	post, ok := l.env.Host.Post(l.env.Host.CurrentPostID())
	if ok {
		l.env.Hooks.DoAction(ctx, "add_meta_boxes", post.Type, post)
		l.env.Host.RenderMetaBoxes(ctx, post)
	}
	if id := l.env.Request.SavePost; id > 0 {
		l.env.Hooks.DoAction(ctx, "save_post", id)
	}
}

func (l *Lifecycle) request(ctx context.Context, _ *Report) {
	for _, tag := range requestActions {
		l.env.Hooks.DoAction(ctx, tag)
	}
	if !l.env.Host.IsAdmin() {
		l.env.Hooks.DoAction(ctx, "wp_head")
	}
}

func (l *Lifecycle) filters(ctx context.Context, report *Report) {
	templates := make(map[string]string, len(l.env.Request.Templates))
	for path, label := range l.env.Request.Templates {
		templates[path] = label
	}

	values := []struct {
		tag   string
		value any
	}{
		{"theme_page_templates", templates},
		{"genesis_breadcrumb_args", defaultBreadcrumbArgs()},
		{"genesis_theme_settings_defaults", defaultGenesisSettings()},
		{"body_class", []string{}},
		{"kirki/dynamic_css/method", "inline"},
		{"kirki_config", map[string]any{"disable_loader": false}},
	}
	for _, v := range values {
		report.Filters[v.tag] = l.env.Hooks.ApplyFilters(ctx, v.tag, v.value)
	}
}

// genesisOptions resolves each theme setting the way the framework's option
// getter does: a short-circuit filter wins over the stored default.
func (l *Lifecycle) genesisOptions(ctx context.Context, report *Report) {
	if defaults, ok := report.Filters["genesis_theme_settings_defaults"].(map[string]any); ok {
		for key, value := range defaults {
			report.GenesisOptions[key] = value
		}
	}
	for _, tag := range l.env.Hooks.Tags(genesisOptionPrefix) {
		key := strings.TrimPrefix(tag, genesisOptionPrefix)
		if v := l.env.Hooks.ApplyFilters(ctx, tag, nil); v != nil {
			report.GenesisOptions[key] = v
		}
	}
}

func (l *Lifecycle) demoImport(ctx context.Context, report *Report) {
	if !l.env.Hooks.HasFilter("pt-ocdi/import_files", "") && !l.env.Request.Import {
		return
	}
	report.Filters["pt-ocdi/disable_pt_branding"] = l.env.Hooks.ApplyFilters(ctx, "pt-ocdi/disable_pt_branding", false)
	report.Filters["pt-ocdi/import_files"] = l.env.Hooks.ApplyFilters(ctx, "pt-ocdi/import_files", []any{})
	if l.env.Request.Import {
		l.env.Hooks.DoAction(ctx, "pt-ocdi/after_all_import_execution")
	}
}

func (l *Lifecycle) render(ctx context.Context, _ *Report) {
	if l.env.Host.IsAdmin() {
		return
	}
	for _, tag := range structureActions {
		l.env.Hooks.DoAction(ctx, tag)
	}
	for _, tag := range l.env.Request.Events {
		l.env.Hooks.DoAction(ctx, tag)
	}
}

func defaultBreadcrumbArgs() map[string]any {
	return map[string]any{
		"home":                    "Home",
		"sep":                     " / ",
		"list_sep":                ", ",
		"prefix":                  `<div class="breadcrumb">`,
		"suffix":                  "</div>",
		"heirarchial_attachments": true,
		"heirarchial_categories":  true,
		"labels": map[string]any{
			"prefix":    "You are here: ",
			"author":    "Archives for ",
			"category":  "Archives for ",
			"tag":       "Archives for ",
			"date":      "Archives for ",
			"search":    "Search for ",
			"tax":       "Archives for ",
			"post_type": "Archives for ",
			"404":       "Not found: ",
		},
	}
}

func defaultGenesisSettings() map[string]any {
	return map[string]any{
		"blog_title":                "text",
		"site_layout":               "content-sidebar",
		"superfish":                 0,
		"nav_extras":                "",
		"breadcrumb_home":           0,
		"breadcrumb_single":         0,
		"breadcrumb_page":           0,
		"breadcrumb_archive":        0,
		"comments_posts":            1,
		"comments_pages":            0,
		"content_archive":           "full",
		"content_archive_thumbnail": 0,
		"image_size":                "",
		"posts_nav":                 "numeric",
		"blog_cat_num":              10,
		"semantic_headings":         0,
	}
}
