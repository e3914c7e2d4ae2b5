package memory

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/themecore/internal/ports"
	"github.com/alexisbeaulieu97/themecore/internal/trace"
)

// ScriptState is a script as the host holds it.
type ScriptState struct {
	ports.Script
	Enqueued bool
	Localize map[string]map[string]any
}

// StyleState is a stylesheet as the host holds it.
type StyleState struct {
	ports.Style
	Enqueued bool
	Inline   []string
}

// Host implements every host surface except hooks and options on top of
// in-memory registries.
type Host struct {
	trace *trace.Trace
	hooks ports.Hooks
	req   Request
	conds conditions
	pages map[int]ports.Post

	mu           sync.RWMutex
	constants    map[string]any
	features     map[string]any
	layouts      map[string]map[string]any
	sidebars     map[string]ports.Sidebar
	sidebarOrder []string
	widgets      map[string]bool
	scripts      map[string]*ScriptState
	styles       map[string]*StyleState
	inline       map[string][]string
	metaBoxes    []ports.MetaBox
	domains      map[string][]string
	nonces       map[string]string
	kirki        map[string]map[string]map[string]any
	kirkiFields  map[string][]map[string]any
	out          strings.Builder
}

// NewHost builds a host for the request. hooks is used for markup filters.
func NewHost(req Request, hooks ports.Hooks, tr *trace.Trace) *Host {
	h := &Host{
		trace:       tr,
		hooks:       hooks,
		req:         req,
		conds:       parseConditions(req.Conditions),
		pages:       make(map[int]ports.Post),
		constants:   make(map[string]any),
		features:    make(map[string]any),
		layouts:     make(map[string]map[string]any),
		sidebars:    make(map[string]ports.Sidebar),
		widgets:     make(map[string]bool),
		scripts:     make(map[string]*ScriptState),
		styles:      make(map[string]*StyleState),
		inline:      make(map[string][]string),
		domains:     make(map[string][]string),
		nonces:      make(map[string]string),
		kirki:       make(map[string]map[string]map[string]any),
		kirkiFields: make(map[string][]map[string]any),
	}
	for _, p := range req.Posts {
		h.pages[p.ID] = p
	}
	for _, p := range req.Attachments {
		if p.Type == "" {
			p.Type = "attachment"
		}
		h.pages[p.ID] = p
	}
	for name, value := range req.Constants {
		h.constants[name] = value
	}
	for feature, args := range req.ThemeSupport {
		h.features[feature] = args
	}
	for action, nonce := range req.Nonces {
		h.nonces[action] = nonce
	}
	return h
}

// Assets.

// EnqueueScript implements ports.Assets.
func (h *Host) EnqueueScript(s ports.Script) {
	h.trace.Record("assets", "wp_enqueue_script", s.Handle, s.Src)
	h.putScript(s, true)
}

// RegisterScript implements ports.Assets.
func (h *Host) RegisterScript(s ports.Script) {
	h.trace.Record("assets", "wp_register_script", s.Handle, s.Src)
	h.putScript(s, false)
}

func (h *Host) putScript(s ports.Script, enqueue bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	state, ok := h.scripts[s.Handle]
	if !ok {
		state = &ScriptState{Localize: make(map[string]map[string]any)}
		h.scripts[s.Handle] = state
	}
	state.Script = s
	state.Enqueued = state.Enqueued || enqueue
}

// LocalizeScript implements ports.Assets.
func (h *Host) LocalizeScript(handle, objectName string, data map[string]any) {
	h.trace.Record("assets", "wp_localize_script", handle, objectName)
	h.mu.Lock()
	defer h.mu.Unlock()
	if state, ok := h.scripts[handle]; ok {
		state.Localize[objectName] = data
	}
}

// EnqueueStyle implements ports.Assets.
func (h *Host) EnqueueStyle(s ports.Style) {
	h.trace.Record("assets", "wp_enqueue_style", s.Handle, s.Src)
	h.putStyle(s, true)
}

// RegisterStyle implements ports.Assets.
func (h *Host) RegisterStyle(s ports.Style) {
	h.trace.Record("assets", "wp_register_style", s.Handle, s.Src)
	h.putStyle(s, false)
}

func (h *Host) putStyle(s ports.Style, enqueue bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	state, ok := h.styles[s.Handle]
	if !ok {
		state = &StyleState{}
		h.styles[s.Handle] = state
	}
	state.Style = s
	state.Enqueued = state.Enqueued || enqueue
}

// AddInlineStyle implements ports.Assets.
func (h *Host) AddInlineStyle(handle, css string) {
	h.trace.Record("assets", "wp_add_inline_style", handle, css)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inline[handle] = append(h.inline[handle], css)
}

// Script returns a registered script.
func (h *Host) Script(handle string) (ScriptState, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.scripts[handle]
	if !ok {
		return ScriptState{}, false
	}
	return *s, true
}

// Style returns a registered stylesheet with its inline additions.
func (h *Host) Style(handle string) (StyleState, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.styles[handle]
	if !ok {
		return StyleState{}, false
	}
	out := *s
	out.Inline = append([]string(nil), h.inline[handle]...)
	return out, true
}

// InlineStyles returns the inline CSS attached to a handle.
func (h *Host) InlineStyles(handle string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.inline[handle]...)
}

// Constants.

// IsDefined implements ports.Constants.
func (h *Host) IsDefined(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.constants[name]
	return ok
}

// Define implements ports.Constants.
func (h *Host) Define(name string, value any) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.constants[name]; ok {
		return false
	}
	h.trace.Record("constants", "define", name, value)
	h.constants[name] = value
	return true
}

// Constant implements ports.Constants.
func (h *Host) Constant(name string) (any, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.constants[name]
	return v, ok
}

// Kirki.

// AddConfig implements ports.Kirki.
func (h *Host) AddConfig(id string, args map[string]any) {
	h.kirkiAdd("config", id, args)
}

// AddPanel implements ports.Kirki.
func (h *Host) AddPanel(id string, args map[string]any) {
	h.kirkiAdd("panel", id, args)
}

// AddSection implements ports.Kirki.
func (h *Host) AddSection(id string, args map[string]any) {
	h.kirkiAdd("section", id, args)
}

// AddField implements ports.Kirki.
func (h *Host) AddField(configID string, args map[string]any) {
	h.trace.Record("kirki", "Kirki::add_field", configID, args["settings"])
	h.mu.Lock()
	defer h.mu.Unlock()
	h.kirkiFields[configID] = append(h.kirkiFields[configID], args)
}

func (h *Host) kirkiAdd(kind, id string, args map[string]any) {
	h.trace.Record("kirki", "Kirki::add_"+kind, id)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.kirki[kind] == nil {
		h.kirki[kind] = make(map[string]map[string]any)
	}
	h.kirki[kind][id] = args
}

// KirkiObject returns a Kirki config, panel or section.
func (h *Host) KirkiObject(kind, id string) (map[string]any, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	args, ok := h.kirki[kind][id]
	return args, ok
}

// KirkiFields returns the fields added under a config id.
func (h *Host) KirkiFields(configID string) []map[string]any {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]map[string]any(nil), h.kirkiFields[configID]...)
}

// Content.

// PageByTitle implements ports.Content.
func (h *Host) PageByTitle(title string) (ports.Post, bool) {
	return h.findPost(func(p ports.Post) bool {
		return p.Title == title && (p.Type == "" || p.Type == "page")
	})
}

// PageByPath implements ports.Content.
func (h *Host) PageByPath(path string) (ports.Post, bool) {
	path = strings.Trim(path, "/")
	return h.findPost(func(p ports.Post) bool {
		return p.Slug == path && (p.Type == "" || p.Type == "page")
	})
}

// AttachmentByTitle implements ports.Content.
func (h *Host) AttachmentByTitle(title string) (ports.Post, bool) {
	return h.findPost(func(p ports.Post) bool {
		return p.Title == title && p.Type == "attachment"
	})
}

func (h *Host) findPost(match func(ports.Post) bool) (ports.Post, bool) {
	ids := make([]int, 0, len(h.pages))
	for id := range h.pages {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if p := h.pages[id]; match(p) {
			return p, true
		}
	}
	return ports.Post{}, false
}

// MenuByName implements ports.Content.
func (h *Host) MenuByName(name string) (ports.Menu, bool) {
	id, ok := h.req.Menus[name]
	if !ok {
		return ports.Menu{}, false
	}
	return ports.Menu{TermID: id, Name: name}, true
}

// Post implements ports.Content.
func (h *Host) Post(id int) (ports.Post, bool) {
	p, ok := h.pages[id]
	return p, ok
}

// ShopPageID implements ports.Content.
func (h *Host) ShopPageID() (int, bool) {
	return h.req.ShopPageID, h.req.ShopPageID > 0
}

// HeaderImage implements ports.Content.
func (h *Host) HeaderImage() string {
	return h.req.HeaderImage
}

// Theme implements ports.Content.
func (h *Host) Theme() ports.ThemeInfo {
	return h.req.Theme
}

// Features.

// AddThemeSupport implements ports.Features.
func (h *Host) AddThemeSupport(feature string, args any) {
	h.trace.Record("features", "add_theme_support", feature, args)
	h.mu.Lock()
	defer h.mu.Unlock()
	if args == nil {
		args = true
	}
	h.features[feature] = args
}

// RemoveThemeSupport implements ports.Features.
func (h *Host) RemoveThemeSupport(feature string) {
	h.trace.Record("features", "remove_theme_support", feature)
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.features, feature)
}

// CurrentThemeSupports implements ports.Features.
func (h *Host) CurrentThemeSupports(feature string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.features[feature]
	return ok && v != false
}

// ThemeSupport implements ports.Features.
func (h *Host) ThemeSupport(feature, key string) (any, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.features[feature]
	if !ok {
		return nil, false
	}
	if key == "" {
		return v, true
	}
	args, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	out, ok := args[key]
	return out, ok
}

// Layouts.

// RegisterLayout implements ports.Layouts.
func (h *Host) RegisterLayout(name string, args map[string]any) {
	h.trace.Record("layouts", "genesis_register_layout", name)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.layouts[name] = args
}

// UnregisterLayout implements ports.Layouts.
func (h *Host) UnregisterLayout(name string) {
	h.trace.Record("layouts", "genesis_unregister_layout", name)
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.layouts, name)
}

// Layouts lists registered layout names, sorted.
func (h *Host) Layouts() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.layouts))
	for name := range h.layouts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Sidebars.

// RegisterSidebar implements ports.Sidebars.
func (h *Host) RegisterSidebar(s ports.Sidebar) {
	h.trace.Record("sidebars", "register_sidebar", s.ID)
	h.putSidebar(s)
}

// RegisterGenesisWidgetArea implements ports.Sidebars.
func (h *Host) RegisterGenesisWidgetArea(s ports.Sidebar) {
	h.trace.Record("sidebars", "genesis_register_widget_area", s.ID)
	h.putSidebar(s)
}

func (h *Host) putSidebar(s ports.Sidebar) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sidebars[s.ID]; !ok {
		h.sidebarOrder = append(h.sidebarOrder, s.ID)
	}
	h.sidebars[s.ID] = s
}

// UnregisterSidebar implements ports.Sidebars.
func (h *Host) UnregisterSidebar(id string) {
	h.trace.Record("sidebars", "unregister_sidebar", id)
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sidebars, id)
	for i, existing := range h.sidebarOrder {
		if existing == id {
			h.sidebarOrder = append(h.sidebarOrder[:i:i], h.sidebarOrder[i+1:]...)
			break
		}
	}
}

// DynamicSidebar implements ports.Sidebars.
func (h *Host) DynamicSidebar(_ context.Context, id string, markup ports.AreaMarkup) {
	h.trace.Record("sidebars", "dynamic_sidebar", id, markup.Before, markup.After)
	h.renderArea(id, markup)
}

// GenesisWidgetArea implements ports.Sidebars.
func (h *Host) GenesisWidgetArea(_ context.Context, id string, markup ports.AreaMarkup) {
	h.trace.Record("sidebars", "genesis_widget_area", id, markup.Before, markup.After)
	h.renderArea(id, markup)
}

func (h *Host) renderArea(id string, markup ports.AreaMarkup) {
	h.mu.RLock()
	_, ok := h.sidebars[id]
	h.mu.RUnlock()
	if !ok {
		return
	}
	h.Write(markup.Before + "<!-- " + id + " -->" + markup.After)
}

// Sidebars lists registered sidebars in registration order.
func (h *Host) Sidebars() []ports.Sidebar {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]ports.Sidebar, 0, len(h.sidebarOrder))
	for _, id := range h.sidebarOrder {
		out = append(out, h.sidebars[id])
	}
	return out
}

// Widgets.

// RegisterWidget implements ports.Widgets.
func (h *Host) RegisterWidget(class string) {
	h.trace.Record("widgets", "register_widget", class)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.widgets[class] = true
}

// UnregisterWidget implements ports.Widgets.
func (h *Host) UnregisterWidget(class string) {
	h.trace.Record("widgets", "unregister_widget", class)
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.widgets, class)
}

// Widgets lists registered widget classes, sorted.
func (h *Host) Widgets() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.widgets))
	for class := range h.widgets {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}

// Translations.

// LoadThemeTextDomain implements ports.Translations.
func (h *Host) LoadThemeTextDomain(domain, path string) bool {
	h.trace.Record("translations", "load_theme_textdomain", domain, path)
	return h.loadCatalogs(domain, path)
}

// LoadChildThemeTextDomain implements ports.Translations.
func (h *Host) LoadChildThemeTextDomain(domain, path string) bool {
	h.trace.Record("translations", "load_child_theme_textdomain", domain, path)
	return h.loadCatalogs(domain, path)
}

// loadCatalogs finds the compiled catalogs under path. A domain loads when at
// least one catalog exists.
func (h *Host) loadCatalogs(domain, path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	matches, err := doublestar.Glob(os.DirFS(path), "**/*.mo")
	if err != nil || len(matches) == 0 {
		return false
	}
	sort.Strings(matches)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.domains[domain] = matches
	return true
}

// Catalogs returns the catalogs loaded for a text domain.
func (h *Host) Catalogs(domain string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.domains[domain]...)
}

// Query.

// IsAdmin implements ports.Query.
func (h *Host) IsAdmin() bool { return h.conds.Has("is_admin") }

// IsFrontPage implements ports.Query.
func (h *Host) IsFrontPage() bool { return h.conds.Has("is_front_page") }

// IsHome implements ports.Query.
func (h *Host) IsHome() bool { return h.conds.Has("is_home") }

// IsSingular implements ports.Query.
func (h *Host) IsSingular(postTypes ...string) bool { return h.conds.Has("is_singular", postTypes...) }

// IsPageTemplate implements ports.Query.
func (h *Host) IsPageTemplate(template string) bool {
	return h.conds.Has("is_page_template", template)
}

// Is404 implements ports.Query.
func (h *Host) Is404() bool { return h.conds.Has("is_404") }

// IsSearch implements ports.Query.
func (h *Host) IsSearch() bool { return h.conds.Has("is_search") }

// IsAttachment implements ports.Query.
func (h *Host) IsAttachment() bool { return h.conds.Has("is_attachment") }

// IsAuthor implements ports.Query.
func (h *Host) IsAuthor() bool { return h.conds.Has("is_author") }

// IsDate implements ports.Query.
func (h *Host) IsDate() bool { return h.conds.Has("is_date") }

// IsCategory implements ports.Query.
func (h *Host) IsCategory() bool { return h.conds.Has("is_category") }

// IsTag implements ports.Query.
func (h *Host) IsTag() bool { return h.conds.Has("is_tag") }

// IsTax implements ports.Query.
func (h *Host) IsTax(taxonomies ...string) bool { return h.conds.Has("is_tax", taxonomies...) }

// IsPostTypeArchive implements ports.Query.
func (h *Host) IsPostTypeArchive(postTypes ...string) bool {
	return h.conds.Has("is_post_type_archive", postTypes...)
}

// IsShop implements ports.Query.
func (h *Host) IsShop() bool { return h.conds.Has("is_shop") }

// CurrentPostID implements ports.Query.
func (h *Host) CurrentPostID() int { return h.req.PostID }

// SearchQuery implements ports.Query.
func (h *Host) SearchQuery() string { return h.req.Search }

// QueryVar implements ports.Query.
func (h *Host) QueryVar(name string) string { return h.req.QueryVars[name] }

// Output.

// Write implements ports.Output.
func (h *Host) Write(s string) {
	if s == "" {
		return
	}
	h.trace.Record("output", "echo", s)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.out.WriteString(s)
}

// Markup implements ports.Output. Attributes come from the
// `genesis_attr_{context}` filter; each part can be replaced or suppressed by
// the `genesis_markup_{context}_{open|content|close}` filters.
func (h *Host) Markup(ctx context.Context, args ports.MarkupArgs) {
	h.trace.Record("output", "genesis_markup", args.Context)

	if args.Open != "" {
		open := args.Open
		if strings.Contains(open, "%s") {
			open = fmt.Sprintf(open, h.attributes(ctx, args.Context))
		}
		h.writePart(ctx, args.Context, "open", open)
	}
	if args.Content != "" {
		h.writePart(ctx, args.Context, "content", args.Content)
	}
	if args.Close != "" {
		h.writePart(ctx, args.Context, "close", args.Close)
	}
}

func (h *Host) writePart(ctx context.Context, name, part, value string) {
	var out any = value
	if h.hooks != nil && name != "" {
		out = h.hooks.ApplyFilters(ctx, "genesis_markup_"+name+"_"+part, value)
	}
	if s, ok := out.(string); ok {
		h.Write(s)
	}
}

func (h *Host) attributes(ctx context.Context, name string) string {
	attrs := map[string]string{"class": name}
	if h.hooks != nil && name != "" {
		if filtered, ok := h.hooks.ApplyFilters(ctx, "genesis_attr_"+name, attrs, name).(map[string]string); ok {
			attrs = filtered
		}
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf(`%s="%s"`, key, html.EscapeString(attrs[key])))
	}
	return strings.Join(parts, " ")
}

// Rendered returns everything written so far.
func (h *Host) Rendered() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.out.String()
}

// Meta boxes.

// AddMetaBox implements ports.MetaBoxes.
func (h *Host) AddMetaBox(box ports.MetaBox) {
	h.trace.Record("metaboxes", "add_meta_box", box.ID, box.Title)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.metaBoxes = append(h.metaBoxes, box)
}

// MetaBoxes returns the registered meta boxes.
func (h *Host) MetaBoxes() []ports.MetaBox {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]ports.MetaBox(nil), h.metaBoxes...)
}

// RenderMetaBoxes renders every box registered for the post's type.
func (h *Host) RenderMetaBoxes(ctx context.Context, post ports.Post) {
	for _, box := range h.MetaBoxes() {
		if box.Render == nil || !screenMatches(box.Screens, post.Type) {
			continue
		}
		box.Render(ctx, post)
	}
}

func screenMatches(screens []string, postType string) bool {
	if len(screens) == 0 {
		return true
	}
	for _, s := range screens {
		if s == postType {
			return true
		}
	}
	return false
}

// Request.

// PostValue implements ports.Request.
func (h *Host) PostValue(key string) (string, bool) {
	v, ok := h.req.Form[key]
	return v, ok
}

// VerifyNonce implements ports.Request.
func (h *Host) VerifyNonce(nonce, action string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	want, ok := h.nonces[action]
	return ok && nonce != "" && nonce == want
}

// CurrentUserCan implements ports.Request.
func (h *Host) CurrentUserCan(capability string, _ int) bool {
	for _, c := range h.req.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// NonceField implements ports.Request. The nonce is created on first use.
func (h *Host) NonceField(action, name string) string {
	h.mu.Lock()
	nonce, ok := h.nonces[action]
	if !ok {
		nonce = strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
		h.nonces[action] = nonce
	}
	h.mu.Unlock()
	return fmt.Sprintf(`<input type="hidden" id="%[1]s" name="%[1]s" value="%[2]s" />`, name, nonce)
}

// stylesheetFS returns the stylesheet directory as a filesystem, or nil.
func stylesheetFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(dir)
}
