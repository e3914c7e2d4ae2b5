package ports

import "context"

// Script is a JavaScript asset.
type Script struct {
	Handle   string
	Src      string
	Deps     []string
	Version  string
	InFooter bool
}

// Style is a stylesheet asset.
type Style struct {
	Handle  string
	Src     string
	Deps    []string
	Version string
	Media   string
}

// Assets enqueues and registers front-end assets.
type Assets interface {
	EnqueueScript(script Script)
	RegisterScript(script Script)
	LocalizeScript(handle, objectName string, data map[string]any)
	EnqueueStyle(style Style)
	RegisterStyle(style Style)
	AddInlineStyle(handle, css string)
}

// Constants is the global constant table. A constant cannot be redefined.
type Constants interface {
	IsDefined(name string) bool
	Define(name string, value any) bool
	Constant(name string) (any, bool)
}

// Kirki is the third-party customizer toolkit.
type Kirki interface {
	AddConfig(id string, args map[string]any)
	AddPanel(id string, args map[string]any)
	AddSection(id string, args map[string]any)
	AddField(configID string, args map[string]any)
}

// Options is the host's persisted key/value storage.
type Options interface {
	GetOption(ctx context.Context, name string) (any, bool, error)
	UpdateOption(ctx context.Context, name string, value any) error
	GetThemeMod(ctx context.Context, name string) (any, bool, error)
	SetThemeMod(ctx context.Context, name string, value any) error
	GetPostMeta(ctx context.Context, postID int, key string) (any, bool, error)
	UpdatePostMeta(ctx context.Context, postID int, key string, value any) error
}

// Post is a content item.
type Post struct {
	ID        int    `yaml:"id" json:"id"`
	Title     string `yaml:"title" json:"title"`
	Slug      string `yaml:"slug" json:"slug"`
	Type      string `yaml:"type" json:"type"`
	Excerpt   string `yaml:"excerpt" json:"excerpt"`
	Thumbnail string `yaml:"thumbnail" json:"thumbnail"`
}

// Menu is a navigation menu term.
type Menu struct {
	TermID int
	Name   string
}

// ThemeInfo describes the active theme.
type ThemeInfo struct {
	Name          string `yaml:"name"`
	Template      string `yaml:"template"`
	StylesheetDir string `yaml:"stylesheet_dir"`
	StylesheetURI string `yaml:"stylesheet_uri"`
	Child         bool   `yaml:"child"`
}

// Content looks up posts, pages, menus and the active theme.
type Content interface {
	PageByTitle(title string) (Post, bool)
	PageByPath(path string) (Post, bool)
	AttachmentByTitle(title string) (Post, bool)
	MenuByName(name string) (Menu, bool)
	Post(id int) (Post, bool)
	ShopPageID() (int, bool)
	HeaderImage() string
	Theme() ThemeInfo
}

// Features is the theme feature flag registry.
type Features interface {
	AddThemeSupport(feature string, args any)
	RemoveThemeSupport(feature string)
	CurrentThemeSupports(feature string) bool
	ThemeSupport(feature, key string) (any, bool)
}

// Layouts holds the selectable page layouts.
type Layouts interface {
	RegisterLayout(name string, args map[string]any)
	UnregisterLayout(name string)
}

// Sidebar describes a widget area.
type Sidebar struct {
	ID          string
	Name        string
	Description string
	BeforeTitle string
	AfterTitle  string
}

// AreaMarkup wraps a rendered widget area.
type AreaMarkup struct {
	Before string
	After  string
}

// Sidebars registers and renders widget areas.
type Sidebars interface {
	RegisterSidebar(sidebar Sidebar)
	RegisterGenesisWidgetArea(sidebar Sidebar)
	UnregisterSidebar(id string)
	DynamicSidebar(ctx context.Context, id string, markup AreaMarkup)
	GenesisWidgetArea(ctx context.Context, id string, markup AreaMarkup)
}

// Widgets registers widget classes.
type Widgets interface {
	RegisterWidget(class string)
	UnregisterWidget(class string)
}

// Translations loads translation catalogs.
type Translations interface {
	LoadThemeTextDomain(domain, path string) bool
	LoadChildThemeTextDomain(domain, path string) bool
}

// Query answers conditional questions about the current request.
type Query interface {
	IsAdmin() bool
	IsFrontPage() bool
	IsHome() bool
	IsSingular(postTypes ...string) bool
	IsPageTemplate(template string) bool
	Is404() bool
	IsSearch() bool
	IsAttachment() bool
	IsAuthor() bool
	IsDate() bool
	IsCategory() bool
	IsTag() bool
	IsTax(taxonomies ...string) bool
	IsPostTypeArchive(postTypes ...string) bool
	IsShop() bool

	CurrentPostID() int
	SearchQuery() string
	QueryVar(name string) string
}

// MarkupArgs is a structural markup element. A `%s` in Open is replaced with
// the element's attributes.
type MarkupArgs struct {
	Open    string
	Close   string
	Content string
	Context string
}

// Output writes to the rendered page.
type Output interface {
	Write(s string)
	Markup(ctx context.Context, args MarkupArgs)
}

// MetaBox is an editor panel shown on post edit screens.
type MetaBox struct {
	ID       string
	Title    string
	Screens  []string
	Context  string
	Priority string
	Render   func(ctx context.Context, post Post)
}

// MetaBoxes registers editor panels.
type MetaBoxes interface {
	AddMetaBox(box MetaBox)
}

// Request exposes the submitted form of the current request.
type Request interface {
	PostValue(key string) (string, bool)
	VerifyNonce(nonce, action string) bool
	CurrentUserCan(capability string, objectID int) bool
	NonceField(action, name string) string
}
