package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themecore/internal/guard"
	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

// AssetLoaderConfig lists scripts and styles to enqueue or register.
type AssetLoaderConfig struct {
	Scripts []ScriptAsset `yaml:"scripts" validate:"omitempty,dive"`
	Styles  []StyleAsset  `yaml:"styles" validate:"omitempty,dive"`
}

// ScriptAsset describes one script. With theme set, src is a path under the
// stylesheet directory and the minified variant is preferred when present.
type ScriptAsset struct {
	Handle      string          `yaml:"handle" validate:"required,handle"`
	Src         string          `yaml:"src"`
	Theme       bool            `yaml:"theme"`
	Deps        []string        `yaml:"deps"`
	Version     string          `yaml:"version"`
	Footer      bool            `yaml:"footer"`
	Enqueue     bool            `yaml:"enqueue"`
	Localize    *Localize       `yaml:"localize"`
	Conditional guard.Predicate `yaml:"conditional"`
}

// Localize attaches a data object to a script under a JavaScript variable name.
type Localize struct {
	Var  string         `yaml:"l10var" validate:"required"`
	Data map[string]any `yaml:"l10ndata"`
}

// StyleAsset describes one stylesheet.
type StyleAsset struct {
	Handle      string          `yaml:"handle" validate:"required,handle"`
	Src         string          `yaml:"src"`
	Theme       bool            `yaml:"theme"`
	Deps        []string        `yaml:"deps"`
	Version     string          `yaml:"version"`
	Media       string          `yaml:"media"`
	Enqueue     bool            `yaml:"enqueue"`
	Conditional guard.Predicate `yaml:"conditional"`
}

// BreadcrumbsConfig is merged wholesale over the host's breadcrumb arguments.
type BreadcrumbsConfig map[string]any

// ConstantsConfig names global constants to define once.
type ConstantsConfig struct {
	Define Ordered[any] `yaml:"define"`
}

// CustomColorsConfig is a mapping of color key to color setting.
type CustomColorsConfig struct {
	Colors Ordered[ColorSetting] `validate:"dive"`
}

// UnmarshalYAML decodes the slice itself as the color mapping.
func (c *CustomColorsConfig) UnmarshalYAML(node *yaml.Node) error {
	return c.Colors.UnmarshalYAML(node)
}

// ColorSetting is one customizable color.
type ColorSetting struct {
	ID      string      `yaml:"id" validate:"required,handle"`
	Default string      `yaml:"default" validate:"required,hexcolor6"`
	Output  []ColorRule `yaml:"output" validate:"dive"`
}

// ColorRule renders one CSS rule block when the color differs from its default.
type ColorRule struct {
	Elements   []string        `yaml:"elements" validate:"required,min=1"`
	Properties Ordered[string] `yaml:"properties" validate:"required,min=1"`
}

// CustomizerConfig lists customizer fields, sections and panels.
type CustomizerConfig struct {
	Fields   []map[string]any `yaml:"fields"`
	Sections []map[string]any `yaml:"sections"`
	Panels   []map[string]any `yaml:"panels"`
}

// Validate requires every field to name its setting and every section and panel an id.
func (c *CustomizerConfig) Validate() error {
	for i, field := range c.Fields {
		if _, ok := requiredKey(field, "settings"); !ok {
			return themeerrors.NewValidationError(fmt.Sprintf("fields[%d].settings", i), "field requires a settings id", nil)
		}
	}
	for i, section := range c.Sections {
		if _, ok := requiredKey(section, "id"); !ok {
			return themeerrors.NewValidationError(fmt.Sprintf("sections[%d].id", i), "section requires an id", nil)
		}
	}
	for i, panel := range c.Panels {
		if _, ok := requiredKey(panel, "id"); !ok {
			return themeerrors.NewValidationError(fmt.Sprintf("panels[%d].id", i), "panel requires an id", nil)
		}
	}
	return nil
}

// DemoImportConfig wires the one-click demo import plugin.
type DemoImportConfig struct {
	ImportSettings map[string]any       `yaml:"import_settings"`
	PageSettings   Ordered[string]      `yaml:"page_settings"`
	MenuSettings   Ordered[MenuSetting] `yaml:"menu_settings" validate:"dive"`
}

// MenuSetting assigns a menu, by name, to a theme location.
type MenuSetting struct {
	Name     string `yaml:"menu_name" validate:"required"`
	Location string `yaml:"menu_location" validate:"required"`
}

// GenesisSettingsConfig overlays defaults and forces option values.
type GenesisSettingsConfig struct {
	Defaults Ordered[any] `yaml:"defaults"`
	Force    Ordered[any] `yaml:"force"`
}

// HeroSectionConfig enables the hero section per page type.
type HeroSectionConfig struct {
	Enable Ordered[bool] `yaml:"enable"`
}

// HooksConfig adds and removes host callbacks.
type HooksConfig struct {
	Add    []HookEntry `yaml:"add" validate:"omitempty,dive"`
	Remove []HookEntry `yaml:"remove" validate:"omitempty,dive"`
}

// HookEntry describes one add_filter or remove_filter call.
type HookEntry struct {
	Tag         string          `yaml:"tag" validate:"required,hook_tag"`
	Callback    string          `yaml:"callback" validate:"required"`
	Priority    *int            `yaml:"priority"`
	Args        *int            `yaml:"args" validate:"omitempty,min=0"`
	Conditional guard.Predicate `yaml:"conditional"`
}

// KirkiConfig configures the Kirki customizer toolkit.
type KirkiConfig struct {
	Method   string           `yaml:"method"`
	Loader   map[string]any   `yaml:"loader"`
	Config   map[string]any   `yaml:"config"`
	Remove   [][]string       `yaml:"remove" validate:"omitempty,dive,len=2"`
	Styles   string           `yaml:"styles"`
	Scripts  string           `yaml:"scripts"`
	Panels   []map[string]any `yaml:"panels" validate:"required"`
	Sections []map[string]any `yaml:"sections" validate:"required"`
	Fields   []map[string]any `yaml:"fields" validate:"required"`
}

// Validate requires ids on panels and sections and a known removal kind.
func (c *KirkiConfig) Validate() error {
	for i, panel := range c.Panels {
		if _, ok := requiredKey(panel, "id"); !ok {
			return themeerrors.NewValidationError(fmt.Sprintf("panels[%d].id", i), "panel requires an id", nil)
		}
	}
	for i, section := range c.Sections {
		if _, ok := requiredKey(section, "id"); !ok {
			return themeerrors.NewValidationError(fmt.Sprintf("sections[%d].id", i), "section requires an id", nil)
		}
	}
	for i, removal := range c.Remove {
		switch removal[0] {
		case "setting", "control", "section", "panel":
		default:
			return themeerrors.NewValidationError(fmt.Sprintf("remove[%d]", i), fmt.Sprintf("unknown customizer kind %q", removal[0]), nil)
		}
	}
	return nil
}

// PageLayoutsConfig registers and unregisters layout choices.
type PageLayoutsConfig struct {
	Register   Ordered[map[string]any] `yaml:"register"`
	Unregister []string                `yaml:"unregister"`
}

// PageTemplateConfig adds and removes page templates by path.
type PageTemplateConfig struct {
	Register   Ordered[string] `yaml:"register"`
	Unregister []string        `yaml:"unregister"`
}

// TextDomainConfig loads a translation catalog.
type TextDomainConfig struct {
	Domain *string `yaml:"domain"`
	Path   *string `yaml:"path"`
}

// ThemeSupportConfig adds and removes theme feature flags.
type ThemeSupportConfig struct {
	Add    Ordered[any] `yaml:"add"`
	Remove []string     `yaml:"remove"`
}

// WidgetAreaConfig registers sidebars and where they render.
type WidgetAreaConfig struct {
	Register   []WidgetAreaEntry `yaml:"register" validate:"omitempty,dive"`
	Unregister []string          `yaml:"unregister"`
}

// WidgetAreaEntry describes one sidebar.
type WidgetAreaEntry struct {
	ID          string          `yaml:"id" validate:"required,handle"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	BeforeTitle string          `yaml:"before_title"`
	AfterTitle  string          `yaml:"after_title"`
	Location    string          `yaml:"location" validate:"omitempty,hook_tag"`
	Before      *guard.Value    `yaml:"before"`
	After       *guard.Value    `yaml:"after"`
	Priority    *int            `yaml:"priority"`
	Conditional guard.Predicate `yaml:"conditional"`
}

// WidgetsConfig registers and unregisters widget classes.
type WidgetsConfig struct {
	Register   []string `yaml:"register"`
	Unregister []string `yaml:"unregister"`
}
