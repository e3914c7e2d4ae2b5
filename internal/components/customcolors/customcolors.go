// Package customcolors adds color pickers to the customizer and prints the
// CSS for every color changed from its default.
package customcolors

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/css"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "custom-colors"

const (
	outputPriority = 100
	defaultHandle  = "child-theme"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

// CustomColors handles a mapping of color key to color setting.
type CustomColors struct {
	*component.Base
	cfg config.CustomColorsConfig
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.CustomColorsConfig
	if err := component.Decode(Name, slice, svc, &cfg, "options", "assets", "constants"); err != nil {
		return nil, err
	}
	return &CustomColors{Base: component.NewBase(Name, svc, log), cfg: cfg}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"CustomColors"},
		Description: "Customizer color settings with generated inline CSS",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (c *CustomColors) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := c.Begin(ctx); err != nil {
		return nil, err
	}
	c.Binder.Action("customize_register", "add_settings", c.addSettings, ports.DefaultPriority, 1)
	c.Binder.Action("wp_enqueue_scripts", "output_css", c.outputCSS, outputPriority, 1)
	return c.Done()
}

// SettingID is the theme mod holding the color with the given id.
func SettingID(id string) string {
	return "child_theme_" + id + "_color"
}

// Label is the control label for a color id: "link_hover" becomes "Link Hover Color".
func Label(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " ")) + " Color"
}

func (c *CustomColors) addSettings(_ context.Context, args ...any) any {
	wp, ok := component.Arg(args, 0).(ports.Customizer)
	if !ok {
		c.Log.Warn("customize_register fired without a customizer")
		return nil
	}
	for _, pair := range c.cfg.Colors {
		setting := SettingID(pair.Value.ID)
		wp.AddSetting(setting, map[string]any{
			"default":           pair.Value.Default,
			"sanitize_callback": "sanitize_hex_color",
		})
		wp.AddColorControl(setting, map[string]any{
			"section":  "colors",
			"label":    Label(pair.Value.ID),
			"settings": setting,
		})
	}
	return nil
}

func (c *CustomColors) outputCSS(ctx context.Context, _ ...any) any {
	var b strings.Builder
	for _, pair := range c.cfg.Colors {
		color := c.current(ctx, pair.Value)
		if color == pair.Value.Default {
			continue
		}
		for _, rule := range pair.Value.Output {
			b.WriteString(Rule(rule, color, c.Log))
		}
	}
	if b.Len() == 0 {
		return nil
	}
	c.Svc.Assets.AddInlineStyle(c.handle(), css.Minify(b.String()))
	return nil
}

func (c *CustomColors) current(ctx context.Context, setting config.ColorSetting) string {
	v, ok, err := c.Svc.Options.GetThemeMod(ctx, SettingID(setting.ID))
	if err != nil {
		c.Log.Error(err, "read theme mod")
		return setting.Default
	}
	if !ok || v == nil {
		return setting.Default
	}
	if s, isString := v.(string); isString {
		return s
	}
	return fmt.Sprint(v)
}

func (c *CustomColors) handle() string {
	v, ok := c.Svc.Constants.Constant("CHILD_THEME_NAME")
	if !ok || v == nil || v == false || v == "" {
		return defaultHandle
	}
	if slug := css.Slug(fmt.Sprint(v)); slug != "" {
		return slug
	}
	return defaultHandle
}

// Rule renders one unminified rule block for color. A property pattern that
// mentions rgba receives the color as "r,g,b"; any other pattern receives
// the hex value. `%s` in a pattern marks where the color goes.
func Rule(rule config.ColorRule, color string, log *logger.Logger) string {
	var b strings.Builder
	b.WriteString(strings.Join(rule.Elements, ","))
	b.WriteString("{")
	for _, prop := range rule.Properties {
		value := color
		if strings.Contains(prop.Value, "rgba") {
			rgb, err := css.HexToRGB(color)
			if err != nil {
				log.Error(err, "convert color for rgba pattern")
			} else {
				value = rgb
			}
		}
		b.WriteString(prop.Key)
		b.WriteString(":")
		b.WriteString(format(prop.Value, value))
		b.WriteString(";")
	}
	b.WriteString("}")
	return b.String()
}

func format(pattern, value string) string {
	pattern = strings.ReplaceAll(pattern, "%1$s", "%s")
	return strings.ReplaceAll(strings.ReplaceAll(pattern, "%s", value), "%%", "%")
}
