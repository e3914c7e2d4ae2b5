// Package customizer adds customizer fields, sections and panels.
package customizer

import (
	"context"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "customizer"

// controlProperties are dropped from a field's arguments to form its setting.
var controlProperties = []string{
	"settings",
	"setting",
	"priority",
	"section",
	"label",
	"description",
	"choices",
	"input_attrs",
	"allow_addition",
	"type",
	"active_callback",
}

// settingProperties are dropped from a field's arguments to form its control.
var settingProperties = []string{
	"theme_supports",
	"transport",
	"validate_callback",
	"sanitize_callback",
	"sanitize_js_callback",
	"dirty",
}

// Customizer registers each capability on `customize_register`.
type Customizer struct {
	*component.Base
	cfg         config.CustomizerConfig
	hasFields   bool
	hasSections bool
	hasPanels   bool
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.CustomizerConfig
	if err := component.Decode(Name, slice, svc, &cfg); err != nil {
		return nil, err
	}
	return &Customizer{
		Base:        component.NewBase(Name, svc, log),
		cfg:         cfg,
		hasFields:   slice.Has("fields"),
		hasSections: slice.Has("sections"),
		hasPanels:   slice.Has("panels"),
	}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"Customizer"},
		Description: "Add customizer settings, controls, sections and panels",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (c *Customizer) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := c.Begin(ctx); err != nil {
		return nil, err
	}
	if c.hasFields {
		c.Binder.Action("customize_register", "fields", c.fields, ports.DefaultPriority, 1)
	}
	if c.hasSections {
		c.Binder.Action("customize_register", "sections", c.sections, ports.DefaultPriority, 1)
	}
	if c.hasPanels {
		c.Binder.Action("customize_register", "panels", c.panels, ports.DefaultPriority, 1)
	}
	return c.Done()
}

func (c *Customizer) fields(_ context.Context, args ...any) any {
	wp, ok := manager(args)
	if !ok {
		c.Log.Warn("customize_register fired without a customizer")
		return nil
	}
	for _, field := range c.cfg.Fields {
		id, _ := field["settings"].(string)
		wp.AddSetting(id, SettingArgs(field))
		wp.AddControl(id, ControlArgs(field))
	}
	return nil
}

func (c *Customizer) sections(_ context.Context, args ...any) any {
	wp, ok := manager(args)
	if !ok {
		c.Log.Warn("customize_register fired without a customizer")
		return nil
	}
	for _, section := range c.cfg.Sections {
		id, _ := section["id"].(string)
		wp.AddSection(id, section)
	}
	return nil
}

func (c *Customizer) panels(_ context.Context, args ...any) any {
	wp, ok := manager(args)
	if !ok {
		c.Log.Warn("customize_register fired without a customizer")
		return nil
	}
	for _, panel := range c.cfg.Panels {
		id, _ := panel["id"].(string)
		wp.AddPanel(id, panel)
	}
	return nil
}

func manager(args []any) (ports.Customizer, bool) {
	wp, ok := component.Arg(args, 0).(ports.Customizer)
	return wp, ok
}

// SettingArgs returns a copy of field without the control-only properties.
func SettingArgs(field map[string]any) map[string]any {
	return without(field, controlProperties)
}

// ControlArgs returns a copy of field without the setting-only properties.
func ControlArgs(field map[string]any) map[string]any {
	return without(field, settingProperties)
}

func without(args map[string]any, drop []string) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}
	for _, k := range drop {
		delete(out, k)
	}
	return out
}
