// Package kirki configures the Kirki customizer toolkit: its config, panels,
// sections and fields, plus the customizer defaults it removes.
package kirki

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "kirki"

// HandleConstant names the constant holding the config id fields are added under.
const HandleConstant = "CHILD_THEME_HANDLE"

const defaultHandle = "child-theme"

// Kirki handles `method`, `loader`, `config`, `remove`, `styles`, `scripts`,
// `panels`, `sections` and `fields`.
type Kirki struct {
	*component.Base
	cfg config.KirkiConfig
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.KirkiConfig
	if err := component.Decode(Name, slice, svc, &cfg, "kirki", "constants", "output"); err != nil {
		return nil, err
	}
	return &Kirki{Base: component.NewBase(Name, svc, log), cfg: cfg}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"Kirki"},
		Description: "Kirki config, panels, sections and fields",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component. Panels, sections and fields are added
// immediately; everything else waits for its host event.
func (k *Kirki) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := k.Begin(ctx); err != nil {
		return nil, err
	}
	k.Binder.Filter("kirki/dynamic_css/method", "write_to_file", k.method, ports.DefaultPriority, 1)
	k.Binder.Filter("kirki_config", "remove_loader", k.loader, ports.DefaultPriority, 1)
	k.Binder.Action("after_setup_theme", "add_config", k.addConfig, ports.DefaultPriority, 1)
	k.Binder.Action("customize_register", "remove_defaults", k.removeDefaults, 99, 1)
	k.Binder.Action("customize_controls_print_styles", "styles", k.styles, 99, 1)
	k.Binder.Action("customize_controls_print_scripts", "scripts", k.scripts, 999, 1)

	for _, panel := range k.cfg.Panels {
		k.Svc.Kirki.AddPanel(fmt.Sprint(panel["id"]), panel)
	}
	for _, section := range k.cfg.Sections {
		k.Svc.Kirki.AddSection(fmt.Sprint(section["id"]), section)
	}
	handle := k.handle()
	for _, field := range k.cfg.Fields {
		k.Svc.Kirki.AddField(handle, field)
	}
	return k.Done()
}

func (k *Kirki) handle() string {
	v, ok := k.Svc.Constants.Constant(HandleConstant)
	if !ok || v == nil || v == "" {
		k.Log.With("constant", HandleConstant).Warn("constant not defined, using default config id")
		return defaultHandle
	}
	return fmt.Sprint(v)
}

func (k *Kirki) method(_ context.Context, args ...any) any {
	if k.cfg.Method == "" {
		return component.Arg(args, 0)
	}
	return k.cfg.Method
}

func (k *Kirki) loader(_ context.Context, args ...any) any {
	first := component.Arg(args, 0)
	current, ok := first.(map[string]any)
	if !ok && first != nil {
		k.Log.Warn("kirki config is not a map")
		return first
	}
	return MergeArgs(current, k.cfg.Loader)
}

// MergeArgs returns defaults with every top-level key of args laid over it,
// false and empty values included. Neither input is modified.
func MergeArgs(defaults, args map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(args))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range args {
		out[k] = v
	}
	return out
}

func (k *Kirki) addConfig(context.Context, ...any) any {
	k.Svc.Kirki.AddConfig(k.handle(), k.cfg.Config)
	return nil
}

func (k *Kirki) removeDefaults(_ context.Context, args ...any) any {
	wp, ok := component.Arg(args, 0).(ports.Customizer)
	if !ok {
		k.Log.Warn("customize_register fired without a customizer")
		return nil
	}
	for _, removal := range k.cfg.Remove {
		if !wp.Remove(removal[0], removal[1]) {
			k.Log.WithFields(map[string]any{"kind": removal[0], "id": removal[1]}).Debug("nothing to remove")
		}
	}
	return nil
}

func (k *Kirki) styles(context.Context, ...any) any {
	k.Svc.Output.Write(k.cfg.Styles)
	return nil
}

func (k *Kirki) scripts(context.Context, ...any) any {
	k.Svc.Output.Write(k.cfg.Scripts)
	return nil
}
