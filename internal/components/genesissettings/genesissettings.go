// Package genesissettings changes the framework's theme setting defaults and
// pins individual settings to fixed values.
package genesissettings

import (
	"context"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "genesis-settings"

const (
	defaultsTag = "genesis_theme_settings_defaults"
	// ForcePrefix is prepended to a setting key to form its short-circuit filter.
	ForcePrefix = "genesis_pre_get_option_"
)

// GenesisSettings handles `defaults` and `force`.
type GenesisSettings struct {
	*component.Base
	cfg         config.GenesisSettingsConfig
	hasDefaults bool
	hasForce    bool
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.GenesisSettingsConfig
	if err := component.Decode(Name, slice, svc, &cfg); err != nil {
		return nil, err
	}
	return &GenesisSettings{
		Base:        component.NewBase(Name, svc, log),
		cfg:         cfg,
		hasDefaults: slice.Has("defaults"),
		hasForce:    slice.Has("force"),
	}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"GenesisSettings"},
		Description: "Genesis theme setting defaults and forced values",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (g *GenesisSettings) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := g.Begin(ctx); err != nil {
		return nil, err
	}
	if g.hasDefaults {
		g.Binder.Filter(defaultsTag, "set_defaults", g.setDefaults, ports.DefaultPriority, 1)
	}
	if g.hasForce {
		for _, pair := range g.cfg.Force {
			value := pair.Value
			g.Binder.Filter(ForcePrefix+pair.Key, "force_"+pair.Key, func(context.Context, ...any) any {
				return value
			}, ports.DefaultPriority, 1)
		}
	}
	return g.Done()
}

// setDefaults overlays the configured keys on the host defaults.
func (g *GenesisSettings) setDefaults(_ context.Context, args ...any) any {
	out := make(map[string]any)
	if len(args) > 0 {
		if defaults, ok := args[0].(map[string]any); ok {
			for k, v := range defaults {
				out[k] = v
			}
		} else if args[0] != nil {
			g.Log.Warn("theme settings defaults are not a map")
			return args[0]
		}
	}
	for _, pair := range g.cfg.Defaults {
		out[pair.Key] = pair.Value
	}
	return out
}
