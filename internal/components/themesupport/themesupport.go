// Package themesupport adds and removes theme feature flags.
package themesupport

import (
	"context"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "theme-support"

// ThemeSupport removes, then adds, features during init.
type ThemeSupport struct {
	*component.Base
	cfg config.ThemeSupportConfig
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.ThemeSupportConfig
	if err := component.Decode(Name, slice, svc, &cfg, "features"); err != nil {
		return nil, err
	}
	return &ThemeSupport{Base: component.NewBase(Name, svc, log), cfg: cfg}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"ThemeSupport"},
		Description: "Add and remove theme features",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (s *ThemeSupport) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := s.Begin(ctx); err != nil {
		return nil, err
	}
	for _, feature := range s.cfg.Remove {
		s.Svc.Features.RemoveThemeSupport(feature)
	}
	for _, pair := range s.cfg.Add {
		s.Svc.Features.AddThemeSupport(pair.Key, pair.Value)
	}
	return s.Done()
}
