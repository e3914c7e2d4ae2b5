// Package textdomain loads the theme's translation catalog.
package textdomain

import (
	"context"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "text-domain"

// TextDomain loads `domain` from `path` during init.
type TextDomain struct {
	*component.Base
	cfg config.TextDomainConfig
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.TextDomainConfig
	if err := component.Decode(Name, slice, svc, &cfg, "translations", "content"); err != nil {
		return nil, err
	}
	return &TextDomain{Base: component.NewBase(Name, svc, log), cfg: cfg}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"TextDomain"},
		Description: "Load the theme text domain",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (d *TextDomain) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := d.Begin(ctx); err != nil {
		return nil, err
	}
	if d.cfg.Domain == nil {
		return d.Done()
	}

	domain, path := *d.cfg.Domain, Path(d.Svc, d.cfg.Path)
	load := d.Svc.Translations.LoadThemeTextDomain
	if d.Svc.Content.Theme().Child {
		load = d.Svc.Translations.LoadChildThemeTextDomain
	}
	if !load(domain, path) {
		d.Log.WithFields(map[string]any{"domain": domain, "path": path}).Debug("no catalogs loaded")
	}
	return d.Done()
}

// Path is the configured path, or the languages directory of the stylesheet
// directory when none is configured.
func Path(svc ports.Services, configured *string) string {
	if configured != nil {
		return *configured
	}
	return svc.Content.Theme().StylesheetDir + "/languages"
}
