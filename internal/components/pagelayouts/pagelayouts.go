// Package pagelayouts registers and unregisters selectable page layouts.
package pagelayouts

import (
	"context"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "page-layouts"

// Built-in layout names.
const (
	FullWidthContent      = "full-width-content"
	ContentSidebar        = "content-sidebar"
	SidebarContent        = "sidebar-content"
	ContentSidebarSidebar = "content-sidebar-sidebar"
	SidebarContentSidebar = "sidebar-content-sidebar"
	SidebarSidebarContent = "sidebar-sidebar-content"
)

// PageLayouts changes the layout registry during init.
type PageLayouts struct {
	*component.Base
	cfg config.PageLayoutsConfig
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.PageLayoutsConfig
	if err := component.Decode(Name, slice, svc, &cfg, "layouts"); err != nil {
		return nil, err
	}
	return &PageLayouts{Base: component.NewBase(Name, svc, log), cfg: cfg}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"PageLayouts"},
		Description: "Register and unregister page layouts",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (p *PageLayouts) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := p.Begin(ctx); err != nil {
		return nil, err
	}
	for _, pair := range p.cfg.Register {
		p.Svc.Layouts.RegisterLayout(pair.Key, pair.Value)
	}
	for _, name := range p.cfg.Unregister {
		p.Svc.Layouts.UnregisterLayout(name)
	}
	return p.Done()
}
