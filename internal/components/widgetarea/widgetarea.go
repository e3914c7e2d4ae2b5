// Package widgetarea registers sidebars and renders them at configured hooks.
package widgetarea

import (
	"context"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/guard"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "widget-area"

// Sidebars the framework registers itself.
const (
	HeaderRight = "header-right"
	Sidebar     = "sidebar"
	SidebarAlt  = "sidebar-alt"
)

const genesisTemplate = "genesis"

// WidgetArea handles `register` and `unregister`.
type WidgetArea struct {
	*component.Base
	cfg config.WidgetAreaConfig
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.WidgetAreaConfig
	if err := component.Decode(Name, slice, svc, &cfg, "sidebars", "content"); err != nil {
		return nil, err
	}
	return &WidgetArea{Base: component.NewBase(Name, svc, log), cfg: cfg}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"WidgetArea"},
		Description: "Register, place and unregister widget areas",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component. Areas are registered immediately;
// each area with a location renders when that hook fires.
func (w *WidgetArea) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := w.Begin(ctx); err != nil {
		return nil, err
	}

	genesis := w.isGenesis()
	for _, area := range w.cfg.Register {
		sidebar := ports.Sidebar{
			ID:          area.ID,
			Name:        area.Name,
			Description: area.Description,
			BeforeTitle: area.BeforeTitle,
			AfterTitle:  area.AfterTitle,
		}
		if genesis {
			w.Svc.Sidebars.RegisterGenesisWidgetArea(sidebar)
		} else {
			w.Svc.Sidebars.RegisterSidebar(sidebar)
		}
	}

	for _, area := range w.cfg.Register {
		if area.Location == "" {
			continue
		}
		w.Binder.Action(area.Location, "display_"+area.ID, w.display(area), priority(area), 1)
	}

	for _, id := range w.cfg.Unregister {
		w.Svc.Sidebars.UnregisterSidebar(id)
	}
	return w.Done()
}

func (w *WidgetArea) display(area config.WidgetAreaEntry) ports.HookFunc {
	return func(ctx context.Context, _ ...any) any {
		if !area.Conditional.Eval(w.Svc.Conditions) {
			return nil
		}
		markup := ports.AreaMarkup{
			Before: w.resolve(area.Before, DefaultBefore(area.ID)),
			After:  w.resolve(area.After, DefaultAfter),
		}
		if w.isGenesis() {
			w.Svc.Sidebars.GenesisWidgetArea(ctx, area.ID, markup)
		} else {
			w.Svc.Sidebars.DynamicSidebar(ctx, area.ID, markup)
		}
		return nil
	}
}

func (w *WidgetArea) resolve(v *guard.Value, fallback string) string {
	if v == nil {
		return fallback
	}
	s, ok := v.Resolve(w.Svc.Values)
	if !ok {
		w.Log.Warn("computed markup value unavailable")
		return ""
	}
	return s
}

func (w *WidgetArea) isGenesis() bool {
	return w.Svc.Content.Theme().Template == genesisTemplate
}

// DefaultBefore opens the wrapper of an area rendered without `before`.
func DefaultBefore(id string) string {
	return `<div class="` + id + ` widget-area"><div class="wrap">`
}

// DefaultAfter closes the default wrapper.
const DefaultAfter = "</div></div>"

func priority(area config.WidgetAreaEntry) int {
	if area.Priority == nil {
		return ports.DefaultPriority
	}
	return *area.Priority
}
