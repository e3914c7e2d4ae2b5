// Package demoimport wires the one-click demo import plugin: it supplies the
// import descriptor and, after the import, points the front page, posts page
// and menu locations at the imported content.
package demoimport

import (
	"context"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "demo-import"

const (
	afterImport      = "pt-ocdi/after_all_import_execution"
	showOnFront      = "show_on_front"
	navMenuLocations = "nav_menu_locations"
)

// DemoImport handles `import_settings`, `page_settings` and `menu_settings`.
type DemoImport struct {
	*component.Base
	cfg       config.DemoImportConfig
	hasImport bool
	hasPages  bool
	hasMenus  bool
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.DemoImportConfig
	if err := component.Decode(Name, slice, svc, &cfg, "callables", "options", "content"); err != nil {
		return nil, err
	}
	return &DemoImport{
		Base:      component.NewBase(Name, svc, log),
		cfg:       cfg,
		hasImport: slice.Has("import_settings"),
		hasPages:  slice.Has("page_settings"),
		hasMenus:  slice.Has("menu_settings"),
	}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"DemoImport"},
		Description: "Demo content import settings",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (d *DemoImport) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := d.Begin(ctx); err != nil {
		return nil, err
	}
	if d.hasImport {
		if cb, ok := d.named("__return_true"); ok {
			d.Binder.AddFilter("pt-ocdi/disable_pt_branding", cb, ports.DefaultPriority, 1)
		}
		d.Binder.Filter("pt-ocdi/import_files", "import_settings", d.importSettings, ports.DefaultPriority, 1)
	}
	if d.hasPages {
		d.Binder.Action(afterImport, "set_pages", d.setPages, ports.DefaultPriority, 1)
		if cb, ok := d.named("flush_rewrite_rules"); ok {
			d.Binder.AddAction(afterImport, cb, ports.DefaultPriority, 1)
		}
	}
	if d.hasMenus {
		d.Binder.Action(afterImport, "set_menus", d.setMenus, ports.DefaultPriority, 1)
	}
	return d.Done()
}

func (d *DemoImport) named(name string) (ports.Callback, bool) {
	cb, ok := d.Svc.Callables.Lookup(name)
	if !ok {
		d.Log.With("callback", name).Warn("callback not found")
	}
	return cb, ok
}

func (d *DemoImport) importSettings(context.Context, ...any) any {
	return []any{d.cfg.ImportSettings}
}

func (d *DemoImport) setPages(ctx context.Context, _ ...any) any {
	for _, pair := range d.cfg.PageSettings {
		if pair.Key == showOnFront {
			d.update(ctx, pair.Key, pair.Value)
			continue
		}
		page, ok := d.Svc.Content.PageByTitle(pair.Value)
		if !ok {
			d.Log.WithFields(map[string]any{"option": pair.Key, "title": pair.Value}).Warn("page not found")
			continue
		}
		d.update(ctx, pair.Key, page.ID)
	}
	return nil
}

func (d *DemoImport) update(ctx context.Context, name string, value any) {
	if err := d.Svc.Options.UpdateOption(ctx, name, value); err != nil {
		d.Log.Error(err, "update option "+name)
	}
}

// setMenus assigns each configured menu to its location. Locations already
// assigned and not configured here are kept.
func (d *DemoImport) setMenus(ctx context.Context, _ ...any) any {
	for _, pair := range d.cfg.MenuSettings {
		menu, ok := d.Svc.Content.MenuByName(pair.Value.Name)
		if !ok {
			d.Log.With("menu", pair.Value.Name).Warn("menu not found")
			continue
		}

		locations := map[string]any{}
		current, found, err := d.Svc.Options.GetThemeMod(ctx, navMenuLocations)
		if err != nil {
			d.Log.Error(err, "read menu locations")
			continue
		}
		if existing, isMap := current.(map[string]any); found && isMap {
			for k, v := range existing {
				locations[k] = v
			}
		}
		locations[pair.Value.Location] = menu.TermID

		if err := d.Svc.Options.SetThemeMod(ctx, navMenuLocations, locations); err != nil {
			d.Log.Error(err, "set menu locations")
		}
	}
	return nil
}
