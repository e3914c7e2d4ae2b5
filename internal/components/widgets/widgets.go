// Package widgets registers and unregisters widget classes.
package widgets

import (
	"context"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "widgets"

const widgetsPriority = 15

// Widgets changes the widget registry on `widgets_init`.
type Widgets struct {
	*component.Base
	cfg           config.WidgetsConfig
	hasRegister   bool
	hasUnregister bool
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.WidgetsConfig
	if err := component.Decode(Name, slice, svc, &cfg, "widgets"); err != nil {
		return nil, err
	}
	return &Widgets{
		Base:          component.NewBase(Name, svc, log),
		cfg:           cfg,
		hasRegister:   slice.Has("register"),
		hasUnregister: slice.Has("unregister"),
	}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"Widgets"},
		Description: "Register and unregister widgets",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component. Unregistration is attached first so
// a class listed in both ends up registered.
func (w *Widgets) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := w.Begin(ctx); err != nil {
		return nil, err
	}
	if w.hasUnregister {
		w.Binder.Action("widgets_init", "unregister", w.unregister, widgetsPriority, 1)
	}
	if w.hasRegister {
		w.Binder.Action("widgets_init", "register", w.register, widgetsPriority, 1)
	}
	return w.Done()
}

func (w *Widgets) register(context.Context, ...any) any {
	for _, class := range w.cfg.Register {
		w.Svc.Widgets.RegisterWidget(class)
	}
	return nil
}

func (w *Widgets) unregister(context.Context, ...any) any {
	for _, class := range w.cfg.Unregister {
		w.Svc.Widgets.UnregisterWidget(class)
	}
	return nil
}
