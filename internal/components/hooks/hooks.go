// Package hooks adds and removes named host callbacks from configuration.
package hooks

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

// Name is the configuration key of the component.
const Name = "hooks"

var errUnresolved = errors.New("callback name does not resolve")

// Hooks applies its entries on `wp`, late enough for request conditionals
// to be answerable.
type Hooks struct {
	*component.Base
	cfg config.HooksConfig
	// order is "add" and "remove" as they appear in the document.
	order []string
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.HooksConfig
	if err := component.Decode(Name, slice, svc, &cfg, "callables"); err != nil {
		return nil, err
	}
	var order []string
	for _, key := range slice.Keys() {
		if key == "add" || key == "remove" {
			order = append(order, key)
		}
	}
	return &Hooks{
		Base:  component.NewBase(Name, svc, log),
		cfg:   cfg,
		order: order,
	}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"Hooks"},
		Description: "Add or remove action and filter callbacks",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (h *Hooks) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := h.Begin(ctx); err != nil {
		return nil, err
	}
	if len(h.order) > 0 {
		h.Binder.Action("wp", "apply_hooks", h.apply, ports.DefaultPriority, 1)
	}
	return h.Done()
}

func (h *Hooks) apply(context.Context, ...any) any {
	for _, key := range h.order {
		if key == "add" {
			h.add()
		} else {
			h.remove()
		}
	}
	return nil
}

func (h *Hooks) add() {
	for _, entry := range h.cfg.Add {
		if !entry.Conditional.Eval(h.Svc.Conditions) {
			continue
		}
		cb, ok := h.Svc.Callables.Lookup(entry.Callback)
		if !ok {
			h.Log.Error(themeerrors.NewHookError(entry.Tag, entry.Callback, errUnresolved), "skipping hook")
			continue
		}
		h.Binder.AddFilter(entry.Tag, cb, priority(entry), acceptedArgs(entry))
	}
}

func (h *Hooks) remove() {
	for _, entry := range h.cfg.Remove {
		if !entry.Conditional.Eval(h.Svc.Conditions) {
			continue
		}
		h.Binder.RemoveFilter(entry.Tag, entry.Callback, priority(entry))
	}
}

func priority(e config.HookEntry) int {
	if e.Priority == nil {
		return ports.DefaultPriority
	}
	return *e.Priority
}

func acceptedArgs(e config.HookEntry) int {
	if e.Args == nil {
		return ports.DefaultAcceptedArgs
	}
	return *e.Args
}
