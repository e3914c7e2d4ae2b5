// Package component defines the contract shared by every theme component and
// the static registry that maps configuration identifiers to factories.
package component

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

// Component turns one configuration slice into host registrations.
//
// Init is called at most once. It attaches callbacks to host events and
// returns what it attached; the real work happens when the host fires those
// events.
type Component interface {
	Name() string
	Init(ctx context.Context) ([]ports.Subscription, error)
}

// Factory decodes and validates a slice and returns a ready component.
type Factory func(slice config.Slice, svc ports.Services, log *logger.Logger) (Component, error)

// Base carries the state every component needs. Embed a *Base and call Begin
// at the top of Init.
type Base struct {
	Svc    ports.Services
	Log    *logger.Logger
	Binder *Binder

	name        string
	mu          sync.Mutex
	initialized bool
}

// NewBase prepares the shared state for the named component.
func NewBase(name string, svc ports.Services, log *logger.Logger) *Base {
	log = log.WithComponent(name)
	return &Base{
		Svc:    svc,
		Log:    log,
		Binder: NewBinder(name, svc.Hooks, log),
		name:   name,
	}
}

// Name returns the component identifier.
func (b *Base) Name() string {
	return b.name
}

// Begin marks the component initialized. A second call fails.
func (b *Base) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return themeerrors.NewComponentError(b.name, err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		return themeerrors.NewComponentError(b.name, fmt.Errorf("already initialized"))
	}
	b.initialized = true
	return nil
}

// Arg returns the i-th callback argument, or nil when the hook fired with
// fewer arguments.
func Arg(args []any, i int) any {
	if i < 0 || i >= len(args) {
		return nil
	}
	return args[i]
}

// Done returns the subscriptions made so far.
func (b *Base) Done() ([]ports.Subscription, error) {
	return b.Binder.Subscriptions(), nil
}

// Decode is the common first step of a Factory: decode and validate the slice
// into out and check the host surfaces the component depends on.
func Decode(name string, slice config.Slice, svc ports.Services, out any, surfaces ...string) error {
	if err := svc.Check(append([]string{"hooks"}, surfaces...)...); err != nil {
		return themeerrors.NewComponentError(name, err)
	}
	if out == nil {
		return nil
	}
	return config.DecodeSlice(name, slice, out)
}
