package memory

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/themecore/internal/ports"
	"github.com/alexisbeaulieu97/themecore/internal/trace"
)

// Callables resolves callback names. The `__return_*` helpers always resolve.
// With stubs enabled, any other unknown name resolves to a callback that
// records its invocation and passes a filtered value through unchanged.
type Callables struct {
	trace *trace.Trace
	stubs bool

	mu    sync.RWMutex
	named map[string]ports.HookFunc
}

// NewCallables returns a table with the built-in helpers.
func NewCallables(tr *trace.Trace, stubs bool) *Callables {
	return &Callables{trace: tr, stubs: stubs, named: make(map[string]ports.HookFunc)}
}

var builtins = map[string]ports.HookFunc{
	"__return_true":         func(context.Context, ...any) any { return true },
	"__return_false":        func(context.Context, ...any) any { return false },
	"__return_null":         func(context.Context, ...any) any { return nil },
	"__return_zero":         func(context.Context, ...any) any { return 0 },
	"__return_empty_array":  func(context.Context, ...any) any { return []any{} },
	"__return_empty_string": func(context.Context, ...any) any { return "" },
}

// Define adds or replaces a named callback.
func (c *Callables) Define(name string, fn ports.HookFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.named[name] = fn
}

// Lookup implements ports.Callables.
func (c *Callables) Lookup(name string) (ports.Callback, bool) {
	if fn, ok := builtins[name]; ok {
		return ports.Callback{ID: name, Fn: fn}, true
	}

	c.mu.RLock()
	fn, ok := c.named[name]
	c.mu.RUnlock()
	if ok {
		return ports.Callback{ID: name, Fn: c.recorded(name, fn)}, true
	}

	if !c.stubs || name == "" {
		return ports.Callback{}, false
	}
	return ports.Callback{ID: name, Fn: c.recorded(name, passThrough)}, true
}

func (c *Callables) recorded(name string, fn ports.HookFunc) ports.HookFunc {
	return func(ctx context.Context, args ...any) any {
		c.trace.Record("callables", "invoke", name)
		return fn(ctx, args...)
	}
}

func passThrough(_ context.Context, args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}
