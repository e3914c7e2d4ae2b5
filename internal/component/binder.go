package component

import (
	"sync"

	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Binder attaches a component's callbacks to the host and remembers what it
// attached. Callback ids are prefixed with the component name so they can be
// removed later by id.
type Binder struct {
	name  string
	hooks ports.Hooks
	log   *logger.Logger

	mu   sync.Mutex
	subs []ports.Subscription
}

// NewBinder returns a binder for the named component.
func NewBinder(name string, hooks ports.Hooks, log *logger.Logger) *Binder {
	return &Binder{name: name, hooks: hooks, log: log}
}

// ID returns the callback id used for one of the component's own callbacks.
func (b *Binder) ID(method string) string {
	return b.name + "::" + method
}

// Callback wraps fn in a callback carrying the component-scoped id.
func (b *Binder) Callback(method string, fn ports.HookFunc) ports.Callback {
	return ports.Callback{ID: b.ID(method), Fn: fn}
}

// Filter attaches one of the component's own callbacks to a filter.
func (b *Binder) Filter(tag, method string, fn ports.HookFunc, priority, acceptedArgs int) ports.Subscription {
	return b.AddFilter(tag, b.Callback(method, fn), priority, acceptedArgs)
}

// Action attaches one of the component's own callbacks to an action.
func (b *Binder) Action(tag, method string, fn ports.HookFunc, priority, acceptedArgs int) ports.Subscription {
	return b.AddAction(tag, b.Callback(method, fn), priority, acceptedArgs)
}

// AddFilter attaches an arbitrary callback, such as a named host function.
func (b *Binder) AddFilter(tag string, cb ports.Callback, priority, acceptedArgs int) ports.Subscription {
	sub := b.hooks.AddFilter(tag, cb, priority, acceptedArgs)
	b.record("add_filter", sub)
	return sub
}

// AddAction attaches an arbitrary callback to an action.
func (b *Binder) AddAction(tag string, cb ports.Callback, priority, acceptedArgs int) ports.Subscription {
	sub := b.hooks.AddAction(tag, cb, priority, acceptedArgs)
	b.record("add_action", sub)
	return sub
}

// RemoveFilter detaches a callback by id. The removal is not a subscription.
func (b *Binder) RemoveFilter(tag, callbackID string, priority int) bool {
	removed := b.hooks.RemoveFilter(tag, callbackID, priority)
	b.log.WithFields(map[string]any{
		"tag":      tag,
		"callback": callbackID,
		"priority": priority,
		"removed":  removed,
	}).Debug("remove_filter")
	return removed
}

// RemoveAction detaches an action callback by id.
func (b *Binder) RemoveAction(tag, callbackID string, priority int) bool {
	removed := b.hooks.RemoveAction(tag, callbackID, priority)
	b.log.WithFields(map[string]any{
		"tag":      tag,
		"callback": callbackID,
		"priority": priority,
		"removed":  removed,
	}).Debug("remove_action")
	return removed
}

// Subscriptions returns a copy of everything attached so far.
func (b *Binder) Subscriptions() []ports.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ports.Subscription(nil), b.subs...)
}

func (b *Binder) record(op string, sub ports.Subscription) {
	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	b.log.WithFields(map[string]any{
		"tag":      sub.Tag,
		"callback": sub.CallbackID,
		"priority": sub.Priority,
		"args":     sub.AcceptedArgs,
	}).Debug(op)
}
