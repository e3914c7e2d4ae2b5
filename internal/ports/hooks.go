package ports

import "context"

const (
	// DefaultPriority is the priority callbacks run at when none is configured.
	DefaultPriority = 10
	// DefaultAcceptedArgs is the number of arguments passed to a callback when none is configured.
	DefaultAcceptedArgs = 1
)

// HookFunc is a callback attached to a named hook. For filters args[0] is the
// value being filtered and the return value replaces it. Actions ignore the
// return value.
type HookFunc func(ctx context.Context, args ...any) any

// Callback pairs a stable identifier with the function the host invokes.
// Removal matches on ID, so two callbacks with the same ID are the same callback.
type Callback struct {
	ID string
	Fn HookFunc
}

// Subscription describes one callback attached to a hook.
type Subscription struct {
	Tag          string
	CallbackID   string
	Priority     int
	AcceptedArgs int
}

// Hooks is the host's event system. Callbacks on a tag run in ascending
// priority order; callbacks with equal priority run in the order they were added.
type Hooks interface {
	AddFilter(tag string, cb Callback, priority, acceptedArgs int) Subscription
	AddAction(tag string, cb Callback, priority, acceptedArgs int) Subscription
	RemoveFilter(tag, callbackID string, priority int) bool
	RemoveAction(tag, callbackID string, priority int) bool
	// HasFilter reports whether callbackID is attached to tag. An empty id matches any callback.
	HasFilter(tag, callbackID string) bool
	ApplyFilters(ctx context.Context, tag string, value any, args ...any) any
	DoAction(ctx context.Context, tag string, args ...any)
}

// Callables resolves callback names written in configuration, such as
// `genesis_do_post_title` or `__return_false`.
type Callables interface {
	Lookup(name string) (Callback, bool)
}
