// Package hooks is an in-memory implementation of the host's event system.
package hooks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
	"github.com/alexisbeaulieu97/themecore/internal/trace"
	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

// Surface is the trace surface dispatcher calls are recorded under.
const Surface = "hooks"

// Dispatcher runs callbacks attached to named hooks in priority order.
// Callbacks that panic are logged and skipped; a filter keeps its previous value.
type Dispatcher struct {
	logger *logger.Logger
	trace  *trace.Trace

	mu     sync.RWMutex
	hooks  map[string][]entry
	nextID int
	errs   []error
}

type entry struct {
	seq      int
	cb       ports.Callback
	priority int
	accepted int
}

// NewDispatcher creates an empty dispatcher. Both arguments may be nil.
func NewDispatcher(log *logger.Logger, tr *trace.Trace) *Dispatcher {
	return &Dispatcher{
		logger: log,
		trace:  tr,
		hooks:  make(map[string][]entry),
	}
}

// AddFilter implements ports.Hooks.
func (d *Dispatcher) AddFilter(tag string, cb ports.Callback, priority, acceptedArgs int) ports.Subscription {
	return d.add("add_filter", tag, cb, priority, acceptedArgs)
}

// AddAction implements ports.Hooks.
func (d *Dispatcher) AddAction(tag string, cb ports.Callback, priority, acceptedArgs int) ports.Subscription {
	return d.add("add_action", tag, cb, priority, acceptedArgs)
}

func (d *Dispatcher) add(op, tag string, cb ports.Callback, priority, acceptedArgs int) ports.Subscription {
	if acceptedArgs < 0 {
		acceptedArgs = 0
	}

	d.mu.Lock()
	d.nextID++
	d.hooks[tag] = append(d.hooks[tag], entry{
		seq:      d.nextID,
		cb:       cb,
		priority: priority,
		accepted: acceptedArgs,
	})
	d.mu.Unlock()

	d.trace.Record(Surface, op, tag, cb.ID, priority, acceptedArgs)
	return ports.Subscription{Tag: tag, CallbackID: cb.ID, Priority: priority, AcceptedArgs: acceptedArgs}
}

// RemoveFilter implements ports.Hooks. The callback must match both id and priority.
func (d *Dispatcher) RemoveFilter(tag, callbackID string, priority int) bool {
	return d.remove("remove_filter", tag, callbackID, priority)
}

// RemoveAction implements ports.Hooks.
func (d *Dispatcher) RemoveAction(tag, callbackID string, priority int) bool {
	return d.remove("remove_action", tag, callbackID, priority)
}

func (d *Dispatcher) remove(op, tag, callbackID string, priority int) bool {
	d.mu.Lock()
	removed := false
	entries := d.hooks[tag]
	for i, e := range entries {
		if e.cb.ID == callbackID && e.priority == priority {
			d.hooks[tag] = append(entries[:i:i], entries[i+1:]...)
			removed = true
			break
		}
	}
	if len(d.hooks[tag]) == 0 {
		delete(d.hooks, tag)
	}
	d.mu.Unlock()

	d.trace.Record(Surface, op, tag, callbackID, priority)
	return removed
}

// HasFilter implements ports.Hooks.
func (d *Dispatcher) HasFilter(tag, callbackID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, e := range d.hooks[tag] {
		if callbackID == "" || e.cb.ID == callbackID {
			return true
		}
	}
	return false
}

// ApplyFilters implements ports.Hooks.
func (d *Dispatcher) ApplyFilters(ctx context.Context, tag string, value any, args ...any) any {
	d.trace.Record(Surface, "apply_filters", tag)

	for _, e := range d.snapshot(tag) {
		full := append([]any{value}, args...)
		out, ok := d.invoke(ctx, tag, e, full)
		if ok {
			value = out
		}
	}
	return value
}

// DoAction implements ports.Hooks.
func (d *Dispatcher) DoAction(ctx context.Context, tag string, args ...any) {
	d.trace.Record(Surface, "do_action", tag)

	for _, e := range d.snapshot(tag) {
		d.invoke(ctx, tag, e, args)
	}
}

// Subscriptions lists the callbacks attached to tag in the order they would run.
func (d *Dispatcher) Subscriptions(tag string) []ports.Subscription {
	entries := d.snapshot(tag)
	out := make([]ports.Subscription, 0, len(entries))
	for _, e := range entries {
		out = append(out, ports.Subscription{Tag: tag, CallbackID: e.cb.ID, Priority: e.priority, AcceptedArgs: e.accepted})
	}
	return out
}

// Tags lists tags with at least one callback, filtered by prefix and sorted.
func (d *Dispatcher) Tags(prefix string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var tags []string
	for tag, entries := range d.hooks {
		if len(entries) > 0 && strings.HasPrefix(tag, prefix) {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// Errors returns the callback failures seen so far.
func (d *Dispatcher) Errors() []error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]error(nil), d.errs...)
}

func (d *Dispatcher) snapshot(tag string) []entry {
	d.mu.RLock()
	entries := append([]entry(nil), d.hooks[tag]...)
	d.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority < entries[j].priority
		}
		return entries[i].seq < entries[j].seq
	})
	return entries
}

func (d *Dispatcher) invoke(ctx context.Context, tag string, e entry, args []any) (out any, ok bool) {
	if e.cb.Fn == nil {
		return nil, false
	}
	if len(args) > e.accepted {
		args = args[:e.accepted]
	}

	defer func() {
		if r := recover(); r != nil {
			err := themeerrors.NewHookError(tag, e.cb.ID, fmt.Errorf("callback panicked: %v", r))
			d.mu.Lock()
			d.errs = append(d.errs, err)
			d.mu.Unlock()
			d.logger.WithFields(map[string]any{"tag": tag, "callback": e.cb.ID}).Error(err, "hook callback failed")
			out, ok = nil, false
		}
	}()

	return e.cb.Fn(ctx, args...), true
}
