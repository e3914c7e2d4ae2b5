// Package trace records the host calls made while a theme configuration is set up.
package trace

import (
	"fmt"
	"strings"
	"sync"
)

// Call is one recorded host operation.
type Call struct {
	Seq     int
	Surface string
	Op      string
	Args    []any
}

// Arg returns the i-th argument or nil when absent.
func (c Call) Arg(i int) any {
	if i < 0 || i >= len(c.Args) {
		return nil
	}
	return c.Args[i]
}

func (c Call) String() string {
	parts := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		parts = append(parts, fmt.Sprintf("%v", arg))
	}
	return fmt.Sprintf("%s(%s)", c.Op, strings.Join(parts, ", "))
}

// Trace is an append-only, concurrency-safe call log. A nil *Trace ignores records.
type Trace struct {
	mu    sync.Mutex
	calls []Call
}

// New returns an empty trace.
func New() *Trace {
	return &Trace{}
}

// Record appends a call.
func (t *Trace) Record(surface, op string, args ...any) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, Call{Seq: len(t.calls) + 1, Surface: surface, Op: op, Args: args})
}

// Calls returns a copy of every recorded call in order.
func (t *Trace) Calls() []Call {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Call(nil), t.calls...)
}

// Ops returns the calls with the given op name.
func (t *Trace) Ops(op string) []Call {
	var out []Call
	for _, call := range t.Calls() {
		if call.Op == op {
			out = append(out, call)
		}
	}
	return out
}

// OpsFor returns the calls with the given op whose first argument equals first.
func (t *Trace) OpsFor(op string, first any) []Call {
	var out []Call
	for _, call := range t.Ops(op) {
		if call.Arg(0) == first {
			out = append(out, call)
		}
	}
	return out
}

// Count returns how many calls with the given op were recorded.
func (t *Trace) Count(op string) int {
	return len(t.Ops(op))
}

// Surface returns the calls recorded against one surface.
func (t *Trace) Surface(surface string) []Call {
	var out []Call
	for _, call := range t.Calls() {
		if call.Surface == surface {
			out = append(out, call)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (t *Trace) Reset() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = nil
}
