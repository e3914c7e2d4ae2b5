package guard

import "sync"

// PredicateFunc evaluates a named predicate with its configured arguments.
type PredicateFunc func(args []string) bool

// ValueFunc computes a named value.
type ValueFunc func() string

// Table is a map-backed Resolver and ValueResolver.
type Table struct {
	mu         sync.RWMutex
	predicates map[string]PredicateFunc
	values     map[string]ValueFunc
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		predicates: make(map[string]PredicateFunc),
		values:     make(map[string]ValueFunc),
	}
}

// Define adds or replaces a named predicate.
func (t *Table) Define(name string, fn PredicateFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.predicates[name] = fn
}

// DefineValue adds or replaces a named value.
func (t *Table) DefineValue(name string, fn ValueFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.values[name] = fn
}

// Predicate implements Resolver.
func (t *Table) Predicate(name string, args []string) (bool, bool) {
	if t == nil {
		return false, false
	}
	t.mu.RLock()
	fn, ok := t.predicates[name]
	t.mu.RUnlock()
	if !ok || fn == nil {
		return false, false
	}
	return fn(args), true
}

// Value implements ValueResolver.
func (t *Table) Value(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	t.mu.RLock()
	fn, ok := t.values[name]
	t.mu.RUnlock()
	if !ok || fn == nil {
		return "", false
	}
	return fn(), true
}
