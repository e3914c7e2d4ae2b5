// Package guard holds the configuration values that are either fixed or
// computed by the host at the point of use: guard predicates and markup values.
//
// In a theme document a predicate is written as
//
//	conditional: false                  # static
//	conditional: is_front_page          # deferred, no arguments
//	conditional: is_singular:page,post  # deferred, with arguments
//
// and an omitted predicate always passes. A value is either a plain string or
// a mapping naming a host computation:
//
//	before: '<div class="wrap">'
//	before: {callback: hero_open_markup}
package guard

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resolver evaluates named predicates. ok is false when the name is not invocable.
type Resolver interface {
	Predicate(name string, args []string) (result bool, ok bool)
}

// ValueResolver computes named values. ok is false when the name is unknown.
type ValueResolver interface {
	Value(name string) (string, bool)
}

type predicateKind int

const (
	kindAlways predicateKind = iota
	kindStatic
	kindDeferred
)

// Predicate is a nullary guard. The zero value always passes.
type Predicate struct {
	kind   predicateKind
	static bool
	name   string
	args   []string
}

// Always returns a predicate that always passes.
func Always() Predicate {
	return Predicate{kind: kindAlways}
}

// Static returns a predicate with a fixed outcome.
func Static(v bool) Predicate {
	return Predicate{kind: kindStatic, static: v}
}

// Ref returns a predicate resolved by name when evaluated.
func Ref(name string, args ...string) Predicate {
	return Predicate{kind: kindDeferred, name: name, args: append([]string(nil), args...)}
}

// ParsePredicate reads the `name` or `name:arg1,arg2` form.
func ParsePredicate(raw string) (Predicate, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Predicate{}, fmt.Errorf("predicate reference is empty")
	}
	name, rest, found := strings.Cut(raw, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Predicate{}, fmt.Errorf("predicate reference %q has no name", raw)
	}
	if !found {
		return Ref(name), nil
	}
	var args []string
	for _, arg := range strings.Split(rest, ",") {
		if arg = strings.TrimSpace(arg); arg != "" {
			args = append(args, arg)
		}
	}
	return Ref(name, args...), nil
}

// UnmarshalYAML accepts booleans, null and predicate references.
func (p *Predicate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: conditional must be a boolean or a predicate name", node.Line)
	}
	switch node.Tag {
	case "!!null":
		*p = Always()
		return nil
	case "!!bool":
		var v bool
		if err := node.Decode(&v); err != nil {
			return err
		}
		*p = Static(v)
		return nil
	}
	parsed, err := ParsePredicate(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = parsed
	return nil
}

// Eval resolves the predicate. A deferred reference the resolver cannot invoke fails.
func (p Predicate) Eval(r Resolver) bool {
	switch p.kind {
	case kindStatic:
		return p.static
	case kindDeferred:
		if r == nil {
			return false
		}
		result, ok := r.Predicate(p.name, p.args)
		return ok && result
	default:
		return true
	}
}

// Deferred reports whether evaluation needs a resolver.
func (p Predicate) Deferred() bool {
	return p.kind == kindDeferred
}

// Name returns the referenced predicate name for deferred predicates.
func (p Predicate) Name() string {
	return p.name
}

func (p Predicate) String() string {
	switch p.kind {
	case kindStatic:
		return fmt.Sprintf("%t", p.static)
	case kindDeferred:
		if len(p.args) == 0 {
			return p.name
		}
		return p.name + ":" + strings.Join(p.args, ",")
	default:
		return "always"
	}
}

// Value is a markup string fixed in configuration or computed by the host.
type Value struct {
	static   string
	callback string
}

// Text returns a fixed value.
func Text(s string) Value {
	return Value{static: s}
}

// Computed returns a value produced by the named host computation.
func Computed(name string) Value {
	return Value{callback: name}
}

// UnmarshalYAML accepts a scalar or a {callback: name} mapping.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = Text(node.Value)
		return nil
	case yaml.MappingNode:
		var ref struct {
			Callback string `yaml:"callback"`
		}
		if err := node.Decode(&ref); err != nil {
			return err
		}
		if strings.TrimSpace(ref.Callback) == "" {
			return fmt.Errorf("line %d: computed value requires a callback name", node.Line)
		}
		*v = Computed(strings.TrimSpace(ref.Callback))
		return nil
	default:
		return fmt.Errorf("line %d: value must be a string or {callback: name}", node.Line)
	}
}

// Resolve returns the final string. ok is false when a computed value cannot be produced.
func (v Value) Resolve(r ValueResolver) (string, bool) {
	if v.callback == "" {
		return v.static, true
	}
	if r == nil {
		return "", false
	}
	return r.Value(v.callback)
}

// IsComputed reports whether the value is produced by the host.
func (v Value) IsComputed() bool {
	return v.callback != ""
}
