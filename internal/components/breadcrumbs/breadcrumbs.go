// Package breadcrumbs overrides the framework's breadcrumb arguments.
package breadcrumbs

import (
	"context"

	"dario.cat/mergo"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "breadcrumbs"

// Breadcrumbs merges its whole slice over `genesis_breadcrumb_args`.
type Breadcrumbs struct {
	*component.Base
	cfg config.BreadcrumbsConfig
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.BreadcrumbsConfig
	if err := component.Decode(Name, slice, svc, &cfg); err != nil {
		return nil, err
	}
	return &Breadcrumbs{Base: component.NewBase(Name, svc, log), cfg: cfg}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"Breadcrumbs"},
		Description: "Merge breadcrumb arguments",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (b *Breadcrumbs) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := b.Begin(ctx); err != nil {
		return nil, err
	}
	b.Binder.Filter("genesis_breadcrumb_args", "breadcrumb_args", b.breadcrumbArgs, ports.DefaultPriority, 1)
	return b.Done()
}

func (b *Breadcrumbs) breadcrumbArgs(_ context.Context, args ...any) any {
	first := component.Arg(args, 0)
	current, _ := first.(map[string]any)
	merged, err := Merge(current, b.cfg)
	if err != nil {
		b.Log.Error(err, "merge breadcrumb arguments")
		return first
	}
	return merged
}

// Merge returns base with override applied recursively: nested mappings are
// merged key by key, lists are merged index by index (base elements past the
// end of the override list are kept) and every other value in override
// replaces the one in base. Neither input is modified.
func Merge(base, override map[string]any) (map[string]any, error) {
	out := copyMap(base)
	if out == nil {
		out = make(map[string]any)
	}
	over := copyMap(override)
	if err := alignLists(out, over); err != nil {
		return nil, err
	}
	if err := mergo.Merge(&out, over, mergo.WithOverride); err != nil {
		return nil, err
	}
	return out, nil
}

// alignLists rewrites every list in override that meets a list in base into
// the index-merged list, so the map merge can replace it as a whole.
func alignLists(base, override map[string]any) error {
	for key, value := range override {
		switch v := value.(type) {
		case map[string]any:
			if b, ok := base[key].(map[string]any); ok {
				if err := alignLists(b, v); err != nil {
					return err
				}
			}
		case []any:
			if b, ok := base[key].([]any); ok {
				merged, err := mergeList(b, v)
				if err != nil {
					return err
				}
				override[key] = merged
			}
		}
	}
	return nil
}

func mergeList(base, override []any) ([]any, error) {
	out := make([]any, max(len(base), len(override)))
	copy(out, base)
	for i, value := range override {
		switch v := value.(type) {
		case map[string]any:
			if b, ok := out[i].(map[string]any); ok {
				merged, err := Merge(b, v)
				if err != nil {
					return nil, err
				}
				out[i] = merged
				continue
			}
		case []any:
			if b, ok := out[i].([]any); ok {
				merged, err := mergeList(b, v)
				if err != nil {
					return nil, err
				}
				out[i] = merged
				continue
			}
		}
		out[i] = value
	}
	return out, nil
}

func copyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
