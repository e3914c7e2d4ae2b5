// Package pagetemplate adds and removes entries of the page template list.
package pagetemplate

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "page-template"

const tag = "theme_page_templates"

// Templates shipped by the framework.
const (
	Archive = "page_archive.php"
	Blog    = "page_blog.php"
)

// PageTemplate filters the template list.
type PageTemplate struct {
	*component.Base
	cfg           config.PageTemplateConfig
	hasRegister   bool
	hasUnregister bool
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.PageTemplateConfig
	if err := component.Decode(Name, slice, svc, &cfg); err != nil {
		return nil, err
	}
	return &PageTemplate{
		Base:          component.NewBase(Name, svc, log),
		cfg:           cfg,
		hasRegister:   slice.Has("register"),
		hasUnregister: slice.Has("unregister"),
	}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"PageTemplate"},
		Description: "Add and remove page templates",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (p *PageTemplate) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := p.Begin(ctx); err != nil {
		return nil, err
	}
	if p.hasRegister {
		p.Binder.Filter(tag, "add_templates", func(_ context.Context, args ...any) any {
			return Add(templates(args), p.cfg.Register)
		}, ports.DefaultPriority, 1)
	}
	if p.hasUnregister {
		p.Binder.Filter(tag, "remove_templates", func(_ context.Context, args ...any) any {
			return Remove(templates(args), p.cfg.Unregister)
		}, ports.DefaultPriority, 1)
	}
	return p.Done()
}

// Add returns templates with every registered path added or relabelled.
func Add(templates map[string]string, register config.Ordered[string]) map[string]string {
	out := make(map[string]string, len(templates)+len(register))
	for path, label := range templates {
		out[path] = label
	}
	for _, pair := range register {
		out[pair.Key] = pair.Value
	}
	return out
}

// Remove returns templates without the listed paths.
func Remove(templates map[string]string, unregister []string) map[string]string {
	drop := make(map[string]struct{}, len(unregister))
	for _, path := range unregister {
		drop[path] = struct{}{}
	}
	out := make(map[string]string, len(templates))
	for path, label := range templates {
		if _, ok := drop[path]; !ok {
			out[path] = label
		}
	}
	return out
}

func templates(args []any) map[string]string {
	if len(args) == 0 {
		return nil
	}
	switch t := args[0].(type) {
	case map[string]string:
		return t
	case map[string]any:
		out := make(map[string]string, len(t))
		for path, label := range t {
			out[path] = fmt.Sprint(label)
		}
		return out
	default:
		return nil
	}
}
