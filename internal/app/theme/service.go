// Package theme turns a parsed theme document into host registrations.
package theme

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

// Service coordinates component construction and initialization for one
// theme document.
type Service struct {
	registry *component.Registry
	log      *logger.Logger
}

// NewService constructs a theme service backed by reg.
func NewService(reg *component.Registry, log *logger.Logger) *Service {
	return &Service{registry: reg, log: log}
}

// Initialized describes one component that took part in a run.
type Initialized struct {
	// ID is the identifier as written in the document.
	ID string
	// Name is the registered component name ID resolved to.
	Name          string
	Line          int
	Subscriptions []ports.Subscription
}

// Result captures what a Setup or Validate run did.
type Result struct {
	ConfigPath string
	Components []Initialized
	// Skipped lists identifiers with no registered component, in document order.
	Skipped  []string
	Duration time.Duration
}

// Subscriptions flattens every component's subscriptions in init order.
func (r *Result) Subscriptions() []ports.Subscription {
	if r == nil {
		return nil
	}
	var out []ports.Subscription
	for _, c := range r.Components {
		out = append(out, c.Subscriptions...)
	}
	return out
}

type built struct {
	entry config.Entry
	name  string
	comp  component.Component
}

// Setup constructs every configured component and then initializes each one
// exactly once, in document order. Nothing is registered with the host when
// any component fails to construct.
func (s *Service) Setup(ctx context.Context, cfg *config.Config, svc ports.Services) (*Result, error) {
	start := time.Now()
	log := s.log.WithCorrelationID(logger.NewCorrelationID())

	components, result, err := s.build(ctx, cfg, svc, log)
	if err != nil {
		return result, err
	}

	for i, b := range components {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		subs, err := b.comp.Init(ctx)
		if err != nil {
			return result, fmt.Errorf("init %s (line %d): %w", b.entry.ID, b.entry.Line, err)
		}
		result.Components[i].Subscriptions = subs
		log.WithFields(map[string]any{
			"component":     b.name,
			"subscriptions": len(subs),
		}).Debug("component initialized")
	}

	result.Duration = time.Since(start)
	log.WithFields(map[string]any{
		"components": len(result.Components),
		"skipped":    len(result.Skipped),
		"duration":   result.Duration.String(),
	}).Info("theme setup complete")
	return result, nil
}

// Validate decodes and validates every configured component without
// initializing any of them.
func (s *Service) Validate(ctx context.Context, cfg *config.Config, svc ports.Services) (*Result, error) {
	start := time.Now()
	log := s.log.WithCorrelationID(logger.NewCorrelationID())

	_, result, err := s.build(ctx, cfg, svc, log)
	if err != nil {
		return result, err
	}
	result.Duration = time.Since(start)
	return result, nil
}

func (s *Service) build(ctx context.Context, cfg *config.Config, svc ports.Services, log *logger.Logger) ([]built, *Result, error) {
	if cfg == nil {
		return nil, nil, themeerrors.NewValidationError("", "theme configuration is nil", nil)
	}
	result := &Result{ConfigPath: cfg.Path}

	seen := make(map[string]string, len(cfg.Components))
	out := make([]built, 0, len(cfg.Components))
	for _, entry := range cfg.Components {
		if err := ctx.Err(); err != nil {
			return nil, result, err
		}

		reg, ok := s.registry.Get(entry.ID)
		if !ok {
			log.WithFields(map[string]any{
				"component": entry.ID,
				"line":      entry.Line,
			}).Warn("unknown component skipped")
			result.Skipped = append(result.Skipped, entry.ID)
			continue
		}
		if first, dup := seen[reg.Name]; dup {
			return nil, result, themeerrors.NewValidationError(entry.ID,
				fmt.Sprintf("component %q is already configured as %q", reg.Name, first), nil)
		}
		seen[reg.Name] = entry.ID

		comp, err := s.registry.Build(entry.ID, entry.Slice, svc, log)
		if err != nil {
			return nil, result, fmt.Errorf("construct %s (line %d): %w", entry.ID, entry.Line, err)
		}
		out = append(out, built{entry: entry, name: reg.Name, comp: comp})
	}

	result.Components = make([]Initialized, 0, len(out))
	for _, b := range out {
		result.Components = append(result.Components, Initialized{
			ID:   b.entry.ID,
			Name: b.name,
			Line: b.entry.Line,
		})
	}
	return out, result, nil
}
