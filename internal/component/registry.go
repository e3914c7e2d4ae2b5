package component

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

var (
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	namePattern   = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Registration describes one component kind.
type Registration struct {
	Name        string
	Aliases     []string
	Description string
	Version     string
	Factory     Factory
}

// Validate ensures the registration is well-formed.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("component registration requires a non-empty Name")
	}
	if !namePattern.MatchString(r.Name) {
		return fmt.Errorf("component '%s' has invalid Name (expected lower-case words joined by dashes)", r.Name)
	}
	if strings.TrimSpace(r.Version) == "" {
		return fmt.Errorf("component '%s' registration requires Version", r.Name)
	}
	if !semverPattern.MatchString(r.Version) {
		return fmt.Errorf("component '%s' has invalid Version '%s' (expected format: X.Y.Z)", r.Name, r.Version)
	}
	if r.Factory == nil {
		return fmt.Errorf("component '%s' registration requires a Factory", r.Name)
	}

	seen := map[string]struct{}{r.Name: {}}
	for _, alias := range r.Aliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("component '%s' declares an empty alias", r.Name)
		}
		if _, dup := seen[alias]; dup {
			return fmt.Errorf("component '%s' lists identifier '%s' more than once", r.Name, alias)
		}
		seen[alias] = struct{}{}
	}
	return nil
}

// Registry maps configuration identifiers to component factories. It is
// populated once at startup and read afterwards.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Registration
	aliases map[string]string
	logger  *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		entries: make(map[string]Registration),
		aliases: make(map[string]string),
		logger:  log,
	}
}

// Register adds a component kind. Names and aliases share one namespace.
func (r *Registry) Register(reg Registration) error {
	if err := reg.Validate(); err != nil {
		return themeerrors.NewComponentError(reg.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range append([]string{reg.Name}, reg.Aliases...) {
		if r.taken(id) {
			return themeerrors.NewComponentError(reg.Name, fmt.Errorf("identifier '%s' already registered", id))
		}
	}

	r.entries[reg.Name] = reg
	for _, alias := range reg.Aliases {
		r.aliases[alias] = reg.Name
	}

	r.logger.WithFields(map[string]any{
		"component": reg.Name,
		"version":   reg.Version,
	}).Debug("component registered")
	return nil
}

// MustRegister panics if the registration fails.
func (r *Registry) MustRegister(reg Registration) {
	if err := r.Register(reg); err != nil {
		panic(err)
	}
}

// Get resolves an identifier or alias to its registration.
func (r *Registry) Get(id string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name, ok := r.aliases[id]; ok {
		id = name
	}
	reg, ok := r.entries[id]
	return reg, ok
}

// Build constructs the component registered under id.
func (r *Registry) Build(id string, slice config.Slice, svc ports.Services, log *logger.Logger) (Component, error) {
	reg, ok := r.Get(id)
	if !ok {
		return nil, themeerrors.NewComponentError(id, fmt.Errorf("component not registered"))
	}
	comp, err := reg.Factory(slice, svc, log)
	if err != nil {
		var compErr *themeerrors.ComponentError
		if errors.As(err, &compErr) {
			return nil, err
		}
		return nil, themeerrors.NewComponentError(reg.Name, err)
	}
	return comp, nil
}

// Names lists registered component names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registrations lists registrations sorted by name.
func (r *Registry) Registrations() []Registration {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Registration, 0, len(names))
	for _, name := range names {
		out = append(out, r.entries[name])
	}
	return out
}

func (r *Registry) taken(id string) bool {
	if _, ok := r.entries[id]; ok {
		return true
	}
	_, ok := r.aliases[id]
	return ok
}
