package memory

import (
	"sync"

	"github.com/alexisbeaulieu97/themecore/internal/ports"
	"github.com/alexisbeaulieu97/themecore/internal/trace"
)

const customizerSurface = "customizer"

// Customizer records customizer objects by kind and id.
type Customizer struct {
	trace *trace.Trace

	mu      sync.RWMutex
	objects map[string]map[string]map[string]any
	order   map[string][]string
	color   map[string]bool
}

// NewCustomizer returns an empty customizer.
func NewCustomizer(tr *trace.Trace) *Customizer {
	return &Customizer{
		trace:   tr,
		objects: make(map[string]map[string]map[string]any),
		order:   make(map[string][]string),
		color:   make(map[string]bool),
	}
}

// AddSetting implements ports.Customizer.
func (c *Customizer) AddSetting(id string, args map[string]any) {
	c.add(ports.KindSetting, id, args)
}

// AddControl implements ports.Customizer.
func (c *Customizer) AddControl(id string, args map[string]any) {
	c.add(ports.KindControl, id, args)
}

// AddColorControl implements ports.Customizer.
func (c *Customizer) AddColorControl(id string, args map[string]any) {
	c.mu.Lock()
	c.color[id] = true
	c.mu.Unlock()
	c.add(ports.KindControl, id, args)
}

// AddSection implements ports.Customizer.
func (c *Customizer) AddSection(id string, args map[string]any) {
	c.add(ports.KindSection, id, args)
}

// AddPanel implements ports.Customizer.
func (c *Customizer) AddPanel(id string, args map[string]any) {
	c.add(ports.KindPanel, id, args)
}

// Remove implements ports.Customizer.
func (c *Customizer) Remove(kind, id string) bool {
	c.trace.Record(customizerSurface, "remove_"+kind, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.objects[kind][id]; !ok {
		return false
	}
	delete(c.objects[kind], id)
	ids := c.order[kind]
	for i, existing := range ids {
		if existing == id {
			c.order[kind] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the arguments an object was added with.
func (c *Customizer) Get(kind, id string) (map[string]any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	args, ok := c.objects[kind][id]
	return args, ok
}

// IDs lists the ids of one kind in the order they were added.
func (c *Customizer) IDs(kind string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.order[kind]...)
}

// IsColorControl reports whether a control was added as a color picker.
func (c *Customizer) IsColorControl(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.color[id]
}

func (c *Customizer) add(kind, id string, args map[string]any) {
	op := "add_" + kind
	if kind == ports.KindControl && c.IsColorControl(id) {
		op = "add_color_control"
	}
	c.trace.Record(customizerSurface, op, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.objects[kind] == nil {
		c.objects[kind] = make(map[string]map[string]any)
	}
	if _, exists := c.objects[kind][id]; !exists {
		c.order[kind] = append(c.order[kind], id)
	}
	c.objects[kind][id] = args
}
