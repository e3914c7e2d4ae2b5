package ports

// Customizer object kinds accepted by Customizer.Remove.
const (
	KindSetting = "setting"
	KindControl = "control"
	KindSection = "section"
	KindPanel   = "panel"
)

// Customizer is the live-preview settings registry. It is handed to callbacks
// as the argument of the `customize_register` action rather than read from a
// global.
type Customizer interface {
	AddSetting(id string, args map[string]any)
	AddControl(id string, args map[string]any)
	AddColorControl(id string, args map[string]any)
	AddSection(id string, args map[string]any)
	AddPanel(id string, args map[string]any)
	Remove(kind, id string) bool
}
