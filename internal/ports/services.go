package ports

import (
	"fmt"
	"io/fs"

	"github.com/alexisbeaulieu97/themecore/internal/guard"
)

// Services bundles the host surfaces handed to every component.
type Services struct {
	Hooks        Hooks
	Callables    Callables
	Assets       Assets
	Constants    Constants
	Kirki        Kirki
	Options      Options
	Content      Content
	Features     Features
	Layouts      Layouts
	Sidebars     Sidebars
	Widgets      Widgets
	Translations Translations
	Query        Query
	Output       Output
	MetaBoxes    MetaBoxes
	Request      Request

	// Files is rooted at the stylesheet directory.
	Files fs.FS

	Conditions guard.Resolver
	Values     guard.ValueResolver
}

// Check reports the first surface in names that is not set.
func (s Services) Check(names ...string) error {
	for _, name := range names {
		if !s.has(name) {
			return fmt.Errorf("host surface %q is not available", name)
		}
	}
	return nil
}

func (s Services) has(name string) bool {
	switch name {
	case "hooks":
		return s.Hooks != nil
	case "callables":
		return s.Callables != nil
	case "assets":
		return s.Assets != nil
	case "constants":
		return s.Constants != nil
	case "kirki":
		return s.Kirki != nil
	case "options":
		return s.Options != nil
	case "content":
		return s.Content != nil
	case "features":
		return s.Features != nil
	case "layouts":
		return s.Layouts != nil
	case "sidebars":
		return s.Sidebars != nil
	case "widgets":
		return s.Widgets != nil
	case "translations":
		return s.Translations != nil
	case "query":
		return s.Query != nil
	case "output":
		return s.Output != nil
	case "metaboxes":
		return s.MetaBoxes != nil
	case "request":
		return s.Request != nil
	case "files":
		return s.Files != nil
	default:
		return false
	}
}
