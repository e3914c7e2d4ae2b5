// Package components lists every component kind the theme engine ships with.
package components

import (
	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/components/assetloader"
	"github.com/alexisbeaulieu97/themecore/internal/components/breadcrumbs"
	"github.com/alexisbeaulieu97/themecore/internal/components/constants"
	"github.com/alexisbeaulieu97/themecore/internal/components/customcolors"
	"github.com/alexisbeaulieu97/themecore/internal/components/customizer"
	"github.com/alexisbeaulieu97/themecore/internal/components/demoimport"
	"github.com/alexisbeaulieu97/themecore/internal/components/genesissettings"
	"github.com/alexisbeaulieu97/themecore/internal/components/herosection"
	"github.com/alexisbeaulieu97/themecore/internal/components/hooks"
	"github.com/alexisbeaulieu97/themecore/internal/components/kirki"
	"github.com/alexisbeaulieu97/themecore/internal/components/pagelayouts"
	"github.com/alexisbeaulieu97/themecore/internal/components/pagetemplate"
	"github.com/alexisbeaulieu97/themecore/internal/components/textdomain"
	"github.com/alexisbeaulieu97/themecore/internal/components/themesupport"
	"github.com/alexisbeaulieu97/themecore/internal/components/widgetarea"
	"github.com/alexisbeaulieu97/themecore/internal/components/widgets"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
)

var builtins = []func(*component.Registry) error{
	assetloader.Register,
	breadcrumbs.Register,
	constants.Register,
	customcolors.Register,
	customizer.Register,
	demoimport.Register,
	genesissettings.Register,
	herosection.Register,
	hooks.Register,
	kirki.Register,
	pagelayouts.Register,
	pagetemplate.Register,
	textdomain.Register,
	themesupport.Register,
	widgetarea.Register,
	widgets.Register,
}

// RegisterAll adds every built-in component to reg.
func RegisterAll(reg *component.Registry) error {
	for _, register := range builtins {
		if err := register(reg); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding every built-in component.
func NewRegistry(log *logger.Logger) (*component.Registry, error) {
	reg := component.NewRegistry(log)
	if err := RegisterAll(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
