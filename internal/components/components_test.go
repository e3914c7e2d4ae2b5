package components_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/components"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
)

func TestRegistersEveryComponent(t *testing.T) {
	t.Parallel()

	reg, err := components.NewRegistry(logger.Nop())
	require.NoError(t, err)
	require.Equal(t, []string{
		"asset-loader",
		"breadcrumbs",
		"constants",
		"custom-colors",
		"customizer",
		"demo-import",
		"genesis-settings",
		"hero-section",
		"hooks",
		"kirki",
		"page-layouts",
		"page-template",
		"text-domain",
		"theme-support",
		"widget-area",
		"widgets",
	}, reg.Names())
}

func TestAliasesResolve(t *testing.T) {
	t.Parallel()

	reg, err := components.NewRegistry(logger.Nop())
	require.NoError(t, err)

	for alias, name := range map[string]string{
		"AssetLoader":     "asset-loader",
		"HeroSection":     "hero-section",
		"GenesisSettings": "genesis-settings",
		"WidgetArea":      "widget-area",
	} {
		got, ok := reg.Get(alias)
		require.True(t, ok, alias)
		require.Equal(t, name, got.Name)
	}
}

func TestRegisterAllTwiceFails(t *testing.T) {
	t.Parallel()

	reg := component.NewRegistry(logger.Nop())
	require.NoError(t, components.RegisterAll(reg))
	require.Error(t, components.RegisterAll(reg))
}
