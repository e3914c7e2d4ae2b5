package customcolors_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/components/componenttest"
	"github.com/alexisbeaulieu97/themecore/internal/components/customcolors"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

const colorsDoc = `
link:
  id: link
  default: "#ffffff"
  output:
    - elements: [a, ".entry-title a:hover"]
      properties:
        color: "%s"
        background-color: "rgba(%s,0.1)"
accent:
  id: accent_dark
  default: "#000000"
  output:
    - elements: [".button"]
      properties:
        border-color: "%s"
`

func TestChangedColorEmitsMinifiedRule(t *testing.T) {
	t.Parallel()

	req := memory.Request{
		Constants: map[string]any{"CHILD_THEME_NAME": "Business Pro"},
		ThemeMods: map[string]any{"child_theme_link_color": "#ff0000"},
	}
	env, subs := componenttest.Setup(t, customcolors.New, colorsDoc, req)
	require.Equal(t, []string{"customize_register", "wp_enqueue_scripts"}, componenttest.Tags(subs))
	require.Equal(t, 100, subs[1].Priority)

	componenttest.Run(t, env)

	require.Equal(t,
		[]string{"a,.entry-title a:hover{color:#f00;background-color:rgba(255,0,0,0.1)}"},
		env.Host.InlineStyles("business-pro"))
}

func TestDefaultColorEmitsNothing(t *testing.T) {
	t.Parallel()

	req := memory.Request{ThemeMods: map[string]any{"child_theme_link_color": "#ffffff"}}
	env, _ := componenttest.Setup(t, customcolors.New, colorsDoc, req)
	componenttest.Run(t, env)

	require.Empty(t, env.Trace.Ops("wp_add_inline_style"))
}

func TestFallbackHandle(t *testing.T) {
	t.Parallel()

	req := memory.Request{ThemeMods: map[string]any{"child_theme_accent_dark_color": "#123456"}}
	env, _ := componenttest.Setup(t, customcolors.New, colorsDoc, req)
	componenttest.Run(t, env)

	require.Equal(t, []string{".button{border-color:#123456}"}, env.Host.InlineStyles("child-theme"))
}

func TestCustomizerSettings(t *testing.T) {
	t.Parallel()

	env, _ := componenttest.Setup(t, customcolors.New, colorsDoc, memory.Request{})
	componenttest.Run(t, env)

	setting, ok := env.Customizer.Get(ports.KindSetting, "child_theme_accent_dark_color")
	require.True(t, ok)
	require.Equal(t, map[string]any{"default": "#000000", "sanitize_callback": "sanitize_hex_color"}, setting)

	require.True(t, env.Customizer.IsColorControl("child_theme_accent_dark_color"))
	control, _ := env.Customizer.Get(ports.KindControl, "child_theme_accent_dark_color")
	require.Equal(t, map[string]any{
		"section":  "colors",
		"label":    "Accent Dark Color",
		"settings": "child_theme_accent_dark_color",
	}, control)

	require.Equal(t, []string{"child_theme_link_color", "child_theme_accent_dark_color"}, env.Customizer.IDs(ports.KindSetting))
}

func TestRuleSubstitution(t *testing.T) {
	t.Parallel()

	rule := config.ColorRule{
		Elements: []string{"a", "b"},
		Properties: config.Ordered[string]{
			{Key: "color", Value: "%s"},
			{Key: "box-shadow", Value: "0 0 0 2px rgba(%s,.5)"},
			{Key: "outline", Value: "1px solid %1$s"},
		},
	}
	require.Equal(t,
		"a,b{color:#0a0b0c;box-shadow:0 0 0 2px rgba(10,11,12,.5);outline:1px solid #0a0b0c;}",
		customcolors.Rule(rule, "#0a0b0c", nil))
}

func TestRejectsInvalidDefault(t *testing.T) {
	t.Parallel()

	env := componenttest.Env(t, memory.Request{})
	_, err := customcolors.New(config.MustSlice("link:\n  id: link\n  default: red\n"), env.Services(), nil)
	require.Error(t, err)
}

func TestCustomizeRegisterWithoutManager(t *testing.T) {
	t.Parallel()

	env, _ := componenttest.Setup(t, customcolors.New, colorsDoc, memory.Request{})
	env.Hooks.DoAction(t.Context(), "customize_register")
	require.Empty(t, env.Hooks.Errors())
	require.Empty(t, env.Customizer.IDs(ports.KindSetting))
}
