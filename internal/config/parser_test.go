package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "entries keep document order",
			contents: `constants:
  define:
    CHILD_THEME_NAME: Business Pro
HeroSection:
  enable:
    front_page: true
widgets:
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"constants", "HeroSection", "widgets"}, cfg.IDs())

				hero, ok := cfg.Entry("HeroSection")
				require.True(t, ok)
				require.Equal(t, 4, hero.Line)
				require.Equal(t, []string{"enable"}, hero.Slice.Keys())

				widgets, _ := cfg.Entry("widgets")
				require.True(t, widgets.Slice.IsZero())
			},
		},
		{
			name:     "empty document has no components",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Empty(t, cfg.Components)
			},
		},
		{
			name:     "json is accepted",
			contents: `{"constants": {"define": {"A": 1}}, "breadcrumbs": {"home": "Start"}}`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"constants", "breadcrumbs"}, cfg.IDs())
			},
		},
		{
			name:     "top level must be a mapping",
			contents: "- constants\n- widgets\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "top level")
			},
		},
		{
			name:     "identifier configured twice",
			contents: "constants: {}\nwidgets: {}\nconstants: {}\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "slice must be a mapping",
			contents: "constants: yes\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "must be a mapping")
			},
		},
		{
			name:     "malformed yaml reports its line",
			contents: "constants:\n  define: [a, b\nwidgets: {}\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *themeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
			if err == nil {
				require.Equal(t, path, cfg.Path)
			}
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestOrderedKeepsOrder(t *testing.T) {
	t.Parallel()

	var cfg PageTemplateConfig
	require.NoError(t, MustSlice("register:\n  z.php: Z\n  a.php: A\n").Decode(&cfg))
	require.Equal(t, []string{"z.php", "a.php"}, cfg.Register.Keys())

	label, ok := cfg.Register.Get("a.php")
	require.True(t, ok)
	require.Equal(t, "A", label)
	require.Equal(t, map[string]string{"z.php": "Z", "a.php": "A"}, cfg.Register.Map())
	require.Nil(t, cfg.Unregister)
}

func TestOrderedRejectsSequence(t *testing.T) {
	t.Parallel()

	var cfg PageTemplateConfig
	require.Error(t, MustSlice("register: [a.php]\n").Decode(&cfg))
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
