package textdomain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/components/componenttest"
	"github.com/alexisbeaulieu97/themecore/internal/components/textdomain"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

func TestDefaultPathIsLanguagesDir(t *testing.T) {
	t.Parallel()

	req := memory.Request{Theme: ports.ThemeInfo{StylesheetDir: "/srv/themes/business-pro"}}
	env, subs := componenttest.Setup(t, textdomain.New, "domain: business-pro\n", req)
	require.Empty(t, subs)

	calls := env.Trace.Ops("load_theme_textdomain")
	require.Len(t, calls, 1)
	require.Equal(t, "business-pro", calls[0].Arg(0))
	require.Equal(t, "/srv/themes/business-pro/languages", calls[0].Arg(1))
}

func TestChildThemeUsesChildLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr_FR.mo"), []byte{0xde, 0x12, 0x04, 0x95}, 0o600))

	req := memory.Request{Theme: ports.ThemeInfo{Child: true}}
	env, _ := componenttest.Setup(t, textdomain.New, "domain: business-pro\npath: "+dir+"\n", req)

	require.Empty(t, env.Trace.Ops("load_theme_textdomain"))
	require.Len(t, env.Trace.OpsFor("load_child_theme_textdomain", "business-pro"), 1)
	require.Equal(t, []string{"fr_FR.mo"}, env.Host.Catalogs("business-pro"))
}

func TestWithoutDomainNothingLoads(t *testing.T) {
	t.Parallel()

	env, _ := componenttest.Setup(t, textdomain.New, "path: /tmp\n", memory.Request{})
	require.Empty(t, env.Trace.Surface("translations"))
}
