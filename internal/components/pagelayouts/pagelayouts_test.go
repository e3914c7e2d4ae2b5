package pagelayouts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/components/componenttest"
	"github.com/alexisbeaulieu97/themecore/internal/components/pagelayouts"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
)

func TestRegisterThenUnregisterAtInit(t *testing.T) {
	t.Parallel()

	doc := `
register:
  slim-content:
    label: Slim Content Area
    img: images/slim-content-icon.png
  sidebar-content:
    label: Sidebar Content
unregister:
  - sidebar-content
  - content-sidebar-sidebar
`
	env, subs := componenttest.Setup(t, pagelayouts.New, doc, memory.Request{})
	require.Empty(t, subs)
	require.Equal(t, []string{"slim-content"}, env.Host.Layouts())

	calls := env.Trace.Surface("layouts")
	require.Len(t, calls, 4)
	require.Equal(t, "genesis_register_layout(slim-content)", calls[0].String())
	require.Equal(t, "genesis_unregister_layout(content-sidebar-sidebar)", calls[3].String())
}

func TestEmptySliceTouchesNothing(t *testing.T) {
	t.Parallel()

	env, _ := componenttest.Setup(t, pagelayouts.New, "{}", memory.Request{})
	require.Empty(t, env.Trace.Surface("layouts"))
}
