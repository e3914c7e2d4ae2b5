package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/components/componenttest"
	"github.com/alexisbeaulieu97/themecore/internal/components/widgets"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
)

func TestUnregisterRunsBeforeRegister(t *testing.T) {
	t.Parallel()

	doc := `
register: [Business_Pro_Featured_Widget, WP_Widget_Search]
unregister: [WP_Widget_Search, Genesis_Featured_Page]
`
	env, subs := componenttest.Setup(t, widgets.New, doc, memory.Request{})
	require.Equal(t, []string{"widgets_init", "widgets_init"}, componenttest.Tags(subs))
	require.Equal(t, 15, subs[0].Priority)
	require.Equal(t, "widgets::unregister", subs[0].CallbackID)
	require.Empty(t, env.Trace.Surface("widgets"))

	componenttest.Run(t, env)

	require.Equal(t, []string{"Business_Pro_Featured_Widget", "WP_Widget_Search"}, env.Host.Widgets())
	calls := env.Trace.Surface("widgets")
	require.Len(t, calls, 4)
	require.Equal(t, "unregister_widget", calls[0].Op)
	require.Equal(t, "register_widget", calls[3].Op)
}

func TestOnlyPresentKeysSubscribe(t *testing.T) {
	t.Parallel()

	_, subs := componenttest.Setup(t, widgets.New, "register: [Foo]\n", memory.Request{})
	require.Len(t, subs, 1)
	require.Equal(t, "widgets::register", subs[0].CallbackID)
}
