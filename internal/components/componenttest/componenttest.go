// Package componenttest runs a component against the in-memory host.
package componenttest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Env builds an in-memory host for req.
func Env(t *testing.T, req memory.Request, opts ...memory.Option) *memory.Environment {
	t.Helper()
	env, err := memory.NewEnvironment(context.Background(), req, opts...)
	require.NoError(t, err)
	return env
}

// Build decodes doc with factory against env.
func Build(t *testing.T, factory component.Factory, doc string, env *memory.Environment) component.Component {
	t.Helper()
	c, err := factory(config.MustSlice(doc), env.Services(), logger.Nop())
	require.NoError(t, err)
	return c
}

// Setup builds and initializes one component and returns its host.
func Setup(t *testing.T, factory component.Factory, doc string, req memory.Request, opts ...memory.Option) (*memory.Environment, []ports.Subscription) {
	t.Helper()
	env := Env(t, req, opts...)
	subs, err := Build(t, factory, doc, env).Init(context.Background())
	require.NoError(t, err)
	return env, subs
}

// Run fires the standard request lifecycle.
func Run(t *testing.T, env *memory.Environment) *memory.Report {
	t.Helper()
	report, err := memory.NewLifecycle(env).Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, report.Errors)
	return report
}

// Tags lists the tags of subs in order.
func Tags(subs []ports.Subscription) []string {
	out := make([]string, 0, len(subs))
	for _, sub := range subs {
		out = append(out, sub.Tag)
	}
	return out
}
