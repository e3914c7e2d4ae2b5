package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraceRecordsInOrder(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.Record("assets", "wp_enqueue_script", "main", "/main.js")
	tr.Record("hooks", "add_filter", "wp", "hooks::apply_hooks", 10, 1)
	tr.Record("assets", "wp_enqueue_script", "extra", "/extra.js")

	calls := tr.Calls()
	require.Len(t, calls, 3)
	require.Equal(t, 1, calls[0].Seq)
	require.Equal(t, 3, calls[2].Seq)
	require.Equal(t, 2, tr.Count("wp_enqueue_script"))
	require.Len(t, tr.OpsFor("wp_enqueue_script", "extra"), 1)
	require.Len(t, tr.Surface("hooks"), 1)
	require.Equal(t, "add_filter(wp, hooks::apply_hooks, 10, 1)", calls[1].String())
}

func TestTraceArgOutOfRange(t *testing.T) {
	t.Parallel()

	call := Call{Op: "define", Args: []any{"A"}}
	require.Equal(t, "A", call.Arg(0))
	require.Nil(t, call.Arg(3))
}

func TestTraceReset(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.Record("constants", "define", "A", 1)
	tr.Reset()
	require.Empty(t, tr.Calls())
}

func TestNilTraceIgnoresRecords(t *testing.T) {
	t.Parallel()

	var tr *Trace
	require.NotPanics(t, func() { tr.Record("x", "y") })
	require.Empty(t, tr.Calls())
}
