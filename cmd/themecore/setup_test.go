package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecore/internal/app/theme"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/sqlite"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/tui"
)

const setupDoc = `
constants:
  define:
    CHILD_THEME_NAME: Business Pro
page-template:
  register:
    page-templates/landing.php: Landing Page
unknown-thing:
  anything: true
`

func TestSetupPrintsReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "theme.yaml", setupDoc)

	stdout, _, err := executeCommand(t, "", "setup", path, "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, "page-template")
	require.Contains(t, stdout, "theme_page_templates = map[page-templates/landing.php:Landing Page]")
	require.Contains(t, stdout, "Skipped (not registered): unknown-thing")
}

func TestSetupPersistsState(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "theme.yaml", `
demo-import:
  page_settings:
    show_on_front: page
    page_on_front: Home
`)
	request := writeFile(t, dir, "request.yaml", `
import: true
posts:
  - {id: 2, title: Home, type: page}
`)
	state := dir + "/state.db"

	_, _, err := executeCommand(t, "", "setup", path, "-r", request, "--state", state, "--log-format", "json")
	require.NoError(t, err)

	store, err := sqlite.Open(context.Background(), state, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	front, found, err := store.GetOption(context.Background(), "page_on_front")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, front)
}

func TestSetupInteractiveHandsDataToBrowser(t *testing.T) {
	original := runInteractive
	t.Cleanup(func() { runInteractive = original })

	var got tui.Data
	runInteractive = func(_ context.Context, data tui.Data) error {
		got = data
		return nil
	}

	path := writeFile(t, t.TempDir(), "theme.yaml", setupDoc)
	stdout, _, err := executeCommand(t, "", "setup", path, "-i", "--log-format", "json")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Equal(t, path, got.Title)
	require.Len(t, got.Result.Components, 2)
	require.NotEmpty(t, got.Calls)
}

func TestSetupRejectsWatchWithInteractive(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "theme.yaml", setupDoc)
	_, _, err := executeCommand(t, "", "setup", path, "--watch", "--interactive")
	require.Error(t, err)
}

func TestLogFormatFromEnvironment(t *testing.T) {
	t.Setenv("THEMECORE_LOG_FORMAT", "xml")

	_, _, err := executeCommand(t, "", "components")
	require.ErrorContains(t, err, "unknown log format")
}

func TestSetupMissingConfig(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "", "setup", "missing.yaml", "--log-format", "json")
	require.Error(t, err)
	require.Equal(t, 2, exitCode(err))
}

func TestPrintChanges(t *testing.T) {
	t.Parallel()

	data := func(skipped ...string) tui.Data {
		return tui.Data{Title: "theme.yaml", Result: &theme.Result{Skipped: skipped, Duration: time.Second}}
	}

	var out bytes.Buffer
	first := printChanges(&out, "", data("a"))
	require.Contains(t, out.String(), "Skipped (not registered): a")
	require.NotContains(t, out.String(), "Setup took")

	out.Reset()
	second := printChanges(&out, first, data("a"))
	require.Equal(t, first, second)
	require.Equal(t, "no changes since the previous run\n", out.String())

	out.Reset()
	printChanges(&out, second, data("b"))
	require.Contains(t, out.String(), "-")
	require.Contains(t, out.String(), "+")
	require.Contains(t, out.String(), "Skipped (not registered): b")
	require.Contains(t, out.String(), "(+1 -1 lines)")
}
