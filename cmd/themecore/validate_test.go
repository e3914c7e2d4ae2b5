package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateReportsComponents(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "theme.yaml", `
constants:
  define:
    CHILD_THEME_NAME: Business Pro
Breadcrumbs:
  home: Start
not-registered: {}
`)
	stdout, _, err := executeCommand(t, "", "validate", path, "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, "2 components valid")
	require.Contains(t, stdout, "skipped (not registered): not-registered")
}

func TestValidateRejectsInvalidSlice(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "theme.yaml", "customizer:\n  fields:\n    - type: text\n")
	_, _, err := executeCommand(t, "", "validate", path, "--log-format", "json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "customizer")
	require.Equal(t, 2, exitCode(err))
}

func TestValidateRejectsMalformedDocument(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "theme.yaml", "- just\n- a list\n")
	_, _, err := executeCommand(t, "", "validate", path, "--log-format", "json")
	require.Error(t, err)
	require.Equal(t, 2, exitCode(err))
}
