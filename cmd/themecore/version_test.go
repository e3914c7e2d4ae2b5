package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-19"

	output, _, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, output, "themecore 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-19")
}

func TestVersionShort(t *testing.T) {
	original := version
	t.Cleanup(func() { version = original })
	version = "2.0.0"

	output, _, err := executeCommand(t, "", "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "2.0.0\n", output)
}
