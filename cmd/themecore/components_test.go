package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponentsTable(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "components", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "hero-section")
	require.Contains(t, stdout, "HeroSection")
	require.Contains(t, stdout, "1.0.0")
}

func TestComponentsJSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "components", "--json", "--log-format", "json")
	require.NoError(t, err)

	var payload []componentJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Len(t, payload, 16)
	require.Equal(t, "asset-loader", payload[0].Name)
	require.Equal(t, []string{"AssetLoader"}, payload[0].Aliases)
}
