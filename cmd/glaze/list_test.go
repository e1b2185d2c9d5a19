package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListShowsBuiltinThemes(t *testing.T) {
	output, err := executeCommand(t, "list")

	require.NoError(t, err)
	require.Contains(t, output, "NAME")
	require.Contains(t, output, "light")
	require.Contains(t, output, "dark")
	require.Contains(t, output, "builtin")
}

func TestListJSONIncludesRegisteredFile(t *testing.T) {
	path := writeThemeDocument(t, "ocean.yaml", oceanDocument)

	output, err := executeCommand(t, "list", "--json", "--file", path)

	require.NoError(t, err)

	var listed []listedTheme
	require.NoError(t, json.Unmarshal([]byte(output), &listed))
	require.Len(t, listed, 3)

	byName := map[string]listedTheme{}
	for _, item := range listed {
		byName[item.Name] = item
	}
	require.Equal(t, "file", byName["ocean"].Source)
	require.Equal(t, "Calm blue light theme", byName["ocean"].Description)
	require.Equal(t, "light", byName["ocean"].Mode)
	require.Equal(t, "builtin", byName["dark"].Source)
	require.Equal(t, "dark", byName["dark"].Mode)
}

func TestListRejectsBrokenFile(t *testing.T) {
	path := writeThemeDocument(t, "broken.yaml", "name: broken\ntheme: [\n")

	_, err := executeCommand(t, "list", "--file", path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to list themes")
}
