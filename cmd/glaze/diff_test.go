package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffLightAgainstDark(t *testing.T) {
	output, err := executeCommand(t, "diff", "light", "dark")

	require.NoError(t, err)
	require.Contains(t, output, "--- light")
	require.Contains(t, output, "+++ dark")
	require.Contains(t, output, "#121212")
}

func TestDiffIdenticalThemes(t *testing.T) {
	output, err := executeCommand(t, "diff", "light", "light")

	require.NoError(t, err)
	require.Contains(t, output, "resolve identically")
}

func TestDiffAcceptsDocumentPath(t *testing.T) {
	path := writeThemeDocument(t, "ocean.yaml", oceanDocument)

	output, err := executeCommand(t, "diff", "light", path)

	require.NoError(t, err)
	require.Contains(t, output, "#0ea5e9")
	require.Contains(t, output, "#1976d2")
}

func TestDiffUnknownReferenceFails(t *testing.T) {
	_, err := executeCommand(t, "diff", "light", "nope")

	require.Error(t, err)
	require.Contains(t, err.Error(), `"nope"`)
}
