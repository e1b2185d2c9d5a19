package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreviewRequiresTerminal(t *testing.T) {
	_, err := executeCommand(t, "preview")

	require.Error(t, err)
	require.Contains(t, err.Error(), "not a terminal")
	require.Contains(t, err.Error(), "glaze resolve")
}

func TestPreviewWatchRequiresFile(t *testing.T) {
	_, err := executeCommand(t, "preview", "--watch")

	require.Error(t, err)
	require.Contains(t, err.Error(), "--watch requires --file")
}

func TestRootWithoutTerminalPrintsHelp(t *testing.T) {
	output, err := executeCommand(t)

	require.NoError(t, err)
	require.Contains(t, output, "Usage:")
	require.Contains(t, output, "resolve")
	require.Contains(t, output, "preview")
}

func TestIsTerminalRejectsNonFiles(t *testing.T) {
	require.False(t, isTerminal(nil))
	require.False(t, isTerminal("not a file"))
}
