package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsGoodDocument(t *testing.T) {
	path := writeThemeDocument(t, "ocean.yaml", oceanDocument)

	output, err := executeCommand(t, "validate", path)

	require.NoError(t, err)
	require.Contains(t, output, "✓ "+path)
}

func TestValidateReportsBadColor(t *testing.T) {
	path := writeThemeDocument(t, "broken.yaml", `name: broken
theme:
  palette:
    primary:
      main: blurple
`)

	output, err := executeCommand(t, "validate", path)

	require.Error(t, err)
	require.Contains(t, output, "✗ "+path)
	require.Contains(t, output, "document.theme.palette.primary.main")
	require.Contains(t, err.Error(), "1 of 1 documents failed")
}

func TestValidateReportsSyntaxErrorLine(t *testing.T) {
	path := writeThemeDocument(t, "syntax.yaml", "name: syntax\ntheme: [\n")

	output, err := executeCommand(t, "validate", path)

	require.Error(t, err)
	require.Contains(t, output, "✗ "+path)
	require.Contains(t, output, "line")
}

func TestValidateReportsShadowTableLength(t *testing.T) {
	path := writeThemeDocument(t, "shadows.yaml", `name: shadows
theme:
  shadows:
    - none
    - 0px 2px 4px rgba(0,0,0,0.2)
`)

	output, err := executeCommand(t, "validate", path)

	require.Error(t, err)
	require.Contains(t, output, "✗ "+path)
	require.Contains(t, output, "25")
}

func TestValidateAggregatesAcrossFiles(t *testing.T) {
	good := writeThemeDocument(t, "good.yaml", oceanDocument)
	bad := writeThemeDocument(t, "bad.yaml", "name: Bad Name!\ntheme: {}\n")

	output, err := executeCommand(t, "validate", good, bad)

	require.Error(t, err)
	require.Contains(t, output, "✓ "+good)
	require.Contains(t, output, "✗ "+bad)
	require.Contains(t, err.Error(), "1 of 2 documents failed")
}
