package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glazekit/glaze/internal/themefile"
	"github.com/glazekit/glaze/pkg/theme"
)

const oceanDocument = `name: ocean
description: Calm blue light theme
theme:
  palette:
    primary:
      main: "#0ea5e9"
`

func TestResolveDefaultsToLightTheme(t *testing.T) {
	output, err := executeCommand(t, "resolve")

	require.NoError(t, err)
	require.Contains(t, output, "mode: light")
	require.Contains(t, output, "#1976d2")
	require.Contains(t, output, "unit: 8")
	require.Contains(t, output, "borderRadius: 4")
}

func TestResolveDarkAsJSON(t *testing.T) {
	output, err := executeCommand(t, "resolve", "dark", "-o", "json")

	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	require.Contains(t, output, `"mode": "dark"`)
	require.Contains(t, output, "#121212")
}

func TestResolveLayersDocumentOntoBase(t *testing.T) {
	path := writeThemeDocument(t, "ocean.yaml", oceanDocument)

	output, err := executeCommand(t, "resolve", "--file", path)

	require.NoError(t, err)
	require.Contains(t, output, "#0ea5e9")
	require.Contains(t, output, "#9c27b0", "untouched secondary role keeps its default")
}

func TestResolveModeFlagSwitchesDefaults(t *testing.T) {
	output, err := executeCommand(t, "resolve", "--mode", "dark")

	require.NoError(t, err)
	require.Contains(t, output, "#121212")
}

func TestResolveSetAndGetTokenPath(t *testing.T) {
	output, err := executeCommand(t, "resolve", "--set", "shape.borderRadius=12", "--get", "shape.borderRadius")

	require.NoError(t, err)
	require.Equal(t, "12", strings.TrimSpace(output))
}

func TestResolveGetColorPath(t *testing.T) {
	output, err := executeCommand(t, "resolve", "dark", "--get", "palette.background.default")

	require.NoError(t, err)
	require.Equal(t, "#121212", strings.TrimSpace(output))
}

func TestResolveSetShadowSlot(t *testing.T) {
	output, err := executeCommand(t, "resolve", "--set", "shadows.3=none", "--get", "shadows.3")

	require.NoError(t, err)
	require.Equal(t, "none", strings.TrimSpace(output))
}

func TestResolveSetCarriesUnknownPath(t *testing.T) {
	output, err := executeCommand(t, "resolve", "--set", "zIndex.modal=1300", "--get", "extra.zIndex.modal")

	require.NoError(t, err)
	require.Equal(t, "1300", strings.TrimSpace(output))
}

func TestResolveUnknownThemeFails(t *testing.T) {
	_, err := executeCommand(t, "resolve", "nope")

	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to resolve theme")
	require.Contains(t, err.Error(), "glaze list")
}

func TestResolveRejectsUnknownOutputFormat(t *testing.T) {
	_, err := executeCommand(t, "resolve", "-o", "toml")

	require.Error(t, err)
	require.Contains(t, err.Error(), "toml")
}

func TestResolveRejectsMalformedAssignment(t *testing.T) {
	_, err := executeCommand(t, "resolve", "--set", "no-equals-sign")

	require.Error(t, err)
	require.Contains(t, err.Error(), "PATH=VALUE")
}

func TestResolveGetMissingPathFails(t *testing.T) {
	_, err := executeCommand(t, "resolve", "--get", "palette.primary.shimmer")

	require.Error(t, err)
	require.Contains(t, err.Error(), "palette.primary.shimmer")
}

func TestResolveWriteSavesDocument(t *testing.T) {
	target := filepath.Join(t.TempDir(), "snap.yaml")

	output, err := executeCommand(t, "resolve", "--set", "palette.primary.main=#ff5722", "--write", target)

	require.NoError(t, err)
	require.Contains(t, output, "wrote "+target)
	require.Contains(t, output, "theme snap")

	doc, err := themefile.Load(target)
	require.NoError(t, err)
	require.Equal(t, "snap", doc.Name)

	resolved, err := theme.New(&doc.Theme)
	require.NoError(t, err)
	require.Equal(t, "#ff5722", resolved.Palette.Primary.Main)
	require.Equal(t, "#9c27b0", resolved.Palette.Secondary.Main)
}

func TestResolveWriteRejectsGet(t *testing.T) {
	_, err := executeCommand(t, "resolve", "--get", "palette.primary.main", "--write", "snap.yaml")

	require.Error(t, err)
	require.Contains(t, err.Error(), "mutually exclusive")
}
