package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glazekit/glaze/pkg/theme"
	"github.com/glazekit/glaze/pkg/theme/tokens"
)

func TestRegistryNewSeedsBuiltins(t *testing.T) {
	reg := New()
	require.NotNil(t, reg)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"dark", "light"}, reg.Names())

	light, err := reg.Get("light")
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, light.Source)
	assert.Equal(t, tokens.ModeLight, light.Theme.Palette.Mode)
	assert.Equal(t, theme.Default(), light.Theme)

	dark, err := reg.Get("dark")
	require.NoError(t, err)
	assert.Equal(t, tokens.ModeDark, dark.Theme.Palette.Mode)
	assert.Equal(t, "#121212", dark.Theme.Palette.Background.Default)
}

func TestRegistryRegister(t *testing.T) {
	reg := New()

	entry := Entry{
		Name:        "ocean",
		Description: "Calm blue light theme",
		Source:      SourceFile,
		Path:        "/themes/ocean.yaml",
		Theme:       theme.Default(),
	}

	err := reg.Register(entry)
	require.NoError(t, err)

	retrieved, err := reg.Get("ocean")
	require.NoError(t, err)
	assert.Equal(t, "ocean", retrieved.Name)
	assert.Equal(t, SourceFile, retrieved.Source)
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	reg := New()

	err := reg.Register(Entry{Name: "light", Source: SourceFile, Theme: theme.Default()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Contains(t, err.Error(), "builtin")
}

func TestRegistryRegisterInvalidName(t *testing.T) {
	reg := New()

	err := reg.Register(Entry{Name: "Ocean Blue", Source: SourceFile, Theme: theme.Default()})
	assert.Error(t, err)

	err = reg.Register(Entry{Name: "", Source: SourceFile, Theme: theme.Default()})
	assert.Error(t, err)
}

func TestRegistryGetNotFound(t *testing.T) {
	reg := New()

	_, err := reg.Get("nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRegistryListReturnsCopy(t *testing.T) {
	reg := New()

	entries := reg.List()
	require.Len(t, entries, 2)
	entries[0].Name = "mutated"

	fresh := reg.List()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

func TestRegistryLoadDir(t *testing.T) {
	dir := t.TempDir()

	ocean := `name: ocean
description: Calm blue light theme
theme:
  palette:
    primary:
      main: "#0b6e99"
`
	midnight := `name: midnight
theme:
  palette:
    mode: dark
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ocean.yaml"), []byte(ocean), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "midnight.yml"), []byte(midnight), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a theme"), 0o644))

	reg := New()
	added, err := reg.LoadDir(dir, SourcePack)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 4, reg.Len())

	entry, err := reg.Get("ocean")
	require.NoError(t, err)
	assert.Equal(t, SourcePack, entry.Source)
	assert.Equal(t, "#0b6e99", entry.Theme.Palette.Primary.Main)

	entry, err = reg.Get("midnight")
	require.NoError(t, err)
	assert.Equal(t, tokens.ModeDark, entry.Theme.Palette.Mode)
}

func TestRegistryLoadDirBrokenDocument(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: [broken\n"), 0o644))

	reg := New()
	_, err := reg.LoadDir(dir, SourceFile)
	assert.Error(t, err)
}

func TestRegistryLoadDirShadowViolation(t *testing.T) {
	dir := t.TempDir()

	doc := `name: flat
theme:
  shadows:
    - none
    - 0px 1px 3px rgba(0,0,0,0.2)
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flat.yaml"), []byte(doc), 0o644))

	reg := New()
	_, err := reg.LoadDir(dir, SourceFile)
	require.Error(t, err)

	var lengthErr *theme.ShadowLengthError
	assert.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, 2, lengthErr.Got)
}

func TestRegistryLoadDirMissing(t *testing.T) {
	reg := New()
	_, err := reg.LoadDir(filepath.Join(t.TempDir(), "absent"), SourceFile)
	assert.Error(t, err)
}
