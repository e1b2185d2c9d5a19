package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, path, primary string) {
	t.Helper()
	doc := "name: live\ntheme:\n  palette:\n    primary:\n      main: \"" + primary + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
}

func TestWatcherEmitsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.yaml")
	writeTheme(t, path, "#1976d2")

	w, err := New(path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	writeTheme(t, path, "#0b6e99")

	select {
	case event := <-w.Events():
		require.Equal(t, w.Path(), event.Path)
		require.False(t, event.At.IsZero())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.yaml")
	writeTheme(t, path, "#1976d2")

	w, err := New(path, 200*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	for _, c := range []string{"#111111", "#222222", "#333333"} {
		writeTheme(t, path, c)
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for coalesced event")
	}

	select {
	case event := <-w.Events():
		t.Fatalf("expected a single coalesced event, got a second one: %+v", event)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.yaml")
	writeTheme(t, path, "#1976d2")

	w, err := New(path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("name: other\n"), 0o644))

	select {
	case event := <-w.Events():
		t.Fatalf("unexpected event for sibling file: %+v", event)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcherSurvivesRenameOver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.yaml")
	writeTheme(t, path, "#1976d2")

	w, err := New(path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	// Save the way editors do: write a temp file, rename it over the target.
	tmp := filepath.Join(dir, "live.yaml.tmp")
	writeTheme(t, tmp, "#0b6e99")
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for rename event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.yaml")
	writeTheme(t, path, "#1976d2")

	w, err := New(path, 0)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, open := <-w.Events()
	require.False(t, open)
}

func TestWatcherMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.yaml"), 0)
	require.Error(t, err)
}
