package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glazekit/glaze/internal/packs"
	"github.com/glazekit/glaze/internal/registry"
	"github.com/glazekit/glaze/internal/themefile"
	"github.com/glazekit/glaze/pkg/theme"
)

// loadRegistry builds the working theme set for a command: builtins,
// then installed packs, then any extra documents given on the command
// line. Pack failures abort rather than skip so a broken pack is never
// silently invisible.
func loadRegistry(app *AppContext, flags *rootFlags, files ...string) (*registry.Registry, error) {
	reg := registry.New()

	root, err := packsRoot(flags)
	if err != nil {
		return nil, fmt.Errorf("locate pack directory: %w", err)
	}
	mgr := packs.NewManager(root, app.logger())
	if _, err := mgr.LoadInto(reg); err != nil {
		return nil, err
	}

	for _, path := range files {
		entry, err := entryFromFile(path)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(entry); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// entryFromFile loads and resolves a theme document into a registry
// entry sourced from the local filesystem.
func entryFromFile(path string) (registry.Entry, error) {
	doc, err := themefile.Load(path)
	if err != nil {
		return registry.Entry{}, err
	}
	resolved, err := theme.New(&doc.Theme)
	if err != nil {
		return registry.Entry{}, fmt.Errorf("resolve theme %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return registry.Entry{
		Name:        doc.Name,
		Description: doc.Description,
		Source:      registry.SourceFile,
		Path:        abs,
		Theme:       resolved,
	}, nil
}

// refToEntry resolves a command-line theme reference, which is either
// a registered name or a path to a theme document.
func refToEntry(reg *registry.Registry, ref string) (registry.Entry, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return entryFromFile(ref)
	}
	return reg.Get(ref)
}
