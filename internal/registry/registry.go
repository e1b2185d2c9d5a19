// Package registry keeps the set of themes a command can address by name:
// the two builtins plus whatever was loaded from files and packs.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/glazekit/glaze/internal/themefile"
	"github.com/glazekit/glaze/pkg/theme"
	"github.com/glazekit/glaze/pkg/theme/tokens"
)

// Registry holds named resolved themes. The zero value is not usable; call
// New, which seeds the builtin light and dark themes.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// New creates a registry seeded with the builtin themes.
func New() *Registry {
	return &Registry{
		entries: []Entry{
			{
				Name:        "light",
				Description: "Builtin light theme",
				Source:      SourceBuiltin,
				Theme:       theme.Default(),
			},
			{
				Name:        "dark",
				Description: "Builtin dark theme",
				Source:      SourceBuiltin,
				Theme: theme.MustNew(&theme.Override{
					Palette: &theme.PaletteOverride{Mode: theme.Ptr(tokens.ModeDark)},
				}),
			},
		},
	}
}

// Register adds a new entry. Names are unique across all sources.
func (r *Registry) Register(e Entry) error {
	if err := ValidateName(e.Name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.entries {
		if existing.Name == e.Name {
			return fmt.Errorf("theme %q already registered (from %s)", e.Name, existing.Source)
		}
	}

	r.entries = append(r.entries, e)
	return nil
}

// Get retrieves a theme by name.
func (r *Registry) Get(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Name == name {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("theme not found: %s", name)
}

// List returns all entries in registration order.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]Entry, len(r.entries))
	copy(result, r.entries)
	return result
}

// Names returns all registered names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Len reports how many themes are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// LoadDir parses every .yaml and .yml document directly under dir, resolves
// each against the defaults, and registers the results under the given
// source. It returns how many themes were added. The first broken document
// aborts the load.
func (r *Registry) LoadDir(dir string, source Source) (int, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read theme directory: %w", err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(de.Name())) {
		case ".yaml", ".yml":
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)

	added := 0
	for _, name := range names {
		path := filepath.Join(dir, name)

		doc, err := themefile.Load(path)
		if err != nil {
			return added, err
		}

		resolved, err := theme.New(&doc.Theme)
		if err != nil {
			return added, fmt.Errorf("resolve theme %s: %w", path, err)
		}

		entry := Entry{
			Name:        doc.Name,
			Description: doc.Description,
			Source:      source,
			Path:        path,
			Theme:       resolved,
		}
		if err := r.Register(entry); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}
