// Package packs manages theme packs: git repositories of theme documents
// cloned under a local root directory and loaded into the registry next to
// the builtins.
package packs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/glazekit/glaze/internal/logger"
	"github.com/glazekit/glaze/internal/registry"
	glazeerrors "github.com/glazekit/glaze/pkg/errors"
)

// Pack describes one installed theme pack.
type Pack struct {
	Name   string
	Path   string
	URL    string
	Themes int
}

// Manager installs, updates and removes packs under a single root directory.
// Every pack is a single-branch clone named after its repository.
type Manager struct {
	root string
	log  *logger.Logger
}

// NewManager creates a manager rooted at dir.
func NewManager(dir string, log *logger.Logger) *Manager {
	return &Manager{root: dir, log: log.WithComponent("packs")}
}

// DefaultRoot returns the per-user pack directory.
func DefaultRoot() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(base, "glaze", "packs"), nil
}

// Root returns the directory packs are installed under.
func (m *Manager) Root() string {
	return m.root
}

// Dir returns the directory a pack with the given name lives in.
func (m *Manager) Dir(name string) string {
	return filepath.Join(m.root, name)
}

// Add clones the repository at url into the pack root. The pack name is
// derived from the repository URL.
func (m *Manager) Add(ctx context.Context, url string) (Pack, error) {
	if strings.TrimSpace(url) == "" {
		return Pack{}, glazeerrors.NewPackError("", "add", fmt.Errorf("repository URL is empty"))
	}

	name := registry.NameFromPath(url)
	dest := m.Dir(name)

	if _, err := os.Stat(dest); err == nil {
		return Pack{}, glazeerrors.NewPackError(name, "add", fmt.Errorf("already installed at %s", dest))
	} else if !os.IsNotExist(err) {
		return Pack{}, glazeerrors.NewPackError(name, "add", fmt.Errorf("cannot access destination: %w", err))
	}

	if err := os.MkdirAll(m.root, 0o755); err != nil {
		return Pack{}, glazeerrors.NewPackError(name, "add", fmt.Errorf("create pack root: %w", err))
	}

	m.log.WithFields(map[string]any{"pack": name, "url": url}).Debug("cloning pack")

	// Full history on purpose: Update pulls, and pulling into a shallow
	// clone is unreliable with go-git.
	cloneOpts := &git.CloneOptions{
		URL:          url,
		SingleBranch: true,
	}
	if _, err := git.PlainCloneContext(ctx, dest, false, cloneOpts); err != nil {
		os.RemoveAll(dest)
		return Pack{}, glazeerrors.NewPackError(name, "add", fmt.Errorf("clone %s: %w", url, err))
	}

	pack, err := m.info(name)
	if err != nil {
		return Pack{}, err
	}

	m.log.WithFields(map[string]any{"pack": name, "themes": pack.Themes}).Info("pack installed")
	return pack, nil
}

// Update pulls the latest changes for an installed pack. An already
// up-to-date pack is not an error.
func (m *Manager) Update(ctx context.Context, name string) (Pack, error) {
	dest := m.Dir(name)

	repo, err := git.PlainOpen(dest)
	if err != nil {
		return Pack{}, glazeerrors.NewPackError(name, "update", fmt.Errorf("not installed: %w", err))
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Pack{}, glazeerrors.NewPackError(name, "update", err)
	}

	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return Pack{}, glazeerrors.NewPackError(name, "update", err)
	}

	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		m.log.WithFields(map[string]any{"pack": name}).Debug("pack already up to date")
	} else {
		m.log.WithFields(map[string]any{"pack": name}).Info("pack updated")
	}

	return m.info(name)
}

// Remove deletes an installed pack from disk.
func (m *Manager) Remove(name string) error {
	dest := m.Dir(name)

	if _, err := os.Stat(dest); err != nil {
		if os.IsNotExist(err) {
			return glazeerrors.NewPackError(name, "remove", fmt.Errorf("not installed"))
		}
		return glazeerrors.NewPackError(name, "remove", err)
	}

	if err := os.RemoveAll(dest); err != nil {
		return glazeerrors.NewPackError(name, "remove", err)
	}

	m.log.WithFields(map[string]any{"pack": name}).Info("pack removed")
	return nil
}

// List returns all installed packs sorted by name. A missing pack root means
// no packs are installed.
func (m *Manager) List() ([]Pack, error) {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read pack root: %w", err)
	}

	packs := make([]Pack, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		pack, err := m.info(entry.Name())
		if err != nil {
			m.log.WithFields(map[string]any{"pack": entry.Name()}).Warn("skipping directory that is not a pack")
			continue
		}
		packs = append(packs, pack)
	}

	sort.Slice(packs, func(i, j int) bool { return packs[i].Name < packs[j].Name })
	return packs, nil
}

// LoadInto registers every theme from every installed pack. The first broken
// document aborts the load so problems surface instead of silently shaping
// what a name resolves to.
func (m *Manager) LoadInto(reg *registry.Registry) (int, error) {
	packs, err := m.List()
	if err != nil {
		return 0, err
	}

	total := 0
	for _, pack := range packs {
		added, err := reg.LoadDir(themeDir(pack.Path), registry.SourcePack)
		total += added
		if err != nil {
			return total, glazeerrors.NewPackError(pack.Name, "load", err)
		}
	}

	return total, nil
}

// info inspects an installed pack directory.
func (m *Manager) info(name string) (Pack, error) {
	dest := m.Dir(name)

	repo, err := git.PlainOpen(dest)
	if err != nil {
		return Pack{}, glazeerrors.NewPackError(name, "inspect", err)
	}

	var url string
	remote, err := repo.Remote("origin")
	if err == nil && len(remote.Config().URLs) > 0 {
		url = remote.Config().URLs[0]
	}

	return Pack{
		Name:   name,
		Path:   dest,
		URL:    url,
		Themes: countThemes(themeDir(dest)),
	}, nil
}

// themeDir prefers a themes/ subdirectory when the pack has one, otherwise
// documents live at the pack root.
func themeDir(packPath string) string {
	sub := filepath.Join(packPath, "themes")
	if info, err := os.Stat(sub); err == nil && info.IsDir() {
		return sub
	}
	return packPath
}

func countThemes(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			count++
		}
	}
	return count
}
