package main

import (
	"github.com/glazekit/glaze/internal/logger"
	"github.com/glazekit/glaze/internal/packs"
)

// AppContext carries shared dependencies into command constructors so
// tests can swap them out without touching globals.
type AppContext struct {
	Log *logger.Logger
}

func (a *AppContext) logger() *logger.Logger {
	if a == nil {
		return nil
	}
	return a.Log
}

// packsRoot resolves the pack directory, preferring an explicit flag
// value over the per-user default.
func packsRoot(flags *rootFlags) (string, error) {
	if flags != nil && flags.packsRoot != "" {
		return flags.packsRoot, nil
	}
	return packs.DefaultRoot()
}
