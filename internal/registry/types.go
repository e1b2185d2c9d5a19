package registry

import "github.com/glazekit/glaze/pkg/theme"

// Source identifies where a registered theme came from.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceFile    Source = "file"
	SourcePack    Source = "pack"
)

// String returns the string representation of the source.
func (s Source) String() string {
	return string(s)
}

// Entry is a named, fully resolved theme. Resolution happens at registration
// time so lookups never fail after the fact.
type Entry struct {
	Name        string
	Description string
	Source      Source
	Path        string
	Theme       theme.Theme
}
