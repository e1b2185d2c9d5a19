// Package themefile reads and writes named theme documents: a small YAML
// envelope carrying a name, an optional description and a partial theme
// configuration. The engine itself owns no file format; everything
// file-shaped lives here.
package themefile

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	glazeerrors "github.com/glazekit/glaze/pkg/errors"
	"github.com/glazekit/glaze/pkg/theme"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Document is one named theme on disk.
//
//	name: ocean
//	description: Calm blue light theme
//	theme:
//	  palette:
//	    primary: { main: "#0b6e99" }
type Document struct {
	Name        string         `yaml:"name" validate:"required,themename,max=64"`
	Description string         `yaml:"description,omitempty"`
	Theme       theme.Override `yaml:"theme"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, glazeerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a document. Decoding is permissive: unknown
// keys flow into the override's Extra maps rather than failing. Validation
// gates only what a document must get right, the name and the well-formed
// shape of known fields.
func Parse(data []byte, path string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, glazeerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(path, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Save writes the document atomically: marshal, write a temp file in the
// same directory, rename over the target.
func Save(path string, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("save %s: document is nil", path)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal theme document: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
