package theme

import (
	"fmt"

	"github.com/glazekit/glaze/pkg/theme/tokens"
)

// ShadowLengthError reports a replacement shadow table whose length is not
// the canonical tokens.Elevations. Consumers index the table positionally,
// so resolution fails fast instead of handing out a theme that breaks an
// elevation lookup later.
type ShadowLengthError struct {
	Got int
}

func (e *ShadowLengthError) Error() string {
	return fmt.Sprintf("shadow table must contain exactly %d entries, got %d", tokens.Elevations, e.Got)
}

// ShadowIndexError reports a sparse shadow slot outside the elevation
// range.
type ShadowIndexError struct {
	Index int
}

func (e *ShadowIndexError) Error() string {
	return fmt.Sprintf("shadow elevation %d is out of range [0, %d)", e.Index, tokens.Elevations)
}
