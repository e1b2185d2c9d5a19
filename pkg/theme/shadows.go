package theme

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/glazekit/glaze/pkg/theme/tokens"
)

// ShadowsOverride customizes the elevation table. It takes one of two
// forms: sparse slots keyed by elevation index, or a full replacement
// table that must contain exactly tokens.Elevations entries. In YAML the
// forms are a mapping and a sequence respectively:
//
//	shadows:
//	  2: "0px 1px 2px rgba(0,0,0,0.3)"
//
//	shadows: ["none", "...", ...]   # all 25 entries
//
// Every elevation not named by the override keeps its default string; the
// table length is a fixed invariant and violations fail resolution.
type ShadowsOverride struct {
	slots map[int]string
	table []string
}

// ShadowSlots builds a sparse shadow override from elevation indexes.
func ShadowSlots(slots map[int]string) *ShadowsOverride {
	out := make(map[int]string, len(slots))
	for k, v := range slots {
		out[k] = v
	}
	return &ShadowsOverride{slots: out}
}

// ShadowTable builds a wholesale replacement of the elevation table.
func ShadowTable(entries ...string) *ShadowsOverride {
	return &ShadowsOverride{table: cloneStrings(entries)}
}

func (o *ShadowsOverride) clone() *ShadowsOverride {
	if o == nil {
		return nil
	}
	out := &ShadowsOverride{table: cloneStrings(o.table)}
	if o.slots != nil {
		out.slots = make(map[int]string, len(o.slots))
		for k, v := range o.slots {
			out.slots[k] = v
		}
	}
	return out
}

// apply resolves the override against the base table: a full table (if
// any) replaces the base after length validation, then sparse slots land
// on top index by index. Any violation aborts with no partial result.
func (o *ShadowsOverride) apply(base tokens.Shadows) (tokens.Shadows, error) {
	if o == nil {
		return base, nil
	}
	out := base
	if o.table != nil {
		if len(o.table) != tokens.Elevations {
			return tokens.Shadows{}, &ShadowLengthError{Got: len(o.table)}
		}
		copy(out[:], o.table)
	}
	for idx, v := range o.slots {
		if idx < 0 || idx >= tokens.Elevations {
			return tokens.Shadows{}, &ShadowIndexError{Index: idx}
		}
		out[idx] = v
	}
	return out, nil
}

func mergeShadowsOverride(a, b *ShadowsOverride) *ShadowsOverride {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		return b.clone()
	}
	if b == nil {
		return a.clone()
	}
	// A later full table resets any earlier customization.
	if b.table != nil {
		return b.clone()
	}
	out := a.clone()
	if len(b.slots) > 0 && out.slots == nil {
		out.slots = make(map[int]string, len(b.slots))
	}
	for k, v := range b.slots {
		out.slots[k] = v
	}
	return out
}

func (o *ShadowsOverride) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		// Walk the pairs by hand so both plain and quoted indexes decode;
		// documents converted through JSON carry the keys as strings.
		slots := make(map[int]string, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			idx, err := strconv.Atoi(keyNode.Value)
			if err != nil {
				return fmt.Errorf("shadows: elevation slot key %q must be an integer index (line %d)", keyNode.Value, keyNode.Line)
			}
			if valueNode.Kind != yaml.ScalarNode {
				return fmt.Errorf("shadows: elevation %d must map to a single string (line %d)", idx, valueNode.Line)
			}
			slots[idx] = valueNode.Value
		}
		o.slots = slots
		o.table = nil
		return nil
	case yaml.SequenceNode:
		var table []string
		if err := node.Decode(&table); err != nil {
			return fmt.Errorf("shadows: replacement table must be a sequence of strings: %w", err)
		}
		o.table = table
		o.slots = nil
		return nil
	default:
		return fmt.Errorf("shadows: expected a mapping of elevation slots or a replacement sequence at line %d", node.Line)
	}
}

func (o ShadowsOverride) MarshalYAML() (any, error) {
	if o.table != nil {
		return o.table, nil
	}
	return o.slots, nil
}
