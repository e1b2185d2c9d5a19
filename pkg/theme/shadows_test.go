package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/glazekit/glaze/pkg/theme/tokens"
)

func TestNewShadowSlotsMergePositionally(t *testing.T) {
	t.Parallel()

	got, err := New(&Override{Shadows: ShadowSlots(map[int]string{
		2:  "0px 1px 2px rgba(0,0,0,0.3)",
		24: "0px 12px 40px rgba(0,0,0,0.4)",
	})})
	require.NoError(t, err)

	defaults := tokens.DefaultShadows()
	require.Equal(t, "0px 1px 2px rgba(0,0,0,0.3)", got.Shadows[2])
	require.Equal(t, "0px 12px 40px rgba(0,0,0,0.4)", got.Shadows[24])
	require.Len(t, got.Shadows, tokens.Elevations)
	for i := 0; i < tokens.Elevations; i++ {
		if i == 2 || i == 24 {
			continue
		}
		require.Equal(t, defaults[i], got.Shadows[i], "elevation %d should keep its default", i)
	}
}

func TestNewShadowTableReplacesWholesale(t *testing.T) {
	t.Parallel()

	entries := make([]string, tokens.Elevations)
	for i := range entries {
		entries[i] = "flat"
	}
	entries[0] = "none"

	got, err := New(&Override{Shadows: ShadowTable(entries...)})
	require.NoError(t, err)
	require.Equal(t, "none", got.Shadows[0])
	require.Equal(t, "flat", got.Shadows[1])
	require.Equal(t, "flat", got.Shadows[24])
}

func TestNewRejectsWrongShadowTableLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries int
	}{
		{name: "empty table", entries: 0},
		{name: "one short", entries: tokens.Elevations - 1},
		{name: "one long", entries: tokens.Elevations + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entries := make([]string, tt.entries)
			got, err := New(&Override{Shadows: ShadowTable(entries...)})

			var lengthErr *ShadowLengthError
			require.ErrorAs(t, err, &lengthErr)
			require.Equal(t, tt.entries, lengthErr.Got)
			require.Contains(t, err.Error(), "exactly 25")
			require.Equal(t, Theme{}, got, "a shape violation must not produce a partial result")
		})
	}
}

func TestNewRejectsShadowSlotOutOfRange(t *testing.T) {
	t.Parallel()

	for _, idx := range []int{-1, tokens.Elevations, 99} {
		got, err := New(&Override{Shadows: ShadowSlots(map[int]string{idx: "x"})})

		var indexErr *ShadowIndexError
		require.ErrorAs(t, err, &indexErr, "index %d", idx)
		require.Equal(t, idx, indexErr.Index)
		require.Equal(t, Theme{}, got)
	}
}

func TestShadowsOverrideDecodesBothYAMLForms(t *testing.T) {
	t.Parallel()

	t.Run("mapping decodes as sparse slots", func(t *testing.T) {
		t.Parallel()

		var ov Override
		require.NoError(t, yaml.Unmarshal([]byte("shadows:\n  3: \"soft\"\n"), &ov))

		got, err := New(&ov)
		require.NoError(t, err)
		require.Equal(t, "soft", got.Shadows[3])
		require.Equal(t, tokens.DefaultShadows()[4], got.Shadows[4])
	})

	t.Run("quoted slot keys decode too", func(t *testing.T) {
		t.Parallel()

		// Documents converted through JSON quote their mapping keys.
		var ov Override
		require.NoError(t, yaml.Unmarshal([]byte(`{"shadows": {"3": "soft"}}`), &ov))

		got, err := New(&ov)
		require.NoError(t, err)
		require.Equal(t, "soft", got.Shadows[3])
	})

	t.Run("non-integer slot key is rejected at decode time", func(t *testing.T) {
		t.Parallel()

		var ov Override
		err := yaml.Unmarshal([]byte("shadows:\n  deep: x\n"), &ov)
		require.Error(t, err)
		require.Contains(t, err.Error(), `"deep"`)
	})

	t.Run("sequence decodes as replacement table", func(t *testing.T) {
		t.Parallel()

		doc := "shadows:\n"
		for i := 0; i < tokens.Elevations; i++ {
			doc += "  - flat\n"
		}

		var ov Override
		require.NoError(t, yaml.Unmarshal([]byte(doc), &ov))

		got, err := New(&ov)
		require.NoError(t, err)
		require.Equal(t, "flat", got.Shadows[0])
		require.Equal(t, "flat", got.Shadows[24])
	})

	t.Run("short sequence decodes but fails resolution", func(t *testing.T) {
		t.Parallel()

		var ov Override
		require.NoError(t, yaml.Unmarshal([]byte("shadows: [a, b]\n"), &ov))

		_, err := New(&ov)
		var lengthErr *ShadowLengthError
		require.ErrorAs(t, err, &lengthErr)
		require.Equal(t, 2, lengthErr.Got)
	})

	t.Run("scalar is rejected at decode time", func(t *testing.T) {
		t.Parallel()

		var ov Override
		err := yaml.Unmarshal([]byte("shadows: none\n"), &ov)
		require.Error(t, err)
		require.Contains(t, err.Error(), "shadows")
	})
}

func TestMergeShadowsOverrideLayering(t *testing.T) {
	t.Parallel()

	t.Run("slot maps union with later slots winning", func(t *testing.T) {
		t.Parallel()

		merged := MergeOverrides(
			&Override{Shadows: ShadowSlots(map[int]string{1: "a", 2: "a"})},
			&Override{Shadows: ShadowSlots(map[int]string{2: "b", 3: "b"})},
		)

		got, err := New(merged)
		require.NoError(t, err)
		require.Equal(t, "a", got.Shadows[1])
		require.Equal(t, "b", got.Shadows[2])
		require.Equal(t, "b", got.Shadows[3])
	})

	t.Run("later full table resets earlier slots", func(t *testing.T) {
		t.Parallel()

		entries := make([]string, tokens.Elevations)
		for i := range entries {
			entries[i] = "flat"
		}

		merged := MergeOverrides(
			&Override{Shadows: ShadowSlots(map[int]string{1: "custom"})},
			&Override{Shadows: ShadowTable(entries...)},
		)

		got, err := New(merged)
		require.NoError(t, err)
		require.Equal(t, "flat", got.Shadows[1])
	})

	t.Run("slots layer on top of an earlier table", func(t *testing.T) {
		t.Parallel()

		entries := make([]string, tokens.Elevations)
		for i := range entries {
			entries[i] = "flat"
		}

		merged := MergeOverrides(
			&Override{Shadows: ShadowTable(entries...)},
			&Override{Shadows: ShadowSlots(map[int]string{5: "deep"})},
		)

		got, err := New(merged)
		require.NoError(t, err)
		require.Equal(t, "deep", got.Shadows[5])
		require.Equal(t, "flat", got.Shadows[6])
	})
}

func TestShadowConstructorsCopyTheirInputs(t *testing.T) {
	t.Parallel()

	slots := map[int]string{1: "a"}
	fromSlots := ShadowSlots(slots)
	slots[1] = "mutated"

	got, err := New(&Override{Shadows: fromSlots})
	require.NoError(t, err)
	require.Equal(t, "a", got.Shadows[1])

	entries := make([]string, tokens.Elevations)
	fromTable := ShadowTable(entries...)
	entries[0] = "mutated"

	got, err = New(&Override{Shadows: fromTable})
	require.NoError(t, err)
	require.Equal(t, "", got.Shadows[0])
}
