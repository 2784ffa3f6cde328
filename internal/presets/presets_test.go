package presets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	require.NoError(t, err)

	assert.Equal(t, 4, registry.Count())
	assert.Equal(t, []string{"default", "dense", "open", "smooth"}, registry.Names())

	def, err := registry.Lookup("default")
	require.NoError(t, err)
	assert.Equal(t, 0.4, def.FloorChance)
	assert.Equal(t, 2, def.CARuns)
	assert.Equal(t, 0, def.OpenThreshold)
	assert.Equal(t, 8, def.CellSize)
}

func TestPresetsAreUsable(t *testing.T) {
	registry := MustLoadRegistry()
	for _, p := range registry.All() {
		t.Run(p.ID, func(t *testing.T) {
			assert.NotEmpty(t, p.Description)
			assert.GreaterOrEqual(t, p.FloorChance, 0.0)
			assert.LessOrEqual(t, p.FloorChance, 1.0)
			assert.GreaterOrEqual(t, p.CARuns, 0)
			assert.Positive(t, p.CellSize)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := MustLoadRegistry().Lookup("lava")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
	assert.Contains(t, err.Error(), "default")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[File]("missing.json")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoad[File]("missing.json") })
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#C8B896", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}
}

func TestPaletteParse(t *testing.T) {
	palette, err := MustLoadRegistry().Palette().Parse()
	require.NoError(t, err)
	assert.NotEqual(t, palette.Wall, palette.Floor)

	_, err = PaletteDef{Wall: "#000000", Floor: "nope", Low: "#000000", High: "#FFFFFF"}.Parse()
	assert.ErrorContains(t, err, "floor color")
}
