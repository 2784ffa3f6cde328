package presets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// PaletteDef holds the inspector colors as hex strings.
type PaletteDef struct {
	Wall  string `json:"wall"`
	Floor string `json:"floor"`
	Low   string `json:"low"`  // Height 0
	High  string `json:"high"` // Height 1
}

// Palette holds parsed inspector colors.
type Palette struct {
	Wall  tcell.Color
	Floor tcell.Color
	Low   tcell.Color
	High  tcell.Color
}

// Parse converts every hex color in the definition.
func (d PaletteDef) Parse() (Palette, error) {
	var p Palette
	var err error
	if p.Wall, err = ParseHexColor(d.Wall); err != nil {
		return Palette{}, fmt.Errorf("wall color: %w", err)
	}
	if p.Floor, err = ParseHexColor(d.Floor); err != nil {
		return Palette{}, fmt.Errorf("floor color: %w", err)
	}
	if p.Low, err = ParseHexColor(d.Low); err != nil {
		return Palette{}, fmt.Errorf("low height color: %w", err)
	}
	if p.High, err = ParseHexColor(d.High); err != nil {
		return Palette{}, fmt.Errorf("high height color: %w", err)
	}
	return p, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
