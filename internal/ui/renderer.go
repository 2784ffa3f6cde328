package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/world"
)

// Renderer handles drawing caves to the screen.
type Renderer struct {
	screen  *Screen
	palette presets.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette presets.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the cave's tiles. With heights set, each cell's background is
// shaded by the mean of the height samples it covers.
func (r *Renderer) Render(cave *world.Cave, heights bool) {
	r.screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(r.palette.Wall)
	floorStyle := tcell.StyleDefault.Foreground(r.palette.Floor)

	for row := 0; row < cave.Height(); row++ {
		for col := 0; col < cave.Width(); col++ {
			tile := cave.At(col, row)
			style := wallStyle
			if tile.IsPassable() {
				style = floorStyle
			}
			if heights {
				style = style.Background(r.shade(CellHeight(cave, col, row)))
			}
			r.screen.SetContent(col, row, tile.Rune(), style)
		}
	}

	r.screen.Show()
}

// RenderMessage displays a message starting at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
	r.screen.Show()
}

// shade blends the palette's low and high colors by v in [0,1].
func (r *Renderer) shade(v float64) tcell.Color {
	lr, lg, lb := r.palette.Low.RGB()
	hr, hg, hb := r.palette.High.RGB()
	mix := func(a, b int32) int32 {
		return a + int32(math.Round(float64(b-a)*v))
	}
	return tcell.NewRGBColor(mix(lr, hr), mix(lg, hg), mix(lb, hb))
}

// CellHeight returns the mean height sample under grid cell (col, row).
func CellHeight(cave *world.Cave, col, row int) float64 {
	hf := cave.HeightField()
	cw, ch := cave.CellWidth(), cave.CellHeight()
	sum := 0.0
	for x := col * cw; x < (col+1)*cw; x++ {
		for y := row * ch; y < (row+1)*ch; y++ {
			sum += hf.At(x, y)
		}
	}
	return sum / float64(cw*ch)
}
