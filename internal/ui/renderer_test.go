package ui

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/world"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	sim.SetSize(40, 12)
	return sim, WrapScreen(sim)
}

func testPalette(t *testing.T) presets.Palette {
	t.Helper()
	p, err := presets.MustLoadRegistry().Palette().Parse()
	require.NoError(t, err)
	return p
}

func generate(t *testing.T, p world.Params, floorChance float64) *world.Cave {
	t.Helper()
	g, err := world.NewGenerator(p)
	require.NoError(t, err)
	c, err := g.Generate(context.Background(), floorChance, world.Neighbors{})
	require.NoError(t, err)
	return c
}

func TestRenderTiles(t *testing.T) {
	sim, screen := newSimScreen(t)
	defer screen.Close()

	palette := testPalette(t)
	cave := generate(t, world.DefaultParams(12, 6, 3), world.DefaultFloorChance)
	NewRenderer(screen, palette).Render(cave, false)

	for row := 0; row < cave.Height(); row++ {
		for col := 0; col < cave.Width(); col++ {
			r, _, style, _ := sim.GetContent(col, row)
			assert.Equal(t, cave.At(col, row).Rune(), r, "cell (%d,%d)", col, row)

			fg, _, _ := style.Decompose()
			want := palette.Wall
			if cave.At(col, row) == world.TileFloor {
				want = palette.Floor
			}
			assert.Equal(t, want, fg, "cell (%d,%d) color", col, row)
		}
	}
}

func TestRenderHeightsKeepsTiles(t *testing.T) {
	sim, screen := newSimScreen(t)
	defer screen.Close()

	cave := generate(t, world.DefaultParams(4, 4, 9), 1.0)
	NewRenderer(screen, testPalette(t)).Render(cave, true)

	r, _, _, _ := sim.GetContent(1, 1)
	assert.Equal(t, '.', r)
}

func TestRenderMessage(t *testing.T) {
	sim, screen := newSimScreen(t)
	defer screen.Close()

	NewRenderer(screen, testPalette(t)).RenderMessage("seed 4", 10)
	for i, want := range "seed 4" {
		r, _, _, _ := sim.GetContent(i, 10)
		assert.Equal(t, want, r)
	}
}

func TestCellHeight(t *testing.T) {
	// A single cell of 4x4 samples is grown from one seed value and stays constant.
	p := world.DefaultParams(1, 1, 5)
	p.CellWidth, p.CellHeight = 4, 4
	cave := generate(t, p, 0.5)

	assert.Equal(t, cave.HeightField().At(0, 0), CellHeight(cave, 0, 0))

	big := generate(t, world.DefaultParams(6, 3, 5), 0.5)
	for col := 0; col < 6; col++ {
		v := CellHeight(big, col, 1)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestShadeEndpoints(t *testing.T) {
	palette := testPalette(t)
	r := NewRenderer(nil, palette)

	assert.Equal(t, palette.Low.TrueColor(), r.shade(0).TrueColor())
	assert.Equal(t, palette.High.TrueColor(), r.shade(1).TrueColor())
}
