package world

import (
	"io"
	"strings"
)

// Grid is a fixed-size matrix of tiles addressed by (col, row).
// Cells are stored column-major.
type Grid struct {
	width  int
	height int
	cells  []Tile
}

// newGrid creates a grid with every cell set to fill.
func newGrid(width, height int, fill Tile) *Grid {
	cells := make([]Tile, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(col, row int) int { return col*g.height + row }

// InBounds reports whether (col, row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// At returns the tile at (col, row). Out-of-range positions read as TileWall.
func (g *Grid) At(col, row int) Tile {
	if !g.InBounds(col, row) {
		return TileWall
	}
	return g.cells[g.index(col, row)]
}

func (g *Grid) set(col, row int, t Tile) {
	g.cells[g.index(col, row)] = t
}

func (g *Grid) clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// AdjacentWalls counts wall tiles in the Moore neighborhood of (col, row).
// Positions outside the grid are not counted.
func (g *Grid) AdjacentWalls(col, row int) int {
	count := 0
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			c, r := col+dc, row+dr
			if g.InBounds(c, r) && g.cells[g.index(c, r)] == TileWall {
				count++
			}
		}
	}
	return count
}

// Count returns the number of cells holding t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// WriteTo writes the textual dump: one line per row, each tile followed by a space.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

// String returns the textual dump of the grid.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((2*g.width + 1) * g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			b.WriteRune(g.At(col, row).Rune())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
