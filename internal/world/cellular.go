package world

const (
	// A cell with fewer adjacent walls than floorBelow becomes floor.
	floorBelow = 4
	// A cell with more adjacent walls than wallAbove becomes wall.
	wallAbove = 5
)

// fillGrid draws one value per cell, column by column. Draws below
// floorChance become floor, the rest wall.
func fillGrid(width, height int, floorChance float64, s *Stream) *Grid {
	g := newGrid(width, height, TileWall)
	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			if s.Next() < floorChance {
				g.set(col, row, TileFloor)
			}
		}
	}
	return g
}

// smooth runs one cellular-automaton pass and returns a new grid.
// The perimeter is copied unchanged; grids without interior cells come back as a copy.
func smooth(g *Grid) *Grid {
	next := g.clone()
	for col := 1; col < g.width-1; col++ {
		for row := 1; row < g.height-1; row++ {
			walls := g.AdjacentWalls(col, row)
			switch {
			case walls < floorBelow:
				next.set(col, row, TileFloor)
			case walls > wallAbove:
				next.set(col, row, TileWall)
			}
		}
	}
	return next
}
