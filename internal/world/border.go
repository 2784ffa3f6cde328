package world

// Neighbors holds already generated caves adjacent to the one being built.
// Any of them may be nil.
type Neighbors struct {
	Top    *Cave
	Right  *Cave
	Bottom *Cave
	Left   *Cave
}

// Count returns how many neighbors are present.
func (n Neighbors) Count() int {
	count := 0
	for _, c := range []*Cave{n.Top, n.Right, n.Bottom, n.Left} {
		if c != nil {
			count++
		}
	}
	return count
}

// check returns ErrNeighborMismatch if a present neighbor has other dimensions.
func (n Neighbors) check(width, height int) error {
	for _, c := range []*Cave{n.Top, n.Right, n.Bottom, n.Left} {
		if c != nil && (c.Width() != width || c.Height() != height) {
			return ErrNeighborMismatch
		}
	}
	return nil
}

// stitch copies the facing edge of each neighbor onto g.
// Rows are written before columns, so column stitches own the corners.
func stitch(g *Grid, n Neighbors) {
	last := g.height - 1
	if n.Top != nil {
		for col := 0; col < g.width; col++ {
			g.set(col, 0, n.Top.grid.At(col, last))
		}
	}
	if n.Bottom != nil {
		for col := 0; col < g.width; col++ {
			g.set(col, last, n.Bottom.grid.At(col, 0))
		}
	}

	last = g.width - 1
	if n.Left != nil {
		for row := 0; row < g.height; row++ {
			g.set(0, row, n.Left.grid.At(last, row))
		}
	}
	if n.Right != nil {
		for row := 0; row < g.height; row++ {
			g.set(last, row, n.Right.grid.At(0, row))
		}
	}
}

// openBorders turns non-corner edge cells into floor when they have at most
// threshold adjacent walls. It works in place: top and bottom edges first,
// then left and right, so later cells see earlier openings. Edges stitched
// from a present neighbor are left as copied so the seam still matches.
func openBorders(g *Grid, threshold int, n Neighbors) {
	bottom, right := g.height-1, g.width-1
	open := func(col, row int) {
		if g.AdjacentWalls(col, row) <= threshold {
			g.set(col, row, TileFloor)
		}
	}

	for col := 1; col < right; col++ {
		if n.Top == nil {
			open(col, 0)
		}
		if n.Bottom == nil {
			open(col, bottom)
		}
	}
	for row := 1; row < bottom; row++ {
		if n.Left == nil {
			open(0, row)
		}
		if n.Right == nil {
			open(right, row)
		}
	}
}
