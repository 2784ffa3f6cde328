package world

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavegen/internal/telemetry"
)

const (
	// Default cave dimensions
	DefaultWidth  = 40
	DefaultHeight = 20

	// DefaultCARuns is the number of smoothing passes.
	DefaultCARuns = 2
	// DefaultFloorChance is the probability that a cell starts as floor.
	DefaultFloorChance = 0.4
)

// Params configures a Generator.
type Params struct {
	Width  int
	Height int
	Seed   int64
	CARuns int

	// Height samples per grid cell.
	CellWidth  int
	CellHeight int

	// OpenThreshold is the largest adjacent wall count at which an edge cell
	// is forced open after smoothing. Zero opens only cells with no adjacent
	// walls; a negative value disables the pass. Edges stitched from a
	// neighbor are never opened.
	OpenThreshold int
}

// DefaultParams returns Params with the default smoothing and cell size.
func DefaultParams(width, height int, seed int64) Params {
	return Params{
		Width:      width,
		Height:     height,
		Seed:       seed,
		CARuns:     DefaultCARuns,
		CellWidth:  DefaultCellSize,
		CellHeight: DefaultCellSize,
	}
}

// Validate checks the parameters.
func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, p.Width, p.Height)
	}
	if p.CARuns < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRuns, p.CARuns)
	}
	if !validCellSize(p.Width, p.CellWidth) || !validCellSize(p.Height, p.CellHeight) {
		return fmt.Errorf("%w: %dx%d cells of %dx%d must scale to multiples of %d",
			ErrInvalidCellSize, p.Width, p.Height, p.CellWidth, p.CellHeight, heightStartFactor)
	}
	return nil
}

// Generator produces caves of a fixed size from a fixed seed.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	params Params
}

// NewGenerator validates p and returns a Generator for it.
func NewGenerator(p Params) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{params: p}, nil
}

// Params returns the generator's parameters.
func (g *Generator) Params() Params {
	return g.params
}

// Generate builds a cave. Each present neighbor's facing edge is copied onto
// the new cave before smoothing; neighbors are only read.
func (g *Generator) Generate(ctx context.Context, floorChance float64, neighbors Neighbors) (*Cave, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "cave.generate")
	defer span.End()

	if math.IsNaN(floorChance) || floorChance < 0 || floorChance > 1 {
		err := fmt.Errorf("%w: got %v", ErrInvalidProbability, floorChance)
		span.RecordError(err)
		return nil, err
	}
	p := g.params
	if err := neighbors.check(p.Width, p.Height); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("generate %dx%d cave: %w", p.Width, p.Height, err)
	}

	startTime := time.Now()

	grid := fillGrid(p.Width, p.Height, floorChance, NewStream(p.Seed))
	stitch(grid, neighbors)
	for i := 0; i < p.CARuns; i++ {
		grid = smooth(grid)
	}
	openBorders(grid, p.OpenThreshold, neighbors)

	cave := newCave(ctx, p, floorChance, grid)

	// Record telemetry
	span.SetAttributes(
		attribute.Int("cave.width", p.Width),
		attribute.Int("cave.height", p.Height),
		attribute.Int64("cave.seed", p.Seed),
		attribute.Int("cave.ca_runs", p.CARuns),
		attribute.Float64("cave.floor_chance", floorChance),
		attribute.Int("cave.neighbors", neighbors.Count()),
		attribute.Int("cave.floor_cells", cave.FloorCount()),
		attribute.Int64("cave.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return cave, nil
}

// Cave is a finished tile: its floor plan, height field and generation metadata.
type Cave struct {
	seed        int64
	caRuns      int
	floorChance float64
	cellWidth   int
	cellHeight  int
	grid        *Grid
	heights     *HeightField
}

// newCave wraps a finished grid and synthesizes its height field from the
// height stream.
func newCave(ctx context.Context, p Params, floorChance float64, grid *Grid) *Cave {
	_, span := telemetry.Tracer("world").Start(ctx, "cave.heightfield")
	heights := synthesizeHeight(p.Width, p.Height, p.CellWidth, p.CellHeight, NewStream(HeightSeed(p.Seed)))
	span.SetAttributes(
		attribute.Int("heightfield.width", heights.width),
		attribute.Int("heightfield.height", heights.height),
	)
	span.End()

	return &Cave{
		seed:        p.Seed,
		caRuns:      p.CARuns,
		floorChance: floorChance,
		cellWidth:   p.CellWidth,
		cellHeight:  p.CellHeight,
		grid:        grid,
		heights:     heights,
	}
}

// Width returns the cave width in cells.
func (c *Cave) Width() int { return c.grid.width }

// Height returns the cave height in cells.
func (c *Cave) Height() int { return c.grid.height }

// Seed returns the seed the cave was generated from.
func (c *Cave) Seed() int64 { return c.seed }

// CARuns returns the number of smoothing passes applied.
func (c *Cave) CARuns() int { return c.caRuns }

// FloorChance returns the initial floor probability.
func (c *Cave) FloorChance() float64 { return c.floorChance }

// CellWidth returns the height samples per cell along x.
func (c *Cave) CellWidth() int { return c.cellWidth }

// CellHeight returns the height samples per cell along y.
func (c *Cave) CellHeight() int { return c.cellHeight }

// HeightField returns the cave's height field. It must not be modified.
func (c *Cave) HeightField() *HeightField { return c.heights }

// Grid returns the cave's floor plan. It must not be modified.
func (c *Cave) Grid() *Grid { return c.grid }

// At returns the tile at (col, row).
func (c *Cave) At(col, row int) Tile {
	return c.grid.At(col, row)
}

// FloorCount returns the number of floor cells.
func (c *Cave) FloorCount() int {
	return c.grid.Count(TileFloor)
}

// String returns the textual dump of the floor plan.
func (c *Cave) String() string {
	return c.grid.String()
}

// WriteTo writes the textual dump of the floor plan to w.
func (c *Cave) WriteTo(w io.Writer) (int64, error) {
	return c.grid.WriteTo(w)
}
