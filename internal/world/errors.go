package world

import "errors"

var (
	// ErrInvalidProbability indicates a floor chance outside [0,1].
	ErrInvalidProbability = errors.New("world: floor chance must be within [0,1]")
	// ErrInvalidDimension indicates a width or height below 1.
	ErrInvalidDimension = errors.New("world: width and height must be at least 1")
	// ErrInvalidRuns indicates a negative smoothing run count.
	ErrInvalidRuns = errors.New("world: ca runs must not be negative")
	// ErrInvalidCellSize indicates a height-field cell size the synthesizer cannot halve down to 1.
	ErrInvalidCellSize = errors.New("world: invalid height field cell size")
	// ErrNeighborMismatch indicates a neighbor cave whose dimensions differ from the generator's.
	ErrNeighborMismatch = errors.New("world: neighbor dimensions do not match")
)
