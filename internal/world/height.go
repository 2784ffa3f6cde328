package world

const (
	// DefaultCellSize is the number of height samples per grid cell along each axis.
	DefaultCellSize = 8

	// heightStartFactor is the downscale of the seed field relative to the final one.
	heightStartFactor = 4
)

// HeightField is a 2D field of values in [0,1], addressed by (x, y).
// Values are stored column-major.
type HeightField struct {
	width  int
	height int
	values []float64
}

func newHeightField(width, height int) *HeightField {
	return &HeightField{width: width, height: height, values: make([]float64, width*height)}
}

// Width returns the number of samples along x.
func (h *HeightField) Width() int { return h.width }

// Height returns the number of samples along y.
func (h *HeightField) Height() int { return h.height }

func (h *HeightField) index(x, y int) int { return x*h.height + y }

// At returns the value at (x, y), or 0 outside the field.
func (h *HeightField) At(x, y int) float64 {
	if x < 0 || x >= h.width || y < 0 || y >= h.height {
		return 0
	}
	return h.values[h.index(x, y)]
}

// Min returns the smallest value in the field.
func (h *HeightField) Min() float64 {
	m := 1.0
	for _, v := range h.values {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value in the field.
func (h *HeightField) Max() float64 {
	m := 0.0
	for _, v := range h.values {
		if v > m {
			m = v
		}
	}
	return m
}

// validCellSize reports whether a grid extent scaled by cell can be divided
// by the start factor.
func validCellSize(extent, cell int) bool {
	return cell >= 1 && (extent*cell)%heightStartFactor == 0
}

// synthesizeHeight builds a height field of (width*cellW) x (height*cellH).
// A binary seed field at a quarter resolution is doubled and blurred until
// it reaches full resolution.
func synthesizeHeight(width, height, cellW, cellH int, s *Stream) *HeightField {
	fullW, fullH := width*cellW, height*cellH
	factor := heightStartFactor

	field := newHeightField(fullW/factor, fullH/factor)
	for x := 0; x < field.width; x++ {
		for y := 0; y < field.height; y++ {
			if s.Next() > 0.5 {
				field.values[field.index(x, y)] = 1.0
			}
		}
	}

	for factor /= 2; factor > 0; factor /= 2 {
		field = upsample(field, fullW/factor, fullH/factor)
		blur(field)
	}
	return field
}

// upsample replicates every source value into a 2x2 block of a w x h field.
func upsample(src *HeightField, w, h int) *HeightField {
	dst := newHeightField(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			dst.values[dst.index(x, y)] = src.values[src.index(x/2, y/2)]
		}
	}
	return dst
}

// blur replaces each value with the mean of itself and its in-bounds Moore
// neighbors. It updates in place, column by column, so later cells read
// already blurred values.
func blur(f *HeightField) {
	for x := 0; x < f.width; x++ {
		for y := 0; y < f.height; y++ {
			sum, count := 0.0, 0
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= f.width || ny < 0 || ny >= f.height {
						continue
					}
					sum += f.values[f.index(nx, ny)]
					count++
				}
			}
			f.values[f.index(x, y)] = sum / float64(count)
		}
	}
}
