// Package inspector runs the interactive terminal view of generated caves.
package inspector

// Mode selects what the inspector draws.
type Mode int

const (
	// ModeTiles draws the floor plan only.
	ModeTiles Mode = iota
	// ModeHeight shades the floor plan with the height field.
	ModeHeight
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeTiles:
		return "tiles"
	case ModeHeight:
		return "height"
	default:
		return "unknown"
	}
}
