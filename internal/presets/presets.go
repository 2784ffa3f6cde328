package presets

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned when a preset name is not registered.
var ErrUnknownPreset = errors.New("presets: unknown preset")

// Preset is a named set of generation parameters loaded from JSON.
type Preset struct {
	ID            string  `json:"id"`            // Unique name (e.g., "default")
	Description   string  `json:"description"`   // One-line summary shown in -preset usage
	FloorChance   float64 `json:"floorChance"`   // Probability a cell starts as floor
	CARuns        int     `json:"caRuns"`        // Smoothing passes
	OpenThreshold int     `json:"openThreshold"` // Border opening threshold
	CellSize      int     `json:"cellSize"`      // Height samples per grid cell along each axis
}

// File represents the structure of presets.json.
type File struct {
	Presets []Preset   `json:"presets"`
	Palette PaletteDef `json:"palette"`
}

// LoadFile loads the embedded presets.json.
func LoadFile() (File, error) {
	return Load[File]("presets.json")
}

// Registry holds loaded presets keyed by ID.
type Registry struct {
	presets map[string]*Preset
	all     []Preset
	palette PaletteDef
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(file File) *Registry {
	registry := &Registry{
		presets: make(map[string]*Preset),
		all:     file.Presets,
		palette: file.Palette,
	}
	for i := range file.Presets {
		registry.presets[file.Presets[i].ID] = &file.Presets[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	file, err := LoadFile()
	if err != nil {
		return nil, err
	}
	if len(file.Presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(file), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	return NewRegistry(MustLoad[File]("presets.json"))
}

// Lookup returns the preset with the given ID.
func (r *Registry) Lookup(id string) (Preset, error) {
	p, ok := r.presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, id, r.Names())
	}
	return *p, nil
}

// Names returns the registered preset IDs in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.all))
	for _, p := range r.all {
		names = append(names, p.ID)
	}
	sort.Strings(names)
	return names
}

// All returns all preset definitions.
func (r *Registry) All() []Preset {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}

// Palette returns the inspector palette definition.
func (r *Registry) Palette() PaletteDef {
	return r.palette
}
