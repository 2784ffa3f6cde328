// Package config resolves cavegen run options from presets, environment
// variables and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/world"
)

// Environment variable names.
const (
	EnvWidth            = "CAVEGEN_WIDTH"
	EnvHeight           = "CAVEGEN_HEIGHT"
	EnvSeed             = "CAVEGEN_SEED"
	EnvCARuns           = "CAVEGEN_CA_RUNS"
	EnvFloorChance      = "CAVEGEN_FLOOR_CHANCE"
	EnvCellSize         = "CAVEGEN_CELL_SIZE"
	EnvOpenThreshold    = "CAVEGEN_OPEN_THRESHOLD"
	EnvPreset           = "CAVEGEN_PRESET"
	EnvHoneycombAPIKey  = "HONEYCOMB_CAVEGEN_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_CAVEGEN_DATASET"
)

// ErrInvalidStrip indicates a strip length below 1.
var ErrInvalidStrip = errors.New("config: east strip length must be at least 1")

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config holds the options for one cavegen run.
type Config struct {
	Width         int
	Height        int
	Seed          int64
	CARuns        int
	FloorChance   float64
	CellSize      int // height samples per cell along each axis
	OpenThreshold int // border opening threshold, -1 disables
	Preset        string

	East int  // number of tiles in the west-to-east strip
	View bool // open the terminal inspector instead of dumping

	HoneycombAPIKey  string
	HoneycombDataset string
}

// Default returns a Config with the reference generation settings.
func Default() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		Seed:        1,
		CARuns:      world.DefaultCARuns,
		FloorChance: world.DefaultFloorChance,
		CellSize:    world.DefaultCellSize,
		East:        1,
	}
}

// LoadDotEnv loads a .env file into the process environment.
// A missing file is not fatal for callers; they may log the error and continue.
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// Bind registers command-line flags that write into c.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "cave width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "cave height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed")
	fs.IntVar(&c.CARuns, "ca-runs", c.CARuns, "cellular automaton smoothing passes")
	fs.Float64Var(&c.FloorChance, "floor-chance", c.FloorChance, "probability a cell starts as floor, in [0,1]")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "height field samples per cell along each axis")
	fs.IntVar(&c.OpenThreshold, "open-threshold", c.OpenThreshold, "open edge cells with at most this many adjacent walls (-1 disables)")
	fs.StringVar(&c.Preset, "preset", c.Preset, "named preset to start from")
	fs.IntVar(&c.East, "east", c.East, "generate a west-to-east strip of this many stitched tiles")
	fs.BoolVar(&c.View, "view", c.View, "open the terminal inspector")
}

// ExplicitFlags returns the names of the flags set on the command line.
func ExplicitFlags(fs *flag.FlagSet) map[string]bool {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
	return explicit
}

// Merge applies flag values onto cfg, but only for flags that were explicitly
// set on the command line.
func Merge(cfg *Config, fromFlags *Config, explicitFlags map[string]bool) {
	if explicitFlags["width"] {
		cfg.Width = fromFlags.Width
	}
	if explicitFlags["height"] {
		cfg.Height = fromFlags.Height
	}
	if explicitFlags["seed"] {
		cfg.Seed = fromFlags.Seed
	}
	if explicitFlags["ca-runs"] {
		cfg.CARuns = fromFlags.CARuns
	}
	if explicitFlags["floor-chance"] {
		cfg.FloorChance = fromFlags.FloorChance
	}
	if explicitFlags["cell-size"] {
		cfg.CellSize = fromFlags.CellSize
	}
	if explicitFlags["open-threshold"] {
		cfg.OpenThreshold = fromFlags.OpenThreshold
	}
	if explicitFlags["preset"] {
		cfg.Preset = fromFlags.Preset
	}
	if explicitFlags["east"] {
		cfg.East = fromFlags.East
	}
	if explicitFlags["view"] {
		cfg.View = fromFlags.View
	}
}

// ApplyPreset copies a preset's generation settings onto c.
func (c *Config) ApplyPreset(p presets.Preset) {
	c.Preset = p.ID
	c.FloorChance = p.FloorChance
	c.CARuns = p.CARuns
	c.OpenThreshold = p.OpenThreshold
	c.CellSize = p.CellSize
}

// FromEnv overlays CAVEGEN_* variables onto cfg.
func FromEnv(cfg Config, lookup LookupFunc) (Config, error) {
	var err error
	if cfg.Width, err = envInt(lookup, EnvWidth, cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = envInt(lookup, EnvHeight, cfg.Height); err != nil {
		return cfg, err
	}
	if v, ok := lookup(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return cfg, fmt.Errorf("environment variable %s must be an integer: %w", EnvSeed, err)
		}
	}
	if cfg.CARuns, err = envInt(lookup, EnvCARuns, cfg.CARuns); err != nil {
		return cfg, err
	}
	if v, ok := lookup(EnvFloorChance); ok {
		if cfg.FloorChance, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("environment variable %s must be a number: %w", EnvFloorChance, err)
		}
	}
	if cfg.CellSize, err = envInt(lookup, EnvCellSize, cfg.CellSize); err != nil {
		return cfg, err
	}
	if cfg.OpenThreshold, err = envInt(lookup, EnvOpenThreshold, cfg.OpenThreshold); err != nil {
		return cfg, err
	}
	cfg.HoneycombAPIKey = getEnvWithDefault(lookup, EnvHoneycombAPIKey, cfg.HoneycombAPIKey)
	cfg.HoneycombDataset = getEnvWithDefault(lookup, EnvHoneycombDataset, cfg.HoneycombDataset)
	return cfg, nil
}

// PresetUsage describes the -preset flag, listing each registered preset.
func PresetUsage(registry *presets.Registry) string {
	var b strings.Builder
	b.WriteString("named preset to start from:")
	for _, p := range registry.All() {
		fmt.Fprintf(&b, "\n  %s: %s", p.ID, p.Description)
	}
	return b.String()
}

// Load resolves a Config. Later sources win: defaults, then the selected
// preset, then environment variables, then explicitly set flags.
func Load(fs *flag.FlagSet, args []string, lookup LookupFunc, registry *presets.Registry) (Config, error) {
	fromFlags := Default()
	fromFlags.Bind(fs)
	if f := fs.Lookup("preset"); f != nil {
		f.Usage = PresetUsage(registry)
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	explicit := ExplicitFlags(fs)

	cfg := Default()
	name := getEnvWithDefault(lookup, EnvPreset, "")
	if explicit["preset"] {
		name = fromFlags.Preset
	}
	if name != "" {
		p, err := registry.Lookup(name)
		if err != nil {
			return Config{}, err
		}
		cfg.ApplyPreset(p)
	}

	cfg, err := FromEnv(cfg, lookup)
	if err != nil {
		return Config{}, err
	}
	Merge(&cfg, &fromFlags, explicit)
	cfg.Preset = name

	return cfg, cfg.Validate()
}

// Params converts the generation settings to world.Params.
func (c Config) Params() world.Params {
	p := world.DefaultParams(c.Width, c.Height, c.Seed)
	p.CARuns = c.CARuns
	p.CellWidth = c.CellSize
	p.CellHeight = c.CellSize
	p.OpenThreshold = c.OpenThreshold
	return p
}

// Validate checks that c describes a generation the world package accepts.
func (c Config) Validate() error {
	if math.IsNaN(c.FloorChance) || c.FloorChance < 0 || c.FloorChance > 1 {
		return fmt.Errorf("invalid config: %w: got %v", world.ErrInvalidProbability, c.FloorChance)
	}
	if c.East < 1 {
		return fmt.Errorf("invalid config: %w: got %d", ErrInvalidStrip, c.East)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// envInt reads an integer variable, returning def when it is unset.
func envInt(lookup LookupFunc, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(lookup LookupFunc, key, defaultValue string) string {
	if value, exists := lookup(key); exists {
		return value
	}
	return defaultValue
}

// OSLookup is the LookupFunc for the process environment.
var OSLookup LookupFunc = os.LookupEnv
