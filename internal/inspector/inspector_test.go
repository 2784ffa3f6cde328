package inspector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/ui"
	"github.com/samdwyer/cavegen/internal/world"
)

func generator(t *testing.T) GenerateFunc {
	t.Helper()
	return func(ctx context.Context, seed int64) (*world.Cave, error) {
		g, err := world.NewGenerator(world.DefaultParams(16, 8, seed))
		if err != nil {
			return nil, err
		}
		return g.Generate(ctx, world.DefaultFloorChance, world.Neighbors{})
	}
}

func newInspector(t *testing.T, generate GenerateFunc) (*Inspector, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	sim.SetSize(80, 12)

	palette, err := presets.MustLoadRegistry().Palette().Parse()
	require.NoError(t, err)

	cave, err := generator(t)(context.Background(), 10)
	require.NoError(t, err)

	screen := ui.WrapScreen(sim)
	return New(screen, ui.NewRenderer(screen, palette), cave, generate), sim
}

func TestRunHandlesKeys(t *testing.T) {
	calls := 0
	gen := generator(t)
	in, sim := newInspector(t, func(ctx context.Context, seed int64) (*world.Cave, error) {
		calls++
		return gen(ctx, seed)
	})

	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, in.Run(context.Background()))

	assert.Equal(t, ModeHeight, in.Mode())
	assert.Equal(t, int64(11), in.Cave().Seed())
	assert.Equal(t, 3, calls)
}

func TestRunKeepsCaveOnError(t *testing.T) {
	in, sim := newInspector(t, func(context.Context, int64) (*world.Cave, error) {
		return nil, errors.New("boom")
	})

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	require.NoError(t, in.Run(context.Background()))

	assert.Equal(t, int64(10), in.Cave().Seed())
	assert.Equal(t, "boom", in.message)
	assert.Contains(t, in.status(), "boom")
}

func TestRunStopsOnCancel(t *testing.T) {
	in, _ := newInspector(t, generator(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- in.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "tiles", ModeTiles.String())
	assert.Equal(t, "height", ModeHeight.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
