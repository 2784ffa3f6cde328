package inspector

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavegen/internal/telemetry"
	"github.com/samdwyer/cavegen/internal/ui"
	"github.com/samdwyer/cavegen/internal/world"
)

// GenerateFunc produces the cave for a seed.
type GenerateFunc func(ctx context.Context, seed int64) (*world.Cave, error)

// Inspector holds the interactive view state.
type Inspector struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	generate GenerateFunc
	cave     *world.Cave
	mode     Mode
	message  string
	running  bool
}

// New creates an inspector showing cave. generate is called when the user
// steps to another seed.
func New(screen *ui.Screen, renderer *ui.Renderer, cave *world.Cave, generate GenerateFunc) *Inspector {
	return &Inspector{
		screen:   screen,
		renderer: renderer,
		generate: generate,
		cave:     cave,
		mode:     ModeTiles,
		running:  true,
	}
}

// Cave returns the cave currently shown.
func (in *Inspector) Cave() *world.Cave { return in.cave }

// Mode returns the current draw mode.
func (in *Inspector) Mode() Mode { return in.mode }

// Run executes the view loop until the user quits or ctx is cancelled.
func (in *Inspector) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("inspector")
	ctx, span := tracer.Start(ctx, "inspector.run")
	defer span.End()

	// Wake the blocking poll when ctx ends.
	stop := context.AfterFunc(ctx, func() {
		_ = in.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for in.running && ctx.Err() == nil {
		in.renderer.Render(in.cave, in.mode == ModeHeight)
		in.renderer.RenderMessage(in.status(), in.cave.Height()+1)

		// Handle input (blocking)
		in.handleInput(ctx)
	}

	span.SetAttributes(attribute.Int64("inspector.last_seed", in.cave.Seed()))
	in.screen.Close()
	return nil
}

func (in *Inspector) status() string {
	floor := 100 * in.cave.FloorCount() / (in.cave.Width() * in.cave.Height())
	s := fmt.Sprintf("seed %d | floor %d%% | %s | n/p seed  h height  q quit", in.cave.Seed(), floor, in.mode)
	if in.message != "" {
		s += " | " + in.message
	}
	return s
}

// handleInput processes a single input event.
func (in *Inspector) handleInput(ctx context.Context) {
	ev := in.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		in.screen.Sync()
	case *tcell.EventInterrupt:
		if ctx.Err() != nil {
			in.running = false
		}
	case nil:
		// The screen was finalized.
		in.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (in *Inspector) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.running = false

	case tcell.KeyRight:
		in.step(ctx, 1)
	case tcell.KeyLeft:
		in.step(ctx, -1)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			in.running = false
		case 'h', 'H':
			if in.mode == ModeTiles {
				in.mode = ModeHeight
			} else {
				in.mode = ModeTiles
			}
		case 'n':
			in.step(ctx, 1)
		case 'p':
			in.step(ctx, -1)
		}
	}
}

// step regenerates the cave with the seed moved by delta.
func (in *Inspector) step(ctx context.Context, delta int64) {
	cave, err := in.generate(ctx, in.cave.Seed()+delta)
	if err != nil {
		in.message = err.Error()
		return
	}
	in.cave = cave
	in.message = ""
}
