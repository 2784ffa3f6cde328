// Package main is the entry point for cavegen.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavegen/internal/config"
	"github.com/samdwyer/cavegen/internal/inspector"
	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/telemetry"
	"github.com/samdwyer/cavegen/internal/ui"
	"github.com/samdwyer/cavegen/internal/world"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	loadDotEnv(log)

	registry, err := presets.LoadRegistry()
	if err != nil {
		log.Error("load presets", "error", err)
		return 1
	}

	fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
	cfg, err := config.Load(fs, os.Args[1:], config.OSLookup, registry)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Error("invalid configuration", "error", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracer := telemetry.NoopTracer()
	if telemetry.ConfigureHoneycomb(cfg.HoneycombAPIKey, cfg.HoneycombDataset) {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn("telemetry setup failed, continuing without tracing", "error", err)
		} else {
			tracer = telemetry.Tracer("cmd")
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Error("shutting down telemetry", "error", err)
				}
			}()
		}
	}

	ctx, span := tracer.Start(ctx, "cavegen.run")
	span.SetAttributes(
		attribute.String("cavegen.preset", cfg.Preset),
		attribute.Bool("cavegen.view", cfg.View),
		attribute.Int("cavegen.east", cfg.East),
	)
	defer span.End()

	if cfg.View {
		err = view(ctx, cfg, registry)
	} else {
		err = dumpStrip(ctx, cfg, os.Stdout, log)
	}
	if err != nil {
		span.RecordError(err)
		log.Error("cavegen failed", "error", err)
		return 1
	}
	return 0
}

// loadDotEnv loads a .env file for local development.
func loadDotEnv(log *slog.Logger, filenames ...string) {
	if err := config.LoadDotEnv(filenames...); err != nil {
		// Not fatal - env vars might be set directly
		log.Info(".env file not loaded", "error", err)
	}
}

// generateSeed builds the tile for seed with the configured settings.
func generateSeed(ctx context.Context, cfg config.Config, seed int64, neighbors world.Neighbors) (*world.Cave, error) {
	p := cfg.Params()
	p.Seed = seed
	g, err := world.NewGenerator(p)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, cfg.FloorChance, neighbors)
}

// dumpStrip generates cfg.East tiles from west to east, each stitched to the
// tile before it, and writes their textual dumps separated by blank lines.
func dumpStrip(ctx context.Context, cfg config.Config, out io.Writer, log *slog.Logger) error {
	var west *world.Cave
	for i := 0; i < cfg.East; i++ {
		seed := cfg.Seed + int64(i)
		cave, err := generateSeed(ctx, cfg, seed, world.Neighbors{Left: west})
		if err != nil {
			return err
		}
		log.Info("generated cave",
			"seed", seed,
			"width", cave.Width(),
			"height", cave.Height(),
			"floor_cells", cave.FloorCount(),
		)

		if i > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
		if _, err := cave.WriteTo(out); err != nil {
			return err
		}
		west = cave
	}
	return nil
}

// view opens the terminal inspector on the configured seed.
func view(ctx context.Context, cfg config.Config, registry *presets.Registry) error {
	palette, err := registry.Palette().Parse()
	if err != nil {
		return err
	}

	generate := func(ctx context.Context, seed int64) (*world.Cave, error) {
		return generateSeed(ctx, cfg, seed, world.Neighbors{})
	}
	cave, err := generate(ctx, cfg.Seed)
	if err != nil {
		return err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	return inspector.New(screen, ui.NewRenderer(screen, palette), cave, generate).Run(ctx)
}
