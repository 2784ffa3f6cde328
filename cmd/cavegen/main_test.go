package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cavegen/internal/config"
	"github.com/samdwyer/cavegen/internal/world"
)

func TestDumpStrip(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 8, 5
	cfg.East = 3

	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, dumpStrip(context.Background(), cfg, &out, log))

	tiles := strings.Split(out.String(), "\n\n")
	require.Len(t, tiles, 3)

	rows := func(dump string) []string {
		return strings.Split(strings.TrimSuffix(dump, "\n"), "\n")
	}
	for i := 1; i < len(tiles); i++ {
		west, east := rows(tiles[i-1]), rows(tiles[i])
		require.Len(t, east, cfg.Height)
		for r := range east {
			// Each row is "c c c ... " so column k sits at byte 2k.
			assert.Equal(t, west[r][2*(cfg.Width-1)], east[r][0], "tile %d row %d", i, r)
		}
	}
}

func TestDumpStripFirstTileMatchesSingleGeneration(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 6, 4

	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, dumpStrip(context.Background(), cfg, &out, log))

	cave, err := generateSeed(context.Background(), cfg, cfg.Seed, world.Neighbors{})
	require.NoError(t, err)
	assert.Equal(t, cave.String(), out.String())
}

func TestLoadDotEnvReportsMissingFile(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	loadDotEnv(log, filepath.Join(t.TempDir(), "missing.env"))

	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), ".env file not loaded")
}
