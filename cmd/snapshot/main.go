// Command snapshot renders a single frame of the point cloud without a
// window and writes it as a PNG to the working directory.
package main

import (
	"log/slog"
	"os"

	"sinecloud/internal/config"
	"sinecloud/internal/display"
	"sinecloud/internal/render"
	"sinecloud/internal/surface"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(config.Default(), log); err != nil {
		log.Error("snapshot failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	sink := display.NewImageSink(cfg.Width, cfg.Height, cfg.SnapshotPath, cfg.SnapshotScale)
	loop := &render.Loop{
		Renderer:   render.NewRenderer(cfg.Camera, cfg.Width, cfg.Height),
		Figure:     surface.Generate(cfg.Surface),
		Display:    sink,
		Events:     &render.FrameLimit{Frames: 1},
		Background: cfg.Background,
		Logger:     log,
	}
	if _, err := loop.Run(); err != nil {
		return err
	}
	log.Info("snapshot written", "path", cfg.SnapshotPath, "points", len(loop.Figure))
	return nil
}
