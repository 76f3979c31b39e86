// Command sinecloud opens a window and renders the y = sin(x)·sin(z) point
// cloud until the window is closed.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"sinecloud/internal/config"
	"sinecloud/internal/display"
	"sinecloud/internal/render"
	"sinecloud/internal/surface"
)

func main() {
	runtime.LockOSThread()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("sinecloud failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fig := surface.Generate(cfg.Surface)
	log.Info("surface generated", "points", len(fig), "step", cfg.Surface.Step)

	win, err := display.OpenWindow(cfg.Width, cfg.Height, cfg.Title, log)
	if err != nil {
		return err
	}
	defer win.Close()

	loop := &render.Loop{
		Renderer:   render.NewRenderer(cfg.Camera, cfg.Width, cfg.Height),
		Figure:     fig,
		Display:    win,
		Events:     render.MultiEvents{win, render.ContextEvents{Ctx: ctx}},
		Background: cfg.Background,
		Logger:     log,
	}
	_, err = loop.Run()
	return err
}
