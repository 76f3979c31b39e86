package render

import (
	"fmt"
	"log/slog"
	"slices"

	"sinecloud/internal/geom"
)

// Display is a raster that accepts pixel draws.
type Display interface {
	Clear(bg geom.Color)
	DrawPoint(x, y int, c geom.Color)
	Present() error
}

// Loop draws a static figure every frame until asked to quit.
type Loop struct {
	Renderer   *Renderer
	Figure     []geom.Point3
	Display    Display
	Events     EventSource
	Background geom.Color

	// Logger receives per-frame debug output. Nil means slog.Default().
	Logger *slog.Logger
}

func (l *Loop) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// Run renders frames until an event source reports Quit or Present fails.
// It returns the number of frames presented.
func (l *Loop) Run() (int, error) {
	log := l.logger()
	frames := 0
	for {
		quit, err := l.Step()
		if err != nil {
			return frames, err
		}
		frames++
		log.Debug("frame presented", "frame", frames)
		if quit {
			log.Info("render loop stopped", "frames", frames)
			return frames, nil
		}
	}
}

// Step polls events and renders one frame. The frame is rendered even when
// Quit was polled; quit reports that it should be the last one.
func (l *Loop) Step() (quit bool, err error) {
	if l.Events != nil {
		quit = slices.Contains(l.Events.Poll(), Quit)
	}

	pts := l.Renderer.Frame(l.Figure)

	l.Display.Clear(l.Background)
	for _, p := range pts {
		x, y := p.Pixel()
		l.Display.DrawPoint(x, y, p.Color)
	}
	if err := l.Display.Present(); err != nil {
		return quit, fmt.Errorf("present frame: %w", err)
	}
	return quit, nil
}
