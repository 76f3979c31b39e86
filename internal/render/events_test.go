package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ev := ContextEvents{Ctx: ctx}
	assert.Empty(t, ev.Poll())

	cancel()
	assert.Equal(t, []Event{Quit}, ev.Poll())

	assert.Empty(t, ContextEvents{}.Poll())
}

func TestFrameLimit(t *testing.T) {
	tests := []struct {
		frames int
		quitAt int
	}{
		{frames: -3, quitAt: 1},
		{frames: 0, quitAt: 1},
		{frames: 1, quitAt: 1},
		{frames: 3, quitAt: 3},
	}
	for _, tc := range tests {
		ev := &FrameLimit{Frames: tc.frames}
		for i := 1; i <= tc.quitAt; i++ {
			evs := ev.Poll()
			if i < tc.quitAt {
				assert.Empty(t, evs, "frames=%d poll %d", tc.frames, i)
			} else {
				assert.Equal(t, []Event{Quit}, evs, "frames=%d poll %d", tc.frames, i)
			}
		}
	}
}

func TestMultiEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := MultiEvents{ContextEvents{Ctx: ctx}, nil, &FrameLimit{Frames: 2}}
	assert.Empty(t, m.Poll())
	assert.Equal(t, []Event{Quit}, m.Poll())

	cancel()
	assert.Equal(t, []Event{Quit, Quit}, m.Poll())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "unknown", Event(0).String())
}
