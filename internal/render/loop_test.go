package render

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sinecloud/internal/camera"
	"sinecloud/internal/geom"
)

type drawCall struct {
	x, y int
	c    geom.Color
}

// recordingDisplay keeps every call made in the last frame.
type recordingDisplay struct {
	clears   []geom.Color
	draws    []drawCall
	presents int
	err      error
}

func (d *recordingDisplay) Clear(bg geom.Color) {
	d.clears = append(d.clears, bg)
	d.draws = d.draws[:0]
}

func (d *recordingDisplay) DrawPoint(x, y int, c geom.Color) {
	d.draws = append(d.draws, drawCall{x, y, c})
}

func (d *recordingDisplay) Present() error {
	d.presents++
	return d.err
}

type scriptedEvents [][]Event

func (s *scriptedEvents) Poll() []Event {
	if len(*s) == 0 {
		return nil
	}
	evs := (*s)[0]
	*s = (*s)[1:]
	return evs
}

func testLoop(d Display, ev EventSource, fig ...geom.Point3) *Loop {
	return &Loop{
		Renderer:   NewRenderer(camera.Camera{Position: mgl32.Vec3{0, 0, -5}}, 400, 300),
		Figure:     fig,
		Display:    d,
		Events:     ev,
		Background: geom.RGB(255, 255, 255),
	}
}

func TestLoopQuitRendersLastFrame(t *testing.T) {
	d := &recordingDisplay{}
	ev := &scriptedEvents{nil, nil, {Quit}}
	frames, err := testLoop(d, ev, geom.P3(0, 0, 0, geom.RGB(1, 2, 3))).Run()
	require.NoError(t, err)

	assert.Equal(t, 3, frames)
	assert.Equal(t, 3, d.presents)
	assert.Len(t, d.clears, 3)
	assert.Equal(t, geom.RGB(255, 255, 255), d.clears[0])
	assert.Equal(t, []drawCall{{200, 300, geom.RGB(1, 2, 3)}}, d.draws)
}

func TestLoopDrawOrderAndCulling(t *testing.T) {
	d := &recordingDisplay{}
	fig := []geom.Point3{
		geom.P3(0, 0, -1, geom.RGB(1, 0, 0)),
		geom.P3(0, 0, 5, geom.RGB(2, 0, 0)),
		geom.P3(0, 0, -10, geom.RGB(3, 0, 0)), // behind the camera
		geom.P3(0, 0, 0, geom.RGB(4, 0, 0)),
	}
	_, err := testLoop(d, &FrameLimit{Frames: 1}, fig...).Run()
	require.NoError(t, err)

	require.Len(t, d.draws, 3)
	assert.Equal(t, float32(2), d.draws[0].c.R)
	assert.Equal(t, float32(4), d.draws[1].c.R)
	assert.Equal(t, float32(1), d.draws[2].c.R)
}

func TestLoopTruncatesCoordinates(t *testing.T) {
	d := &recordingDisplay{}
	// screen position is (212.4, 287.6); rounding would give 288 for y
	_, err := testLoop(d, &FrameLimit{Frames: 1}, geom.P3(0.31, 0.31, 0, geom.Color{})).Run()
	require.NoError(t, err)

	require.Len(t, d.draws, 1)
	assert.Equal(t, 212, d.draws[0].x)
	assert.Equal(t, 287, d.draws[0].y)
}

func TestLoopPresentError(t *testing.T) {
	boom := errors.New("boom")
	d := &recordingDisplay{err: boom}
	frames, err := testLoop(d, nil, geom.P3(0, 0, 0, geom.Color{})).Run()
	require.ErrorIs(t, err, boom)
	assert.Zero(t, frames)
	assert.Equal(t, 1, d.presents)
}

func TestLoopStep(t *testing.T) {
	d := &recordingDisplay{}
	l := testLoop(d, &scriptedEvents{{Quit}})

	quit, err := l.Step()
	require.NoError(t, err)
	assert.True(t, quit)
	assert.Equal(t, 1, d.presents)
	assert.Empty(t, d.draws)

	quit, err = l.Step()
	require.NoError(t, err)
	assert.False(t, quit)
}
