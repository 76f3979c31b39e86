package render

import "context"

// Event is a signal from the outside world.
type Event uint8

const (
	// Quit asks the loop to stop once the current frame is presented.
	Quit Event = iota + 1
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// EventSource is polled once at the start of every frame. Poll must not
// block.
type EventSource interface {
	Poll() []Event
}

// ContextEvents reports Quit once its context is done.
type ContextEvents struct {
	Ctx context.Context
}

// Poll reports Quit once the context is cancelled or expired.
func (c ContextEvents) Poll() []Event {
	if c.Ctx != nil && c.Ctx.Err() != nil {
		return []Event{Quit}
	}
	return nil
}

// FrameLimit reports Quit on its Frames-th poll, so exactly Frames frames
// are rendered. Values below 1 act as 1.
type FrameLimit struct {
	Frames int

	polled int
}

// Poll counts the call and reports Quit from the Frames-th call on.
func (f *FrameLimit) Poll() []Event {
	f.polled++
	if f.polled >= f.Frames {
		return []Event{Quit}
	}
	return nil
}

// MultiEvents polls every source in order and merges their events.
type MultiEvents []EventSource

// Poll returns the events of all sources, nil sources skipped.
func (m MultiEvents) Poll() []Event {
	var evs []Event
	for _, src := range m {
		if src == nil {
			continue
		}
		evs = append(evs, src.Poll()...)
	}
	return evs
}
