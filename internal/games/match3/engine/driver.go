package engine

import (
	"context"
	"errors"
	"sync"
)

// Event is the result of one selection handled by a Driver.
type Event struct {
	X, Y   int
	Result Result
	Err    error
}

type pick struct{ x, y int }

// Driver feeds selections to an engine from a single goroutine so that
// callers on other goroutines (a UI loop, an SSH session) never write to
// the board themselves.
type Driver struct {
	engine *Engine
	picks  chan pick
	events chan Event

	done chan struct{}
	once sync.Once
}

// NewDriver wraps e. Call Run to start processing.
func NewDriver(e *Engine) *Driver {
	return &Driver{
		engine: e,
		picks:  make(chan pick),
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}
}

// Run handles selections until ctx is cancelled. A swap in progress when
// ctx ends runs to the end, so Run returns only after the presenter has
// completed its pending animations.
func (d *Driver) Run(ctx context.Context) {
	defer d.once.Do(func() { close(d.done) })
	for {
		select {
		case <-ctx.Done():
			return
		case p := <-d.picks:
			res, err := d.engine.Select(ctx, p.x, p.y)
			if errors.Is(err, context.Canceled) {
				err = nil
			}
			d.publish(Event{X: p.x, Y: p.y, Result: res, Err: err})
		}
	}
}

// publish drops the oldest event when nobody is reading.
func (d *Driver) publish(ev Event) {
	for {
		select {
		case d.events <- ev:
			return
		default:
		}
		select {
		case <-d.events:
		default:
		}
	}
}

// Submit hands a selection to the run loop without blocking. It returns
// false when the loop is busy resolving a swap or not running, in which
// case the selection is dropped.
func (d *Driver) Submit(x, y int) bool {
	select {
	case d.picks <- pick{x: x, y: y}:
		return true
	default:
		return false
	}
}

// Events delivers one Event per handled selection.
func (d *Driver) Events() <-chan Event {
	return d.events
}

// Done is closed once Run has returned.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}
