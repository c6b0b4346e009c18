package run

import (
	"context"

	"github.com/miljank/artemis/internal/debug"
)

// ScreenID names one of the panel screens. Screens are dispatched by
// tag rather than by stored function references.
type ScreenID int

const (
	ScreenMain ScreenID = iota
	ScreenEditInterval
	ScreenEditFrames
	ScreenEditSpeed
	ScreenShoot
	ScreenStopWatch
)

func (id ScreenID) String() string {
	switch id {
	case ScreenMain:
		return "main"
	case ScreenEditInterval:
		return "edit-interval"
	case ScreenEditFrames:
		return "edit-frames"
	case ScreenEditSpeed:
		return "edit-speed"
	case ScreenShoot:
		return "shoot"
	case ScreenStopWatch:
		return "stop-watch"
	default:
		return "unknown"
	}
}

// Dispatch runs one screen to completion and returns the screen set to
// activate next, or nil to keep the current one.
type Dispatch func(ctx context.Context, id ScreenID) []ScreenID

// Coordinator owns the active screen set: one screen while navigating,
// two during a shoot (the capture task first, the cancel watcher
// second). It launches every screen of a set concurrently and joins
// them in declaration order, so a set is drained only once its
// first-declared screen finishes.
type Coordinator struct {
	state    *State
	dispatch Dispatch
	screens  []ScreenID
}

// NewCoordinator creates a coordinator starting on the main screen.
func NewCoordinator(state *State, dispatch Dispatch) *Coordinator {
	return &Coordinator{
		state:    state,
		dispatch: dispatch,
		screens:  []ScreenID{ScreenMain},
	}
}

// Run loops the active screen set until the keep-running flag is
// cleared or the context is cancelled. Cancellation aborts the current
// join sequence immediately; the screens' own loops observe the same
// context and wind down on their own.
func (c *Coordinator) Run(ctx context.Context) {
	for c.state.KeepRunning() {
		if ctx.Err() != nil {
			debug.Info("Coordinator: shutdown requested")
			return
		}
		if next := c.runSet(ctx, c.screens); len(next) > 0 {
			c.screens = next
		}
	}
}

// runSet launches every screen of the set concurrently, then waits for
// each in declaration order. The next screen set is whatever the
// first-declared screen returns: during a shoot that is the capture
// task, which hands control back to the main screen. The watcher's own
// exit depends on flags the first task clears, so this join order is
// safe only while the first-declared task drives the run; keep that
// dependency direction when adding screen sets.
func (c *Coordinator) runSet(ctx context.Context, ids []ScreenID) []ScreenID {
	debug.Verbose("Coordinator: running screen set %v", ids)

	results := make([]chan []ScreenID, len(ids))
	for i, id := range ids {
		ch := make(chan []ScreenID, 1)
		results[i] = ch
		go func(id ScreenID, ch chan<- []ScreenID) {
			ch <- c.dispatch(ctx, id)
		}(id, ch)
	}

	var next []ScreenID
	for i, ch := range results {
		select {
		case res := <-ch:
			debug.Verbose("Coordinator: screen %s finished", ids[i])
			if i == 0 {
				next = res
			}
		case <-ctx.Done():
			// Abandon the join: process shutdown must not wait for
			// screens blocked in their poll loops.
			return nil
		}
	}
	return next
}
