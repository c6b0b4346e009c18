package run

import "sync/atomic"

// State holds the flags shared between the capture task and the
// cancel-watcher task during a shoot. These are the only values with
// more than one writer across goroutines, and each has a single writer
// per phase:
//
//   - running: set by the arm action before the tasks launch; cleared
//     by the runner at completion OR by the watcher on the cancel key.
//   - acceptInput: cleared by the runner at natural completion to pop
//     the watcher out of its key poll; restored by the watcher on exit.
//   - keepRunning: cleared only on process shutdown.
//
// atomic.Bool gives the happens-before edge the design needs: the
// watcher's Store(false) is observed by the runner's next Load at the
// top of its frame loop, so a cancel stops the run at the next frame
// boundary and never mid-exposure.
type State struct {
	running     atomic.Bool
	acceptInput atomic.Bool
	keepRunning atomic.Bool

	// frame is the frame currently being captured, starting at 1.
	// Touched only from the runner goroutine; reset when control
	// returns to the main screen.
	frame int
}

// NewState returns the idle state: no run active, input accepted.
func NewState() *State {
	s := &State{frame: 1}
	s.acceptInput.Store(true)
	s.keepRunning.Store(true)
	return s
}

func (s *State) Running() bool         { return s.running.Load() }
func (s *State) SetRunning(v bool)     { s.running.Store(v) }
func (s *State) AcceptInput() bool     { return s.acceptInput.Load() }
func (s *State) SetAcceptInput(v bool) { s.acceptInput.Store(v) }
func (s *State) KeepRunning() bool     { return s.keepRunning.Load() }
func (s *State) SetKeepRunning(v bool) { s.keepRunning.Store(v) }

func (s *State) Frame() int     { return s.frame }
func (s *State) SetFrame(n int) { s.frame = n }
func (s *State) ResetFrame()    { s.frame = 1 }
