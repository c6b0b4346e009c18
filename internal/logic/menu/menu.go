package menu

import (
	"context"
	"time"

	"github.com/miljank/artemis/internal/config"
	"github.com/miljank/artemis/internal/debug"
	"github.com/miljank/artemis/internal/hw/display"
	"github.com/miljank/artemis/internal/logic/run"
	"github.com/miljank/artemis/internal/logic/shutter"
)

// PollPeriod is how often the key loop samples the panel. It bounds
// both the auto-repeat rate of held +/- keys and the cancel latency.
const PollPeriod = 100 * time.Millisecond

// ActionID enumerates every key-bound action. Keys map to IDs, not to
// stored functions; the machine dispatches IDs through a switch.
type ActionID int

const (
	actionNone ActionID = iota
	actionGotoEditInterval
	actionArmShoot
	actionGotoEditFrames
	actionIncInterval
	actionDecInterval
	actionGotoEditSpeed
	actionIncFrames
	actionDecFrames
	actionGotoMain
	actionIncShutter
	actionDecShutter
	actionStopShoot
)

func (a ActionID) String() string {
	switch a {
	case actionNone:
		return "none"
	case actionGotoEditInterval:
		return "goto-edit-interval"
	case actionArmShoot:
		return "arm-shoot"
	case actionGotoEditFrames:
		return "goto-edit-frames"
	case actionIncInterval:
		return "inc-interval"
	case actionDecInterval:
		return "dec-interval"
	case actionGotoEditSpeed:
		return "goto-edit-speed"
	case actionIncFrames:
		return "inc-frames"
	case actionDecFrames:
		return "dec-frames"
	case actionGotoMain:
		return "goto-main"
	case actionIncShutter:
		return "inc-shutter"
	case actionDecShutter:
		return "dec-shutter"
	case actionStopShoot:
		return "stop-shoot"
	default:
		return "unknown"
	}
}

// Machine interprets key events into configuration edits and screen
// transitions. Exactly one goroutine uses the machine at any time: the
// navigation screen while idle, the stop watcher during a shoot.
type Machine struct {
	display display.Display
	cfg     *config.Config
	table   shutter.Table
	state   *run.State
	cfgPath string

	bindings map[display.Key]ActionID
	// active is the action of the currently held key, or actionNone.
	// While it is set, polls that see no key event re-invoke it
	// (auto-repeat); the key's release event clears it.
	active ActionID
	// next is the screen set chosen by the last navigation action.
	next []run.ScreenID
}

// NewMachine creates the menu state machine. cfgPath is where edited
// settings are persisted.
func NewMachine(d display.Display, cfg *config.Config, table shutter.Table, state *run.State, cfgPath string) *Machine {
	return &Machine{
		display: d,
		cfg:     cfg,
		table:   table,
		state:   state,
		cfgPath: cfgPath,
	}
}

// bind installs the key map for a freshly entered screen and clears
// the held-key and transition state.
func (m *Machine) bind(bindings map[display.Key]ActionID) {
	m.bindings = bindings
	m.active = actionNone
	m.next = nil
}

// nextAction blocks until one action fires, then reports whether that
// action leaves the current screen. It polls the panel at PollPeriod
// while the accept-input flag is set:
//
//   - press, nothing held, key bound: mark it held and invoke.
//   - no key event, a key is held: re-invoke it (press-and-hold
//     repeat for the +/- actions).
//   - release: clear the held action without invoking. A release with
//     nothing held is stale, left over from the press that moved us
//     onto this screen, and is dropped.
//
// Returns false without an action when input is shut off or the
// context ends.
func (m *Machine) nextAction(ctx context.Context) bool {
	for m.state.AcceptInput() {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(PollPeriod):
		}

		ev, ok := m.display.PollKey()
		if !ok {
			if m.active != actionNone {
				debug.Verbose("Key repeat -> %s", m.active)
				return m.apply(m.active)
			}
			continue
		}

		if !ev.Pressed {
			m.active = actionNone
			continue
		}

		if m.active != actionNone {
			// A second key pressed while one is held; ignored.
			continue
		}

		action, bound := m.bindings[ev.Key]
		if !bound {
			continue
		}
		debug.Key(byte(ev.Key), action.String())
		m.active = action
		return m.apply(action)
	}
	return false
}

// apply executes one action and reports whether it leaves the screen.
func (m *Machine) apply(a ActionID) bool {
	switch a {
	case actionGotoEditInterval:
		m.next = []run.ScreenID{run.ScreenEditInterval}
		return true
	case actionArmShoot:
		m.persist()
		// Mark the run live before the screen set launches so the
		// watcher always observes an armed run.
		m.state.SetRunning(true)
		m.next = []run.ScreenID{run.ScreenShoot, run.ScreenStopWatch}
		return true
	case actionGotoEditFrames:
		m.persist()
		m.next = []run.ScreenID{run.ScreenEditFrames}
		return true
	case actionGotoEditSpeed:
		m.persist()
		m.next = []run.ScreenID{run.ScreenEditSpeed}
		return true
	case actionGotoMain:
		m.persist()
		m.next = []run.ScreenID{run.ScreenMain}
		return true
	case actionIncInterval:
		m.cfg.IncInterval()
	case actionDecInterval:
		m.cfg.DecInterval()
	case actionIncFrames:
		m.cfg.IncFrames()
	case actionDecFrames:
		m.cfg.DecFrames()
	case actionIncShutter:
		m.cfg.IncShutter(m.table.Len() - 1)
	case actionDecShutter:
		m.cfg.DecShutter()
	case actionStopShoot:
		m.state.SetRunning(false)
		return true
	}
	return false
}

// persist saves the settings; a write failure is logged and otherwise
// ignored, the rig keeps working with the in-memory values.
func (m *Machine) persist() {
	if err := m.cfg.Save(m.cfgPath); err != nil {
		debug.Error(err)
	}
}

func (m *Machine) show(lines ...string) {
	if err := m.display.Show(lines); err != nil {
		debug.Error(err)
	}
}
