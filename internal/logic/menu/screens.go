package menu

import (
	"context"
	"fmt"

	"github.com/miljank/artemis/internal/debug"
	"github.com/miljank/artemis/internal/hw/display"
	"github.com/miljank/artemis/internal/logic/run"
)

// MainScreen shows the current settings and waits for one action:
// A enters the edit screens, C arms a shoot.
func (m *Machine) MainScreen(ctx context.Context) []run.ScreenID {
	debug.Screen("main")
	m.renderMain()
	m.bind(map[display.Key]ActionID{
		display.KeyA: actionGotoEditInterval,
		display.KeyC: actionArmShoot,
	})
	m.nextAction(ctx)
	return m.next
}

// EditIntervalScreen edits the seconds between frames.
// A moves on to the frames screen, C/D raise/lower with auto-repeat.
func (m *Machine) EditIntervalScreen(ctx context.Context) []run.ScreenID {
	debug.Screen("edit-interval")
	m.renderInterval()
	m.bind(map[display.Key]ActionID{
		display.KeyA: actionGotoEditFrames,
		display.KeyC: actionIncInterval,
		display.KeyD: actionDecInterval,
	})
	return m.editLoop(ctx, m.renderInterval)
}

// EditFramesScreen edits the number of frames per run.
func (m *Machine) EditFramesScreen(ctx context.Context) []run.ScreenID {
	debug.Screen("edit-frames")
	m.renderFrames()
	m.bind(map[display.Key]ActionID{
		display.KeyA: actionGotoEditSpeed,
		display.KeyC: actionIncFrames,
		display.KeyD: actionDecFrames,
	})
	return m.editLoop(ctx, m.renderFrames)
}

// EditSpeedScreen edits the shutter speed by table index.
func (m *Machine) EditSpeedScreen(ctx context.Context) []run.ScreenID {
	debug.Screen("edit-speed")
	m.renderSpeed()
	m.bind(map[display.Key]ActionID{
		display.KeyA: actionGotoMain,
		display.KeyC: actionIncShutter,
		display.KeyD: actionDecShutter,
	})
	return m.editLoop(ctx, m.renderSpeed)
}

// StopWatchScreen runs alongside the capture task during a shoot and
// watches for the cancel key. It exits when the run stops, whether
// cancelled here or completed by the runner, and restores the
// accept-input flag the runner clears at natural completion.
func (m *Machine) StopWatchScreen(ctx context.Context) []run.ScreenID {
	debug.Screen("stop-watch")
	m.bind(map[display.Key]ActionID{
		display.KeyC: actionStopShoot,
	})
	for m.state.Running() {
		if ctx.Err() != nil {
			break
		}
		if m.nextAction(ctx) {
			debug.Live("Shoot cancelled by operator")
			break
		}
	}
	m.state.SetAcceptInput(true)
	return nil
}

// editLoop re-renders after every action until a navigation action
// leaves the screen.
func (m *Machine) editLoop(ctx context.Context, render func()) []run.ScreenID {
	for {
		if m.nextAction(ctx) {
			return m.next
		}
		if ctx.Err() != nil || !m.state.AcceptInput() {
			return nil
		}
		render()
	}
}

func (m *Machine) renderMain() {
	label, err := m.table.Label(m.cfg.Shutter)
	if err != nil {
		label = "?"
	}
	m.show(
		"< Timelapse    O",
		fmt.Sprintf("T:%-2d F:%-3d S:%-3s", m.cfg.Interval, m.cfg.Frames, label),
	)
}

func (m *Machine) renderInterval() {
	m.show(
		"< Interval     +",
		fmt.Sprintf("T: %-4d        -", m.cfg.Interval),
	)
}

func (m *Machine) renderFrames() {
	m.show(
		"< Frames       +",
		fmt.Sprintf("F: %-4d        -", m.cfg.Frames),
	)
}

func (m *Machine) renderSpeed() {
	label, err := m.table.Label(m.cfg.Shutter)
	if err != nil {
		label = "?"
	}
	m.show(
		"< Shutter      +",
		fmt.Sprintf("S: %-3s         -", label),
	)
}
