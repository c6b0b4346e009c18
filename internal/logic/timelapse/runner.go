package timelapse

import (
	"context"
	"fmt"
	"time"

	"github.com/miljank/artemis/internal/config"
	"github.com/miljank/artemis/internal/debug"
	"github.com/miljank/artemis/internal/hw/display"
	"github.com/miljank/artemis/internal/logic/rig"
	"github.com/miljank/artemis/internal/logic/run"
	"github.com/miljank/artemis/internal/logic/schedule"
	"github.com/miljank/artemis/internal/logic/shutter"
)

// Timing holds the rig constants the capture loop needs.
type Timing struct {
	TimeToEnd     float64 // seconds of carriage travel over the whole rail
	Settle        float64 // seconds to settle after a carriage move
	CountdownFrom int     // seconds counted down before the first frame
}

// Runner executes a capture run frame by frame. It is launched as the
// first task of the shoot screen set and shares run.State with the
// cancel watcher; cancellation is observed only at frame boundaries,
// never inside an exposure or a carriage move.
type Runner struct {
	rig     *rig.Controller
	display display.Display
	cfg     *config.Config
	table   shutter.Table
	state   *run.State
	timing  Timing
}

func NewRunner(r *rig.Controller, d display.Display, cfg *config.Config, table shutter.Table, state *run.State, timing Timing) *Runner {
	return &Runner{
		rig:     r,
		display: d,
		cfg:     cfg,
		table:   table,
		state:   state,
		timing:  timing,
	}
}

// ShootScreen runs one timelapse and hands control back to the main
// screen. An infeasible configuration refuses immediately: no countdown,
// no pins toggled.
func (r *Runner) ShootScreen(ctx context.Context) []run.ScreenID {
	defer r.state.ResetFrame()

	exposure, err := r.table.Resolve(r.cfg.Shutter)
	if err != nil {
		debug.Error(fmt.Errorf("refusing run: %w", err))
		r.state.SetRunning(false)
		return []run.ScreenID{run.ScreenMain}
	}

	plan := schedule.Compute(r.cfg.Frames, r.cfg.Interval, exposure, r.timing.TimeToEnd, r.timing.Settle)
	if !plan.Feasible(r.cfg.Interval) {
		debug.Info("Refusing run: plan does not fit a %ds interval", r.cfg.Interval)
		debug.Plan(plan.MotorPulse, plan.Exposure, plan.Settle, plan.IdleSleep)
		r.state.SetRunning(false)
		return []run.ScreenID{run.ScreenMain}
	}

	debug.Section("Starting timelapse")
	debug.Value("Frames", r.cfg.Frames)
	debug.Value("Interval", r.cfg.Interval)
	debug.Plan(plan.MotorPulse, plan.Exposure, plan.Settle, plan.IdleSleep)

	r.countdown(ctx)

	r.state.SetFrame(1)
	r.renderProgress()
	sleepCtx(ctx, 500*time.Millisecond)

	frame := 1
	for r.state.Running() {
		if ctx.Err() != nil {
			break
		}

		r.state.SetFrame(frame)
		r.renderProgress()

		if frame == 1 {
			// The carriage starts at the end stop: the first frame is
			// shot in place, holding the cadence without a move.
			time.Sleep(plan.MotorPulseDuration())
		} else if err := r.rig.MoveCarriage(plan.MotorPulseDuration(), plan.SettleDuration()); err != nil {
			debug.Error(err)
		}

		if err := r.rig.TakePhoto(plan.ExposureDuration()); err != nil {
			debug.Error(err)
		}
		debug.Frame(frame, r.cfg.Frames)

		if frame >= r.cfg.Frames {
			// Done. Shut off input acceptance so the watcher drops out
			// of its key poll.
			r.state.SetRunning(false)
			r.state.SetAcceptInput(false)
			break
		}

		time.Sleep(plan.IdleSleepDuration())
		frame++
	}

	r.state.SetRunning(false)
	debug.Live("Timelapse finished")
	return []run.ScreenID{run.ScreenMain}
}

// countdown gives the operator a few seconds to step away from the rig.
func (r *Runner) countdown(ctx context.Context) {
	for i := r.timing.CountdownFrom; i > 0; i-- {
		r.show(fmt.Sprintf(" Starting in: %d", i))
		if !sleepCtx(ctx, time.Second) {
			return
		}
	}
}

func (r *Runner) renderProgress() {
	r.show(
		" Timelapse     X",
		fmt.Sprintf("%5d/%-5d", r.state.Frame(), r.cfg.Frames),
	)
}

func (r *Runner) show(lines ...string) {
	if err := r.display.Show(lines); err != nil {
		debug.Error(err)
	}
}

// sleepCtx sleeps for d unless the context ends first. Used only for
// presentation delays; exposure and carriage pulses are plain sleeps
// and are never interrupted.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
