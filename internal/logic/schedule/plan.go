package schedule

import "time"

// Plan splits one per-frame capture interval into its timed phases.
// All values are in seconds.
type Plan struct {
	Exposure   float64 // shutter line held high
	MotorPulse float64 // carriage motor line held high
	Settle     float64 // vibration settle time after a move
	IdleSleep  float64 // remaining wait before the next frame
}

// Compute derives the timing plan for a run.
//
// The carriage has timeToEnd seconds of total travel, spread evenly
// over the frames. If an even share does not fit in the interval next
// to the exposure and the settle time, the pulse is capped to whatever
// headroom is left: the run then simply does not reach the end of the
// rail. The idle sleep absorbs the rest of the interval.
func Compute(frames, interval int, exposure, timeToEnd, settle float64) Plan {
	motorPulse := timeToEnd / float64(frames)

	if headroom := float64(interval) - exposure - settle; motorPulse > headroom {
		motorPulse = headroom
	}

	return Plan{
		Exposure:   exposure,
		MotorPulse: motorPulse,
		Settle:     settle,
		IdleSleep:  float64(interval) - motorPulse - exposure,
	}
}

// Feasible reports whether the plan fits the requested interval. An
// infeasible plan must refuse to run: starting it would overlap
// exposures with carriage moves.
func (p Plan) Feasible(interval int) bool {
	if p.IdleSleep < 0 {
		return false
	}
	if p.MotorPulse > float64(interval) {
		return false
	}
	if p.MotorPulse+p.IdleSleep > float64(interval) {
		return false
	}
	// The exposure and the settle time alone must leave room for a
	// carriage pulse; at this point the cap has gone to zero or below.
	if p.Exposure+p.Settle >= float64(interval) {
		return false
	}
	return true
}

// Duration helpers for the capture loop.

func (p Plan) ExposureDuration() time.Duration {
	return secondsToDuration(p.Exposure)
}

func (p Plan) MotorPulseDuration() time.Duration {
	return secondsToDuration(p.MotorPulse)
}

func (p Plan) SettleDuration() time.Duration {
	return secondsToDuration(p.Settle)
}

func (p Plan) IdleSleepDuration() time.Duration {
	return secondsToDuration(p.IdleSleep)
}

func secondsToDuration(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
