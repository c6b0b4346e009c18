package schedule

import (
	"math"
	"testing"
	"time"
)

const settle = 0.1

// ---------- Compute ----------

func TestCompute_CappedPulse(t *testing.T) {
	// 160s of travel over 5 frames would want a 32s pulse; a 2s
	// interval with a 1s exposure leaves 0.9s of headroom.
	p := Compute(5, 2, 1, 160, settle)

	if math.Abs(p.MotorPulse-0.9) > 1e-9 {
		t.Errorf("MotorPulse = %v, want 0.9", p.MotorPulse)
	}
	if math.Abs(p.IdleSleep-0.1) > 1e-9 {
		t.Errorf("IdleSleep = %v, want 0.1", p.IdleSleep)
	}
	if !p.Feasible(2) {
		t.Error("capped plan should be feasible")
	}
}

func TestCompute_UncappedPulse(t *testing.T) {
	// 10s of travel over 100 frames is a 0.1s pulse, well under the
	// headroom of a 2s interval with a 0.25s exposure.
	p := Compute(100, 2, 0.25, 10, settle)

	if math.Abs(p.MotorPulse-0.1) > 1e-9 {
		t.Errorf("MotorPulse = %v, want 0.1", p.MotorPulse)
	}
	if math.Abs(p.IdleSleep-1.65) > 1e-9 {
		t.Errorf("IdleSleep = %v, want 1.65", p.IdleSleep)
	}
	if !p.Feasible(2) {
		t.Error("uncapped plan should be feasible")
	}
}

func TestCompute_IntervalIdentity(t *testing.T) {
	// Whenever the plan is feasible, the pulse, the exposure and the
	// idle sleep partition the interval exactly.
	cases := []struct {
		name      string
		frames    int
		interval  int
		exposure  float64
		timeToEnd float64
	}{
		{"reference_rig", 5, 2, 1, 160},
		{"short_exposure", 5, 2, 0.1, 160},
		{"many_frames", 500, 2, 0.25, 160},
		{"long_interval", 10, 30, 5, 160},
		{"single_frame", 1, 10, 1, 160},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Compute(tc.frames, tc.interval, tc.exposure, tc.timeToEnd, settle)
			if !p.Feasible(tc.interval) {
				t.Fatalf("expected feasible plan, got %+v", p)
			}
			sum := p.MotorPulse + p.Exposure + p.IdleSleep
			if math.Abs(sum-float64(tc.interval)) > 1e-9 {
				t.Errorf("pulse+exposure+idle = %v, want %d", sum, tc.interval)
			}
			if p.IdleSleep < 0 {
				t.Errorf("IdleSleep = %v, want >= 0", p.IdleSleep)
			}
		})
	}
}

// ---------- Feasible ----------

func TestFeasible_ExposureFillsInterval(t *testing.T) {
	// A 2s exposure plus the settle time cannot fit a 2s interval:
	// the run must be refused, not squeezed.
	p := Compute(5, 2, 2, 160, settle)
	if p.Feasible(2) {
		t.Errorf("expected infeasible plan, got %+v", p)
	}
}

func TestFeasible_ExposureSettleBoundary(t *testing.T) {
	// exposure + settle == interval exactly is still a refusal.
	p := Compute(100, 2, 1.9, 0.1, settle)
	if p.Feasible(2) {
		t.Errorf("expected infeasible plan at boundary, got %+v", p)
	}
}

func TestFeasible_NegativeIdleSleep(t *testing.T) {
	p := Plan{Exposure: 1, MotorPulse: 1.5, Settle: settle, IdleSleep: -0.5}
	if p.Feasible(2) {
		t.Error("negative idle sleep must be infeasible")
	}
}

func TestFeasible_PulseLongerThanInterval(t *testing.T) {
	p := Plan{Exposure: 0.1, MotorPulse: 3, Settle: settle, IdleSleep: 0}
	if p.Feasible(2) {
		t.Error("pulse longer than the interval must be infeasible")
	}
}

func TestFeasible_Sweep(t *testing.T) {
	// Exhaustive-ish sweep: infeasibility tracks exposure+settle >= interval,
	// and feasible plans keep the interval identity.
	for interval := 1; interval <= 30; interval++ {
		for _, frames := range []int{1, 2, 5, 50, 1000} {
			for _, exposure := range []float64{0.1, 0.5, 1, 2, 5, 29, 30} {
				p := Compute(frames, interval, exposure, 160, settle)
				feasible := p.Feasible(interval)
				if exposure+settle >= float64(interval) && feasible {
					t.Fatalf("frames=%d interval=%d exposure=%v: want infeasible, got %+v",
						frames, interval, exposure, p)
				}
				if feasible {
					sum := p.MotorPulse + p.Exposure + p.IdleSleep
					if math.Abs(sum-float64(interval)) > 1e-9 {
						t.Fatalf("frames=%d interval=%d exposure=%v: sum=%v want %d",
							frames, interval, exposure, sum, interval)
					}
				}
			}
		}
	}
}

// ---------- Duration helpers ----------

func TestDurations(t *testing.T) {
	p := Plan{Exposure: 1, MotorPulse: 0.9, Settle: 0.1, IdleSleep: 0}

	if got := p.ExposureDuration(); got != time.Second {
		t.Errorf("ExposureDuration = %v, want 1s", got)
	}
	if got := p.MotorPulseDuration(); got != 900*time.Millisecond {
		t.Errorf("MotorPulseDuration = %v, want 900ms", got)
	}
	if got := p.SettleDuration(); got != 100*time.Millisecond {
		t.Errorf("SettleDuration = %v, want 100ms", got)
	}
	if got := p.IdleSleepDuration(); got != 0 {
		t.Errorf("IdleSleepDuration = %v, want 0", got)
	}
}

func TestDurations_NegativeClampsToZero(t *testing.T) {
	p := Plan{MotorPulse: -0.1}
	if got := p.MotorPulseDuration(); got != 0 {
		t.Errorf("MotorPulseDuration = %v, want 0 for negative pulse", got)
	}
}
