package timing

import "time"

const (
	InitialSpeed   = 260 * time.Millisecond
	TargetSpeed    = 150 * time.Millisecond
	WarmupDuration = 3000 * time.Millisecond
	RampDuration   = 4000 * time.Millisecond
)

// SpeedCurve maps cumulative active play time to the delay before the next
// step: a plateau at Initial for Warmup, then a straight line down to
// Target over Ramp, then Target forever.
type SpeedCurve struct {
	Initial time.Duration
	Target  time.Duration
	Warmup  time.Duration
	Ramp    time.Duration
}

func DefaultSpeedCurve() SpeedCurve {
	return SpeedCurve{
		Initial: InitialSpeed,
		Target:  TargetSpeed,
		Warmup:  WarmupDuration,
		Ramp:    RampDuration,
	}
}

func (c SpeedCurve) Interval(elapsed time.Duration) time.Duration {
	if elapsed <= c.Warmup {
		return c.Initial
	}
	if elapsed >= c.Warmup+c.Ramp {
		return c.Target
	}
	progress := float64(elapsed-c.Warmup) / float64(c.Ramp)
	return c.Initial - time.Duration(float64(c.Initial-c.Target)*progress)
}
