package timing

import "time"

// StepLoop is the self-rearming game tick. Each firing runs step once; if
// step reports the game is still running the loop re-arms with an interval
// computed from the active time at that moment.
type StepLoop struct {
	sched  *Scheduler
	curve  SpeedCurve
	active Stopwatch
	step   func() bool
}

func NewStepLoop(sched *Scheduler, curve SpeedCurve, step func() bool) *StepLoop {
	return &StepLoop{
		sched: sched,
		curve: curve,
		step:  step,
	}
}

// Start zeroes the active time, starts counting and arms the first step.
func (l *StepLoop) Start() {
	l.active.Reset()
	l.active.Start(l.now())
	l.arm()
}

// Pause cancels the pending step and freezes the active time.
func (l *StepLoop) Pause() {
	l.sched.Cancel()
	l.active.Stop(l.now())
}

// Resume continues the active time from where Pause froze it.
func (l *StepLoop) Resume() {
	l.active.Start(l.now())
	l.arm()
}

// Stop is Pause for the terminal case.
func (l *StepLoop) Stop() {
	l.Pause()
}

// Reset cancels everything and forgets the accumulated active time.
func (l *StepLoop) Reset() {
	l.sched.Cancel()
	l.active.Reset()
}

func (l *StepLoop) Elapsed() time.Duration {
	return l.active.Elapsed(l.now())
}

// Interval is the delay the next step would be armed with right now.
func (l *StepLoop) Interval() time.Duration {
	return l.curve.Interval(l.Elapsed())
}

func (l *StepLoop) arm() {
	l.sched.Arm(l.Interval(), l.fire)
}

func (l *StepLoop) fire() {
	if l.step() {
		l.arm()
	}
}

func (l *StepLoop) now() time.Duration {
	return l.sched.Clock().Now()
}
