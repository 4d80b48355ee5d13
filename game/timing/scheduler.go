package timing

import "time"

// Scheduler keeps at most one outstanding callback on a Clock. Arming
// replaces whatever was pending, and a replaced or cancelled callback never
// runs even if its timer slips through.
type Scheduler struct {
	clock Clock
	token Timer
}

func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Arm cancels any pending callback and schedules f after d.
func (s *Scheduler) Arm(d time.Duration, f func()) {
	s.Cancel()
	var token Timer
	token = s.clock.AfterFunc(d, func() {
		if s.token != token {
			return
		}
		s.token = nil
		f()
	})
	s.token = token
}

func (s *Scheduler) Cancel() {
	if s.token == nil {
		return
	}
	s.token.Stop()
	s.token = nil
}

func (s *Scheduler) Armed() bool {
	return s.token != nil
}
