package timing

import "time"

// Stopwatch accumulates time only while started. Stopping freezes the
// total; starting again continues from it.
type Stopwatch struct {
	acc     time.Duration
	since   time.Duration
	running bool
}

func (s *Stopwatch) Reset() {
	*s = Stopwatch{}
}

func (s *Stopwatch) Start(now time.Duration) {
	if s.running {
		return
	}
	s.since = now
	s.running = true
}

func (s *Stopwatch) Stop(now time.Duration) {
	if !s.running {
		return
	}
	s.acc += now - s.since
	s.running = false
}

func (s *Stopwatch) Running() bool {
	return s.running
}

func (s *Stopwatch) Elapsed(now time.Duration) time.Duration {
	if s.running {
		return s.acc + now - s.since
	}
	return s.acc
}
