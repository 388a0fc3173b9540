package rhythm

import (
	"time"

	"k8s.io/utils/clock"
)

// TimeSource is the raw clock a BeatClock is fed from. It is read once per frame and returns seconds.
type TimeSource interface {
	Seconds() float64
}

// SourceFunc adapts a function to a TimeSource.
type SourceFunc func() float64

// Seconds calls f.
func (f SourceFunc) Seconds() float64 {
	return f()
}

// ClockSource reports the seconds elapsed on a clock since the source was created.
type ClockSource struct {
	clock clock.PassiveClock
	epoch time.Time
}

// NewClockSource creates a ClockSource whose zero is the clock's current time.
func NewClockSource(c clock.PassiveClock) *ClockSource {
	return &ClockSource{
		clock: c,
		epoch: c.Now(),
	}
}

// Seconds returns the time since the source was created.
func (s *ClockSource) Seconds() float64 {
	return s.clock.Since(s.epoch).Seconds()
}
