package control_loop

import "time"

// Clock provides the timestamps of the measurements
type Clock interface {
	Now() time.Time
}

// SystemClock uses the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// StepClock is a synthetic clock that advances by a fixed step on every
// call of Now, starting at the given time.
type StepClock struct {
	next time.Time
	step time.Duration
}

func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{
		next: start,
		step: step,
	}
}

func (c *StepClock) Now() time.Time {
	now := c.next
	c.next = c.next.Add(c.step)
	return now
}
