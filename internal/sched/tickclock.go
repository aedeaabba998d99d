// internal/sched/tickclock.go

package sched

// TickClock is the engine's only notion of time: a counter that
// advances by exactly one per loop iteration.
type TickClock struct {
	count int64
}

// NewTickClock creates a clock positioned at tick 0.
func NewTickClock() *TickClock {
	return &TickClock{}
}

// Now returns the current tick.
func (c *TickClock) Now() int64 { return c.count }

// Advance moves the clock forward by one tick and returns the new tick.
func (c *TickClock) Advance() int64 {
	c.count++
	return c.count
}
