package animations

// Clock reports monotonic time in milliseconds.
type Clock interface {
	Millis() int64
}

// TickClock is a Clock driven by the game loop rather than the wall clock.
type TickClock struct {
	now  int64
	Step int64 // milliseconds added per Tick
}

func NewTickClock(step int64) *TickClock {
	return &TickClock{Step: step}
}

func (c *TickClock) Tick() {
	c.now += c.Step
}

func (c *TickClock) Advance(ms int64) {
	c.now += ms
}

func (c *TickClock) Millis() int64 {
	return c.now
}
