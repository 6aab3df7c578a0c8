package simulation

// Clock counts simulated days. The zero value starts at day 0.
//
// Not safe for concurrent use; a Simulator is driven by one goroutine.
type Clock struct {
	day int64
}

// NewClock creates a clock at day 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock positioned at day.
func NewClockAt(day int64) *Clock {
	return &Clock{day: day}
}

// Next advances to the following day and returns it.
func (c *Clock) Next() int64 {
	c.day++
	return c.day
}

// Current returns the current day without advancing.
func (c *Clock) Current() int64 {
	return c.day
}
