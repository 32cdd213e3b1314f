// Package clock measures frame time and reports frame rate.
package clock

import "time"

// Clock returns the elapsed time between successive Tick calls.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// New starts a clock at the current time.
func New() *Clock {
	return newWithSource(time.Now)
}

func newWithSource(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick returns seconds since the previous Tick (or since New).
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// DefaultReportInterval is how often FPSMeter reports.
const DefaultReportInterval = 0.5

// FPSMeter averages frame rate over a reporting window.
type FPSMeter struct {
	Interval float64 // seconds

	accum  float64
	frames int
	last   float64
}

// NewFPSMeter returns a meter reporting twice per second.
func NewFPSMeter() *FPSMeter {
	return &FPSMeter{Interval: DefaultReportInterval}
}

// Tick records one frame of dt seconds. When the window is full it returns
// frames/elapsed over the window and true, then starts a new window.
func (m *FPSMeter) Tick(dt float64) (float64, bool) {
	m.accum += dt
	m.frames++
	if m.accum < m.Interval || m.accum <= 0 {
		return m.last, false
	}
	m.last = float64(m.frames) / m.accum
	m.accum = 0
	m.frames = 0
	return m.last, true
}

// Last returns the most recent report, zero before the first.
func (m *FPSMeter) Last() float64 {
	return m.last
}
