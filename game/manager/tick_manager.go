package manager

import "time"

// TickManager is a logical fixed-period timer. It never sleeps; the game loop
// asks it on every frame how many ticks have come due.
type TickManager struct {
	interval time.Duration
	next     time.Time
	running  bool
}

func NewTickManager() *TickManager {
	return &TickManager{}
}

// Start arms the timer; the first tick fires one interval after now
func (tm *TickManager) Start(now time.Time, interval time.Duration) {
	tm.interval = interval
	tm.next = now.Add(interval)
	tm.running = interval > 0
}

// Reschedule changes the period, restarting the countdown from now
func (tm *TickManager) Reschedule(now time.Time, interval time.Duration) {
	tm.Start(now, interval)
}

// Stop disarms the timer. The last interval is kept for Resume.
func (tm *TickManager) Stop() {
	tm.running = false
}

// Resume re-arms the timer with the interval it had before Stop
func (tm *TickManager) Resume(now time.Time) {
	tm.Start(now, tm.interval)
}

func (tm *TickManager) Running() bool {
	return tm.running
}

func (tm *TickManager) Interval() time.Duration {
	return tm.interval
}

// Due reports whether a tick is pending at now and consumes it. A frame late
// by less than an interval keeps the cadence; a longer stall drops the missed
// ticks and counts the next interval from now, so at most one tick fires per
// frame.
func (tm *TickManager) Due(now time.Time) bool {
	if !tm.running || now.Before(tm.next) {
		return false
	}
	tm.next = tm.next.Add(tm.interval)
	if !tm.next.After(now) {
		tm.next = now.Add(tm.interval)
	}
	return true
}
