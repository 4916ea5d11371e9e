package manager

import (
	"math"
	"time"
)

// DifficultyManager owns the tick interval. Every eat shortens it by a fixed
// factor down to a floor; a death restores the base value.
type DifficultyManager struct {
	base     time.Duration
	min      time.Duration
	factor   float64
	interval time.Duration
}

func NewDifficultyManager(base, min time.Duration, factor float64) *DifficultyManager {
	return &DifficultyManager{
		base:     base,
		min:      min,
		factor:   factor,
		interval: base,
	}
}

func (dm *DifficultyManager) Interval() time.Duration {
	return dm.interval
}

func (dm *DifficultyManager) Base() time.Duration {
	return dm.base
}

// OnAte speeds the game up and returns the new interval. Rounding happens
// in whole milliseconds.
func (dm *DifficultyManager) OnAte() time.Duration {
	ms := math.Round(float64(dm.interval.Milliseconds()) * dm.factor)
	next := time.Duration(ms) * time.Millisecond
	if next < dm.min {
		next = dm.min
	}
	dm.interval = next
	return dm.interval
}

// OnDied restores the base interval
func (dm *DifficultyManager) OnDied() time.Duration {
	dm.interval = dm.base
	return dm.interval
}
