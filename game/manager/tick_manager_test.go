package manager_test

import (
	"testing"
	"time"

	"snake-game/game/manager"

	"github.com/stretchr/testify/assert"
)

func TestTickManager(t *testing.T) {
	start := time.Unix(1000, 0)
	tm := manager.NewTickManager()
	assert.False(t, tm.Due(start), "idle until started")

	tm.Start(start, 200*time.Millisecond)
	assert.True(t, tm.Running())
	assert.False(t, tm.Due(start.Add(199*time.Millisecond)))
	assert.True(t, tm.Due(start.Add(200*time.Millisecond)))
	assert.False(t, tm.Due(start.Add(200*time.Millisecond)), "a tick is consumed once")

	// slightly late frames keep the cadence
	assert.True(t, tm.Due(start.Add(450*time.Millisecond)))
	assert.False(t, tm.Due(start.Add(599*time.Millisecond)))
	assert.True(t, tm.Due(start.Add(600*time.Millisecond)))
}

func TestTickManagerDropsMissedTicksAfterAStall(t *testing.T) {
	start := time.Unix(1000, 0)
	tm := manager.NewTickManager()
	tm.Start(start, 200*time.Millisecond)

	stalled := start.Add(5 * time.Second)
	due := 0
	for tm.Due(stalled) {
		due++
	}
	assert.Equal(t, 1, due)

	assert.False(t, tm.Due(stalled.Add(199*time.Millisecond)))
	assert.True(t, tm.Due(stalled.Add(200*time.Millisecond)))
}

func TestTickManagerReschedule(t *testing.T) {
	start := time.Unix(1000, 0)
	tm := manager.NewTickManager()
	tm.Start(start, 200*time.Millisecond)

	now := start.Add(200 * time.Millisecond)
	tm.Reschedule(now, 190*time.Millisecond)
	assert.Equal(t, 190*time.Millisecond, tm.Interval())
	assert.False(t, tm.Due(now.Add(189*time.Millisecond)))
	assert.True(t, tm.Due(now.Add(190*time.Millisecond)))
}

func TestTickManagerStopResume(t *testing.T) {
	start := time.Unix(1000, 0)
	tm := manager.NewTickManager()
	tm.Start(start, 200*time.Millisecond)

	tm.Stop()
	assert.False(t, tm.Running())
	assert.False(t, tm.Due(start.Add(time.Hour)))

	resumed := start.Add(time.Hour)
	tm.Resume(resumed)
	assert.True(t, tm.Running())
	assert.Equal(t, 200*time.Millisecond, tm.Interval())
	assert.False(t, tm.Due(resumed.Add(199*time.Millisecond)))
	assert.True(t, tm.Due(resumed.Add(200*time.Millisecond)))
}

func TestTickManagerZeroInterval(t *testing.T) {
	tm := manager.NewTickManager()
	tm.Start(time.Unix(0, 0), 0)
	assert.False(t, tm.Running())
	assert.False(t, tm.Due(time.Unix(10, 0)))
}
