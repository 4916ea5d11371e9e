package term

import (
	"fmt"
	"time"

	"snake-game/game/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[types.Event]tone{
	types.EventAxisChanged: {freq: 440, duration: 40 * time.Millisecond},
	types.EventAte:         {freq: 880, duration: 100 * time.Millisecond},
	types.EventDied:        {freq: 220, duration: 400 * time.Millisecond},
}

// Sounds plays a sine beep per audible event through the system speaker
type Sounds struct {
	ready bool
}

// NewSounds initialises the speaker. On error the returned Sounds stays
// silent, so callers may log the error and carry on.
func NewSounds() (*Sounds, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sounds{}, fmt.Errorf("init speaker: %w", err)
	}
	return &Sounds{ready: true}, nil
}

// OnEvent is a game.Listener
func (s *Sounds) OnEvent(e types.Event) {
	if !s.ready {
		return
	}
	t, ok := tones[e]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
}

func (s *Sounds) Close() {
	if s.ready {
		speaker.Close()
		s.ready = false
	}
}
