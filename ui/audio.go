package ui

import (
	"log/slog"
	"math"

	"snake-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const sampleRate = 44100

type tone struct {
	freq     float64
	duration float64 // seconds
	volume   float64
}

var tones = map[types.Event]tone{
	types.EventAxisChanged: {freq: 440, duration: 0.04, volume: 2500},
	types.EventAte:         {freq: 880, duration: 0.1, volume: 4000},
	types.EventDied:        {freq: 220, duration: 0.4, volume: 4000},
}

// Sounds plays a short synthesized tone for each audible game event. A
// missing audio device leaves it silent.
type Sounds struct {
	sounds map[types.Event]rl.Sound
}

// NewSounds opens the audio device and builds the tones. It must be called
// after the window is created.
func NewSounds(logger *slog.Logger) *Sounds {
	s := &Sounds{sounds: make(map[types.Event]rl.Sound)}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		logger.Warn("audio device unavailable, running muted")
		return s
	}
	for event, t := range tones {
		data := synthesize(t)
		wave := rl.NewWave(uint32(len(data)/2), sampleRate, 16, 1, data)
		s.sounds[event] = rl.LoadSoundFromWave(wave)
	}
	return s
}

// OnEvent is a game.Listener
func (s *Sounds) OnEvent(e types.Event) {
	if sound, ok := s.sounds[e]; ok {
		rl.PlaySound(sound)
	}
}

func (s *Sounds) Close() {
	for _, sound := range s.sounds {
		rl.UnloadSound(sound)
	}
	if rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
}

// synthesize renders a decaying sine wave as 16-bit mono PCM
func synthesize(t tone) []byte {
	n := int(sampleRate * t.duration)
	buf := make([]byte, n*2)
	for i := 0; i < n; i++ {
		x := float64(i) / sampleRate
		v := int16(math.Sin(2*math.Pi*t.freq*x) * t.volume * math.Exp(-3*x))
		buf[i*2] = byte(v)
		buf[i*2+1] = byte(v >> 8)
	}
	return buf
}
