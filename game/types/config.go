package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned by Config.Validate for out of range tuning values
var ErrInvalidConfig = errors.New("invalid config")

// Game defaults
const (
	DefaultWidth          = 1280
	DefaultHeight         = 720
	DefaultCellSize       = 40
	DefaultBaseInterval   = 200  // ms between ticks at the start of a life
	DefaultMinInterval    = 50   // ms, fastest tick
	DefaultSpeedUpFactor  = 0.95 // interval multiplier applied on every eat
	DefaultDeathPause     = 1000 // ms between death and reset
	DefaultFPS            = 60
	DefaultPlacementLimit = 0 // 0 samples food cells until one is free
)

// Config holds the playfield and tuning constants. Durations are in
// milliseconds so the TOML file stays readable.
type Config struct {
	Width    int `toml:"width"`
	Height   int `toml:"height"`
	CellSize int `toml:"cell_size"`

	BaseInterval  int     `toml:"base_interval"`
	MinInterval   int     `toml:"min_interval"`
	SpeedUpFactor float64 `toml:"speed_up_factor"`
	DeathPause    int     `toml:"death_pause"`

	// MaxPlacementAttempts caps food sampling; 0 keeps it unbounded
	MaxPlacementAttempts int `toml:"max_placement_attempts"`

	// Seed for food placement; 0 seeds from the clock
	Seed uint64 `toml:"seed"`

	FPS       int  `toml:"fps"`
	Mute      bool `toml:"mute"`
	GridLines bool `toml:"grid_lines"`
}

func DefaultConfig() Config {
	return Config{
		Width:                DefaultWidth,
		Height:               DefaultHeight,
		CellSize:             DefaultCellSize,
		BaseInterval:         DefaultBaseInterval,
		MinInterval:          DefaultMinInterval,
		SpeedUpFactor:        DefaultSpeedUpFactor,
		DeathPause:           DefaultDeathPause,
		MaxPlacementAttempts: DefaultPlacementLimit,
		FPS:                  DefaultFPS,
	}
}

// LoadConfig reads a TOML file on top of the defaults. Keys missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Grid builds the validated playfield described by the config
func (c Config) Grid() (Grid, error) {
	return NewGrid(c.Width, c.Height, c.CellSize)
}

// Validate checks the grid and the tuning constants
func (c Config) Validate() error {
	if _, err := c.Grid(); err != nil {
		return err
	}
	switch {
	case c.BaseInterval <= 0:
		return fmt.Errorf("%w: base_interval %d must be positive", ErrInvalidConfig, c.BaseInterval)
	case c.MinInterval <= 0 || c.MinInterval > c.BaseInterval:
		return fmt.Errorf("%w: min_interval %d must be in (0, base_interval]", ErrInvalidConfig, c.MinInterval)
	case c.SpeedUpFactor <= 0 || c.SpeedUpFactor > 1:
		return fmt.Errorf("%w: speed_up_factor %v must be in (0, 1]", ErrInvalidConfig, c.SpeedUpFactor)
	case c.DeathPause < 0:
		return fmt.Errorf("%w: death_pause %d must not be negative", ErrInvalidConfig, c.DeathPause)
	case c.MaxPlacementAttempts < 0:
		return fmt.Errorf("%w: max_placement_attempts %d must not be negative", ErrInvalidConfig, c.MaxPlacementAttempts)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalidConfig, c.FPS)
	}
	return nil
}

func (c Config) BaseIntervalDuration() time.Duration {
	return time.Duration(c.BaseInterval) * time.Millisecond
}

func (c Config) MinIntervalDuration() time.Duration {
	return time.Duration(c.MinInterval) * time.Millisecond
}

func (c Config) DeathPauseDuration() time.Duration {
	return time.Duration(c.DeathPause) * time.Millisecond
}
