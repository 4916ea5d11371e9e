// Package config builds the game configuration from defaults, an optional
// TOML file and command line flags, in that order of precedence.
package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"snake-game/game/types"
)

// ParseFlags parses args into a validated Config and a logger writing to
// logOut, or to -log-file when set. Flags given on the command line override
// values from -config. The caller closes the returned io.Closer once the
// logger is no longer used.
func ParseFlags(fs *flag.FlagSet, args []string, logOut io.Writer) (types.Config, *slog.Logger, io.Closer, error) {
	def := types.DefaultConfig()

	path := fs.String("config", "", "path to a TOML config file")
	width := fs.Int("width", def.Width, "playfield width in pixels")
	height := fs.Int("height", def.Height, "playfield height in pixels")
	cell := fs.Int("cell", def.CellSize, "cell size in pixels")
	seed := fs.Uint64("seed", def.Seed, "food placement seed (0 = random)")
	fps := fs.Int("fps", def.FPS, "frames per second")
	mute := fs.Bool("mute", def.Mute, "disable sound")
	gridLines := fs.Bool("grid-lines", def.GridLines, "draw the cell grid")
	attempts := fs.Int("max-placement-attempts", def.MaxPlacementAttempts, "cap on food placement samples (0 = unbounded)")
	level := fs.String("log-level", "info", "log level: debug, info, warn, error")
	logFile := fs.String("log-file", "", "append logs to this file instead of the default output")

	if err := fs.Parse(args); err != nil {
		return types.Config{}, nil, nil, err
	}

	// checked before any file is opened
	var l slog.Level
	if err := parseLevel(*level, &l); err != nil {
		return types.Config{}, nil, nil, err
	}

	cfg, err := types.LoadConfig(*path)
	if err != nil {
		return types.Config{}, nil, nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "cell":
			cfg.CellSize = *cell
		case "seed":
			cfg.Seed = *seed
		case "fps":
			cfg.FPS = *fps
		case "mute":
			cfg.Mute = *mute
		case "grid-lines":
			cfg.GridLines = *gridLines
		case "max-placement-attempts":
			cfg.MaxPlacementAttempts = *attempts
		}
	})

	if err := cfg.Validate(); err != nil {
		return types.Config{}, nil, nil, err
	}

	var closer io.Closer = nopCloser{}
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return types.Config{}, nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logOut, closer = f, f
	}

	return cfg, newLogger(l, logOut), closer, nil
}

// NewLogger returns a text logger at the named level
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := parseLevel(level, &l); err != nil {
		return nil, err
	}
	return newLogger(l, w), nil
}

func newLogger(l slog.Level, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func parseLevel(level string, l *slog.Level) error {
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
