package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"snake-game/config"
	"snake-game/game"
	"snake-game/game/types"
	"snake-game/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg, logger, logCloser, err := config.ParseFlags(flag.CommandLine, os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}
	err = run(cfg, logger)
	logCloser.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg types.Config, logger *slog.Logger) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull) // Escape toggles pause
	rl.SetTargetFPS(int32(cfg.FPS))

	g, err := game.NewGame(cfg, logger, time.Now())
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	if !cfg.Mute {
		sounds := ui.NewSounds(logger)
		defer sounds.Close()
		g.Subscribe(sounds.OnEvent)
	}

	renderer := ui.NewRenderer(cfg.GridLines)

	for !rl.WindowShouldClose() {
		now := time.Now()

		if ui.PausePressed() {
			g.TogglePause(now)
		}
		for _, dir := range ui.HeldDirections() {
			g.SetDirection(dir)
		}
		g.Update(now)

		sm := g.GetStateManager()
		history := sm.GetScoreHistory()
		renderer.Draw(g.Snapshot(), ui.Stats{
			Lives:        len(history) + 1,
			AverageScore: sm.GetAverageScore(),
			History:      history,
		})
	}

	logger.Info("game closed",
		"high_score", g.GetStateManager().GetHighScore(),
		"played", time.Since(g.StartTime).Round(time.Second))
	return nil
}
