package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"snake-game/config"
	"snake-game/game"
	"snake-game/game/types"
	"snake-game/ui/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// the screen owns the terminal, so logs are dropped unless -log-file is set
	cfg, logger, logCloser, err := config.ParseFlags(flag.CommandLine, os.Args[1:], io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(2)
	}
	err = run(cfg, logger)
	logCloser.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg types.Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	g, err := game.NewGame(cfg, logger, time.Now())
	if err != nil {
		return err
	}

	if !cfg.Mute {
		sounds, err := term.NewSounds()
		if err != nil {
			// Non-fatal, the game runs without sound
			logger.Warn("audio disabled", "error", err)
		}
		defer sounds.Close()
		g.Subscribe(sounds.OnEvent)
	}

	renderer := term.NewRenderer(screen, cfg.GridLines)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, dir := term.Translate(ev)
				switch action {
				case term.ActionQuit:
					logger.Info("game closed", "high_score", g.GetStateManager().GetHighScore())
					return nil
				case term.ActionPause:
					g.TogglePause(time.Now())
				case term.ActionTurn:
					g.SetDirection(dir)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			g.Update(now)
			renderer.Draw(g.Snapshot())
		}
	}
}
