package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"

	"github.com/google/uuid"
)

var snakeColor = entity.Color{R: 80, G: 200, B: 120}

// Listener receives game events in the order they were emitted
type Listener func(types.Event)

// Snapshot is the read-only view handed to renderers once per frame
type Snapshot struct {
	Session   string
	Grid      types.Grid
	Segments  []types.Rect // tail first
	Food      types.Rect
	Direction types.Direction
	Color     entity.Color
	Paused    bool
	Dying     bool
	Score     int
	HighScore int
	Interval  time.Duration
}

// Game is one play session. It owns the snake, the food and every manager,
// and is driven by a single loop calling SetDirection, TogglePause and
// Update.
type Game struct {
	UUID      string
	Grid      types.Grid
	Config    types.Config
	StartTime time.Time

	snake         *entity.Snake
	collisionMgr  *manager.CollisionManager
	foodMgr       *manager.FoodManager
	difficultyMgr *manager.DifficultyManager
	tickMgr       *manager.TickManager
	stateMgr      *manager.StateManager

	paused     bool
	dying      bool
	diedAt     time.Time
	dyingUntil time.Time

	pending   []types.Event
	listeners []Listener
	logger    *slog.Logger
}

func NewGame(cfg types.Config, logger *slog.Logger, now time.Time) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	gameUUID := uuid.New().String()
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:          gameUUID,
		Grid:          grid,
		Config:        cfg,
		StartTime:     now,
		snake:         entity.NewSnake(grid, snakeColor),
		collisionMgr:  collisionMgr,
		foodMgr:       manager.NewFoodManager(grid, collisionMgr, cfg.Seed, cfg.MaxPlacementAttempts),
		difficultyMgr: manager.NewDifficultyManager(cfg.BaseIntervalDuration(), cfg.MinIntervalDuration(), cfg.SpeedUpFactor),
		tickMgr:       manager.NewTickManager(),
		stateMgr:      manager.NewStateManager(now),
		logger:        logger.With("session", gameUUID),
	}

	if err := g.foodMgr.Relocate(g.snake); err != nil {
		return nil, fmt.Errorf("place initial food: %w", err)
	}
	g.tickMgr.Start(now, g.difficultyMgr.Interval())

	g.logger.Info("game started",
		"cols", grid.MaxCol(),
		"rows", grid.MaxRow(),
		"interval", g.difficultyMgr.Interval())
	return g, nil
}

// Subscribe registers a listener for every future event
func (g *Game) Subscribe(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.foodMgr.GetFood()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

func (g *Game) Interval() time.Duration {
	return g.difficultyMgr.Interval()
}

func (g *Game) Paused() bool {
	return g.paused
}

func (g *Game) Dying() bool {
	return g.dying
}

// SetDirection applies player input. It is ignored while paused or during
// the pause that follows a death.
func (g *Game) SetDirection(dir types.Direction) {
	if g.paused || g.dying {
		return
	}
	if _, axisChanged := g.snake.SetDirection(dir); axisChanged {
		g.emit(types.EventAxisChanged)
	}
}

// TogglePause freezes or resumes the tick driver. Nothing else is touched,
// so resuming continues at the exact interval in effect before the pause.
func (g *Game) TogglePause(now time.Time) {
	if g.dying {
		return
	}
	g.paused = !g.paused
	if g.paused {
		g.tickMgr.Stop()
		g.emit(types.EventPaused)
	} else {
		g.tickMgr.Resume(now)
		g.emit(types.EventResumed)
	}
	g.logger.Debug("pause toggled", "paused", g.paused, "interval", g.tickMgr.Interval())
}

// Update runs one frame: it finishes a pending reset, then advances the
// snake once per due tick and resolves collisions after every step. The
// events emitted since the previous Update are delivered to listeners and
// returned.
func (g *Game) Update(now time.Time) []types.Event {
	switch {
	case g.dying:
		if !now.Before(g.dyingUntil) {
			g.reset(now)
		}
	case !g.paused:
		for !g.dying && g.tickMgr.Due(now) {
			g.snake.Advance()
			g.handleOutcome(now, g.collisionMgr.Resolve(g.snake, g.GetFood()))
		}
	}
	return g.flush()
}

func (g *Game) handleOutcome(now time.Time, outcome types.Outcome) {
	switch outcome {
	case types.OutcomeAte:
		g.snake.Grow()
		g.relocateFood()
		interval := g.difficultyMgr.OnAte()
		g.tickMgr.Reschedule(now, interval)
		score := g.stateMgr.AddPoint()
		g.emit(types.EventAte)
		g.logger.Debug("food eaten", "score", score, "length", g.snake.Len(), "interval", interval)

	case types.OutcomeDied:
		g.tickMgr.Stop()
		g.dying = true
		g.diedAt = now
		g.dyingUntil = now.Add(g.Config.DeathPauseDuration())
		g.emit(types.EventDied)
		g.logger.Info("snake died",
			"score", g.stateMgr.GetScore(),
			"length", g.snake.Len(),
			"high_score", g.stateMgr.GetHighScore())
	}
}

func (g *Game) reset(now time.Time) {
	record := g.stateMgr.EndLife(g.diedAt, g.snake.Len())
	g.logger.Debug("life recorded", "score", record.Score, "duration", record.Duration().Round(time.Millisecond))

	g.snake.Reset()
	g.relocateFood()
	interval := g.difficultyMgr.OnDied()
	g.tickMgr.Start(now, interval)
	g.dying = false
	g.emit(types.EventReset)
}

func (g *Game) relocateFood() {
	err := g.foodMgr.Relocate(g.snake)
	if errors.Is(err, manager.ErrNoFreeCell) {
		g.logger.Warn("food not moved", "error", err, "length", g.snake.Len())
	}
}

func (g *Game) emit(e types.Event) {
	g.pending = append(g.pending, e)
}

func (g *Game) flush() []types.Event {
	if len(g.pending) == 0 {
		return nil
	}
	events := g.pending
	g.pending = nil
	for _, e := range events {
		for _, l := range g.listeners {
			l(e)
		}
	}
	return events
}

// Snapshot copies the state a renderer needs
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Session:   g.UUID,
		Grid:      g.Grid,
		Segments:  g.snake.Segments(),
		Food:      g.GetFood().Rect(),
		Direction: g.snake.Direction,
		Color:     g.snake.Color,
		Paused:    g.paused,
		Dying:     g.dying,
		Score:     g.stateMgr.GetScore(),
		HighScore: g.stateMgr.GetHighScore(),
		Interval:  g.difficultyMgr.Interval(),
	}
}
