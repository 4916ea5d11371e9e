package game_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"snake-game/game"
	"snake-game/game/entity"
	"snake-game/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.Seed = 1
	g, err := game.NewGame(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), t0)
	require.NoError(t, err)
	// out of the way of the starting row
	g.GetFood().MoveTo(types.Point{X: 0, Y: 0})
	return g
}

func ms(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Millisecond)
}

func headCell(g *game.Game) types.Point {
	cells := g.GetSnake().Cells()
	return cells[len(cells)-1]
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	assert.NotEmpty(t, g.UUID)
	assert.Equal(t, 200*time.Millisecond, g.Interval())
	assert.Equal(t, 3, g.GetSnake().Len())
	assert.False(t, g.Paused())
	assert.False(t, g.Dying())

	s := g.Snapshot()
	assert.Equal(t, g.UUID, s.Session)
	assert.Equal(t, types.Right, s.Direction)
	assert.Len(t, s.Segments, 3)
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.CellSize = 33
	_, err := game.NewGame(cfg, nil, t0)
	assert.ErrorIs(t, err, types.ErrInvalidGrid)
}

func TestNewGamePlacesFoodOffTheSnake(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		cfg := types.DefaultConfig()
		cfg.Seed = seed
		g, err := game.NewGame(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), t0)
		require.NoError(t, err)
		assert.NotContains(t, g.GetSnake().Cells(), g.GetFood().Cell)
	}
}

func TestUpdateTicksOnInterval(t *testing.T) {
	g := newTestGame(t)

	assert.Empty(t, g.Update(ms(199)))
	assert.Equal(t, types.Point{X: 17, Y: 9}, headCell(g))

	assert.Empty(t, g.Update(ms(200)))
	assert.Equal(t, types.Point{X: 18, Y: 9}, headCell(g))

	// a frame late by less than an interval keeps the cadence
	g.Update(ms(450))
	assert.Equal(t, types.Point{X: 19, Y: 9}, headCell(g))
	g.Update(ms(600))
	assert.Equal(t, types.Point{X: 20, Y: 9}, headCell(g))
}

func TestUpdateAfterStallMovesOnce(t *testing.T) {
	g := newTestGame(t)

	g.Update(ms(5000))
	assert.Equal(t, types.Point{X: 18, Y: 9}, headCell(g))

	g.Update(ms(5199))
	assert.Equal(t, types.Point{X: 18, Y: 9}, headCell(g))
	g.Update(ms(5200))
	assert.Equal(t, types.Point{X: 19, Y: 9}, headCell(g))
}

func TestEatGrowsAndSpeedsUp(t *testing.T) {
	g := newTestGame(t)
	g.GetFood().MoveTo(types.Point{X: 18, Y: 9})

	events := g.Update(ms(200))

	assert.Equal(t, []types.Event{types.EventAte}, events)
	assert.Equal(t, 4, g.GetSnake().Len())
	assert.Equal(t, 190*time.Millisecond, g.Interval())
	assert.Equal(t, 1, g.GetStateManager().GetScore())
	assert.NotContains(t, g.GetSnake().Cells(), g.GetFood().Cell)

	// the new interval counts from the eat
	g.Update(ms(389))
	assert.Equal(t, types.Point{X: 18, Y: 9}, headCell(g))
	g.Update(ms(390))
	assert.Equal(t, types.Point{X: 19, Y: 9}, headCell(g))
}

func TestDeathPauseThenReset(t *testing.T) {
	g := newTestGame(t)
	g.GetFood().MoveTo(types.Point{X: 18, Y: 9})
	require.Equal(t, []types.Event{types.EventAte}, g.Update(ms(200)))
	g.GetFood().MoveTo(types.Point{X: 0, Y: 0})

	snake := g.GetSnake()
	snake.Body = nil
	for _, c := range []types.Point{{X: 18, Y: 9}, {X: 17, Y: 9}, {X: 17, Y: 10}, {X: 16, Y: 10}, {X: 16, Y: 9}} {
		snake.Body = append(snake.Body, g.Grid.CellRect(c))
	}
	snake.Face(types.Right)

	assert.Equal(t, []types.Event{types.EventDied}, g.Update(ms(390)))
	assert.True(t, g.Dying())
	assert.Equal(t, 1, g.Snapshot().Score, "score holds during the death pause")

	// frozen: no movement, no input
	before := snake.Segments()
	g.SetDirection(types.Up)
	g.TogglePause(ms(500))
	assert.Empty(t, g.Update(ms(1389)))
	assert.Equal(t, before, snake.Segments())
	assert.False(t, g.Paused())

	assert.Equal(t, []types.Event{types.EventReset}, g.Update(ms(1390)))
	assert.False(t, g.Dying())
	assert.Equal(t, []types.Point{{X: 15, Y: 9}, {X: 16, Y: 9}, {X: 17, Y: 9}}, snake.Cells())
	assert.Equal(t, types.Right, snake.Direction)
	assert.Equal(t, 200*time.Millisecond, g.Interval())
	assert.Equal(t, 0, g.GetStateManager().GetScore())
	assert.Equal(t, 1, g.GetStateManager().GetHighScore())

	history := g.GetStateManager().GetScoreHistory()
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].Score)
	assert.Equal(t, ms(390), history[0].EndTime)

	g.Update(ms(1590))
	assert.Equal(t, types.Point{X: 18, Y: 9}, headCell(g))
}

func TestPauseResume(t *testing.T) {
	g := newTestGame(t)

	g.TogglePause(ms(100))
	assert.True(t, g.Paused())
	assert.Equal(t, []types.Event{types.EventPaused}, g.Update(ms(500)))
	assert.Equal(t, types.Point{X: 17, Y: 9}, headCell(g))

	g.SetDirection(types.Up)
	assert.Equal(t, types.Right, g.GetSnake().Direction, "input is ignored while paused")

	g.TogglePause(ms(1000))
	assert.Equal(t, []types.Event{types.EventResumed}, g.Update(ms(1199)))
	assert.Equal(t, types.Point{X: 17, Y: 9}, headCell(g))
	assert.Equal(t, 200*time.Millisecond, g.Interval())

	g.Update(ms(1200))
	assert.Equal(t, types.Point{X: 18, Y: 9}, headCell(g))
}

func TestSetDirectionEmitsAxisChange(t *testing.T) {
	g := newTestGame(t)

	g.SetDirection(types.Left)
	g.SetDirection(types.Right)
	assert.Empty(t, g.Update(ms(1)))

	g.SetDirection(types.Up)
	g.SetDirection(types.Up)
	assert.Equal(t, []types.Event{types.EventAxisChanged}, g.Update(ms(2)))

	g.Update(ms(200))
	g.SetDirection(types.Left)
	assert.Equal(t, []types.Event{types.EventAxisChanged}, g.Update(ms(201)))
	assert.Equal(t, types.Left, g.GetSnake().Pending())
}

func TestDoubleTurnWithinOneTickCannotReverse(t *testing.T) {
	g := newTestGame(t)

	g.SetDirection(types.Up)
	g.SetDirection(types.Left)
	events := g.Update(ms(200))

	assert.Equal(t, []types.Event{types.EventAxisChanged}, events)
	assert.False(t, g.Dying())
	assert.Equal(t, types.Up, g.GetSnake().Direction)
	assert.Equal(t, types.Point{X: 17, Y: 8}, headCell(g))

	// the same turn is fine once the snake has moved up
	g.SetDirection(types.Left)
	g.Update(ms(400))
	assert.False(t, g.Dying())
	assert.Equal(t, types.Point{X: 16, Y: 8}, headCell(g))
}

func TestSnapshotCarriesColorAndDying(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, g.GetSnake().Color, g.Snapshot().Color)
	assert.NotEqual(t, entity.Color{}, g.Snapshot().Color)
	assert.False(t, g.Snapshot().Dying)
}

func TestListenersSeeEventsInOrder(t *testing.T) {
	g := newTestGame(t)
	var first, second []types.Event
	g.Subscribe(func(e types.Event) { first = append(first, e) })
	g.Subscribe(func(e types.Event) { second = append(second, e) })

	g.SetDirection(types.Down)
	g.TogglePause(ms(10))
	g.TogglePause(ms(20))
	returned := g.Update(ms(30))

	want := []types.Event{types.EventAxisChanged, types.EventPaused, types.EventResumed}
	assert.Equal(t, want, returned)
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)

	assert.Nil(t, g.Update(ms(40)))
	assert.Len(t, first, 3)
}
