package ui

import (
	"fmt"

	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudFontSize   = 20
	hudPadding    = 10
	pauseFontSize = 48
	pauseTextY    = 250

	graphHeight  = 150
	graphPadding = 20
	barWidth     = 4
	barSpacing   = 6 // gap between the score and duration bars of a life
	barAlpha     = 180
)

var (
	bgColour   = rl.Color{R: 19, G: 87, B: 37, A: 255}
	lineColour = rl.Color{R: 13, G: 71, B: 7, A: 255}
	fontColour = rl.Color{R: 200, G: 210, B: 200, A: 255}
	headColour = rl.Color{R: 104, G: 255, B: 156, A: 255}
	deadColour = rl.Color{R: 160, G: 30, B: 30, A: 255}
	foodColour = rl.Color{R: 230, G: 70, B: 70, A: 255}
)

type Renderer struct {
	gridLines bool
}

func NewRenderer(gridLines bool) *Renderer {
	return &Renderer{gridLines: gridLines}
}

// Draw renders one frame. While paused the frozen playfield is drawn under a
// translucent scrim with a centred label; during the death pause the head
// turns red.
func (r *Renderer) Draw(s game.Snapshot, stats Stats) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(bgColour)
	if r.gridLines {
		r.drawGrid(s.Grid)
	}

	r.drawRect(s.Food, foodColour)
	bodyColour := rl.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 255}
	for j, part := range s.Segments {
		if j < len(s.Segments)-1 {
			r.drawRect(part, bodyColour)
			continue
		}
		if s.Dying {
			r.drawRect(part, deadColour)
			continue
		}
		r.drawRect(part, headColour)
		r.drawDirection(part, s.Direction)
	}

	r.drawHUD(s, stats)

	if s.Paused {
		r.drawPauseOverlay(s.Grid)
		r.drawHistory(s.Grid, stats.History)
	}
}

// Stats is the session summary shown in the HUD and the pause overlay
type Stats struct {
	Lives        int
	AverageScore float64
	History      []manager.LifeRecord // oldest first
}

func (r *Renderer) drawGrid(g types.Grid) {
	for x := 0; x < g.Width; x += g.CellSize {
		rl.DrawLine(int32(x), 0, int32(x), int32(g.Height), lineColour)
	}
	for y := 0; y < g.Height; y += g.CellSize {
		rl.DrawLine(0, int32(y), int32(g.Width), int32(y), lineColour)
	}
}

func (r *Renderer) drawRect(rect types.Rect, c rl.Color) {
	rl.DrawRectangle(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H), c)
}

func (r *Renderer) drawDirection(head types.Rect, dir types.Direction) {
	x, y := float32(head.X), float32(head.Y)
	size := float32(head.W)
	half := size / 2
	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: x + size, Y: y + half},
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x + half, Y: y + size},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + half, Y: y + size},
			rl.Vector2{X: x + half, Y: y},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y + size},
			rl.Vector2{X: x + size, Y: y + half},
			rl.Vector2{X: x, Y: y + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + size, Y: y + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawHUD(s game.Snapshot, stats Stats) {
	label := fmt.Sprintf("Score: %d  High: %d  Avg: %.1f  Lives: %d  Tick: %dms",
		s.Score, s.HighScore, stats.AverageScore, stats.Lives, s.Interval.Milliseconds())
	rl.DrawText(label, hudPadding, hudPadding, hudFontSize, fontColour)
}

func (r *Renderer) drawPauseOverlay(g types.Grid) {
	rl.DrawRectangle(0, 0, int32(g.Width), int32(g.Height), rl.Fade(bgColour, 0.5))
	text := "PAUSED"
	textWidth := rl.MeasureText(text, pauseFontSize)
	rl.DrawText(text, (int32(g.Width)-textWidth)/2, pauseTextY, pauseFontSize, fontColour)
}

// drawHistory charts every finished life as a green score bar next to a
// purple duration bar, each scaled to the session maximum.
func (r *Renderer) drawHistory(g types.Grid, history []manager.LifeRecord) {
	width := int32(g.Width) - graphPadding*2
	top := int32(g.Height) - graphHeight - graphPadding
	bottom := top + graphHeight
	rl.DrawRectangle(graphPadding, top, width, graphHeight, rl.Fade(rl.DarkGray, 0.6))

	if len(history) == 0 {
		return
	}

	maxScore := 1
	maxDuration := 1.0
	for _, life := range history {
		if life.Score > maxScore {
			maxScore = life.Score
		}
		if d := life.Duration().Seconds(); d > maxDuration {
			maxDuration = d
		}
	}
	scoreScale := float32(graphHeight-40) / float32(maxScore)
	durationScale := float32(graphHeight-40) / float32(maxDuration)

	spacing := float32(width) / float32(len(history)+1)
	for i, life := range history {
		x := float32(graphPadding) + spacing*float32(i+1)

		scoreH := int32(float32(life.Score) * scoreScale)
		rl.DrawRectangle(int32(x-barSpacing/2-barWidth/2), bottom-scoreH, barWidth, scoreH,
			rl.Color{R: 0, G: barAlpha, B: 0, A: barAlpha})

		durationH := int32(float32(life.Duration().Seconds()) * durationScale)
		rl.DrawRectangle(int32(x+barSpacing/2-barWidth/2), bottom-durationH, barWidth, durationH,
			rl.Color{R: barAlpha, G: 0, B: barAlpha, A: barAlpha})
	}
}
