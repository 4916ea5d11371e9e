// Package term is a terminal frontend for the game, drawing each grid cell
// as two character columns.
package term

import (
	"fmt"

	"snake-game/game"
	"snake-game/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2 // terminal columns per grid cell
	originX   = 1
	originY   = 1
)

const (
	runeBody = '█'
	runeFood = '●'
	runeGrid = '·'
	runeDead = '✖'
)

var headRunes = map[types.Direction]rune{
	types.Up:    '▲',
	types.Right: '▶',
	types.Down:  '▼',
	types.Left:  '◀',
}

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	styleDead   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGrid   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen).Dim(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	stylePaused = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true).Reverse(true)
)

type Renderer struct {
	screen    tcell.Screen
	gridLines bool
	grid      types.Grid
}

func NewRenderer(screen tcell.Screen, gridLines bool) *Renderer {
	return &Renderer{screen: screen, gridLines: gridLines}
}

// CellPosition maps a grid cell to its left terminal column and row
func CellPosition(p types.Point) (int, int) {
	return originX + p.X*cellWidth, originY + p.Y
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.grid = s.Grid
	r.screen.Clear()
	r.drawBorder(s.Grid)

	if r.gridLines {
		for row := 0; row < s.Grid.MaxRow(); row++ {
			for col := 0; col < s.Grid.MaxCol(); col++ {
				r.setCell(types.Point{X: col, Y: row}, runeGrid, styleGrid)
			}
		}
	}

	r.setCell(s.Grid.PixelToCell(s.Food.X, s.Food.Y), runeFood, styleFood)
	styleBody := tcell.StyleDefault.Foreground(
		tcell.NewRGBColor(int32(s.Color.R), int32(s.Color.G), int32(s.Color.B)))
	for i, part := range s.Segments {
		cell := s.Grid.PixelToCell(part.X, part.Y)
		switch {
		case i < len(s.Segments)-1:
			r.setCell(cell, runeBody, styleBody)
		case s.Dying:
			r.setCell(cell, runeDead, styleDead)
		default:
			r.setCell(cell, headRunes[s.Direction], styleHead)
		}
	}

	hud := fmt.Sprintf("Score: %d  High: %d  Tick: %dms", s.Score, s.HighScore, s.Interval.Milliseconds())
	r.drawText(originX, originY+s.Grid.MaxRow()+1, hud, styleText)

	if s.Paused {
		label := " PAUSED "
		x := originX + (s.Grid.MaxCol()*cellWidth-len(label))/2
		r.drawText(x, originY+s.Grid.MaxRow()/2, label, stylePaused)
	}

	r.screen.Show()
}

// setCell skips cells off the playfield, which a head mid wraparound can be
func (r *Renderer) setCell(p types.Point, ch rune, style tcell.Style) {
	if p.X < 0 || p.X >= r.grid.MaxCol() || p.Y < 0 || p.Y >= r.grid.MaxRow() {
		return
	}
	x, y := CellPosition(p)
	w, h := r.screen.Size()
	if x+1 >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
	if ch == runeBody {
		r.screen.SetContent(x+1, y, ch, nil, style)
	}
}

func (r *Renderer) drawBorder(g types.Grid) {
	right := originX + g.MaxCol()*cellWidth
	bottom := originY + g.MaxRow()
	for x := originX; x < right; x++ {
		r.screen.SetContent(x, originY-1, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := originY; y < bottom; y++ {
		r.screen.SetContent(originX-1, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(originX-1, originY-1, '┌', nil, styleBorder)
	r.screen.SetContent(right, originY-1, '┐', nil, styleBorder)
	r.screen.SetContent(originX-1, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
