package tui

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Screen rows not used by the play area: the HUD line on top, the ground
// line below it, and the help line at the very bottom.
const (
	hudRows    = 1
	groundRows = 1
	helpRows   = 1
	chromeRows = hudRows + groundRows + helpRows
)

// board is the terminal side of the simulation. It answers the play area
// from the current terminal size and keeps the latest output for View.
type board struct {
	display config.Display
	cols    int
	rows    int // Play area rows

	frame   flappy.Frame
	score   int
	best    int
	over    bool
	summary flappy.Summary
}

func newBoard(d config.Display, width, height int) *board {
	b := &board{display: d}
	b.resize(width, height)
	return b
}

// resize sets the terminal size in cells. The play area always keeps at
// least one row and column.
func (b *board) resize(width, height int) {
	b.cols = max(width, 1)
	b.rows = max(height-chromeRows, 1)
}

// PlayArea implements flappy.Geometry.
func (b *board) PlayArea() flappy.Area {
	return flappy.Area{
		W: float64(b.cols) * b.display.CellWidth,
		H: float64(b.rows) * b.display.CellHeight,
	}
}

// PlayArea returns the play area in world units for a terminal of the
// given size, as the game screen lays it out.
func PlayArea(d config.Display, width, height int) flappy.Area {
	return newBoard(d, width, height).PlayArea()
}

// Render implements flappy.Presenter.
func (b *board) Render(f flappy.Frame) {
	b.frame = f
}

// Score implements flappy.Presenter.
func (b *board) Score(score int) {
	b.score = score
	b.best = max(b.best, score)
}

// Lifecycle implements flappy.Presenter.
func (b *board) Lifecycle(ev flappy.Event, s flappy.Summary) {
	switch ev {
	case flappy.EventStarted, flappy.EventRestarted:
		b.over = false
	case flappy.EventGameOver:
		b.over = true
		b.summary = s
	}
}

// scale maps world units onto the screen rows below the HUD.
func (b *board) scale() flappy.Scale {
	return flappy.Scale{
		CellW: b.display.CellWidth,
		CellH: b.display.CellHeight,
		Top:   hudRows,
	}
}
