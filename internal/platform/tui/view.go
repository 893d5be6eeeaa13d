package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const groundChar = '▀'

// draw paints the whole screen buffer: play area, ground, HUD and overlay.
func (m *Model) draw() {
	m.screen.Clear()
	if m.screen.Width() == 0 || m.screen.Height() == 0 {
		return
	}

	st := m.State()
	s := m.game.Session()
	if s != nil {
		m.board.frame.Draw(m.screen, m.board.scale())
	}

	m.screen.DrawHLine(0, hudRows+m.board.rows, m.screen.Width(), groundChar, core.ColorOrange)
	m.drawHUD(s)

	switch {
	case s == nil:
		m.drawOverlay(core.ColorBrightYellow,
			strings.ToUpper(m.game.Title()),
			"",
			"enter  start",
			"space  flap",
		)
	case st.GameOver:
		m.drawOverlay(core.ColorBrightRed,
			"GAME OVER",
			"",
			fmt.Sprintf("score %d  best %d", m.board.summary.Score, m.board.best),
			causeText(m.board.summary.Cause),
			"",
			"r  restart",
		)
	case st.Paused:
		m.drawOverlay(core.ColorCyan, "PAUSED", "", "p  resume")
	}
}

// drawHUD writes the status line.
func (m *Model) drawHUD(s *flappy.Session) {
	m.screen.DrawText(1, 0, fmt.Sprintf("SCORE %d", m.board.score), core.ColorWhite)
	m.screen.DrawText(12, 0, fmt.Sprintf("BEST %d", m.board.best), core.ColorGray)

	var right string
	switch {
	case m.pilot != nil:
		right = "pilot: " + m.pilot.ID()
	case s != nil:
		right = fmt.Sprintf("seed %d", s.Summary().Seed)
	}
	if m.lastShot != "" {
		right = "screenshot saved"
	}
	if right != "" {
		x := m.screen.Width() - utf8.RuneCountInString(right) - 1
		m.screen.DrawText(max(x, 0), 0, right, core.ColorGray)
	}
}

// drawOverlay centers a boxed block of lines over the play area.
func (m *Model) drawOverlay(border core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	bw, bh := width+4, len(lines)+2
	x := core.Clamp((m.screen.Width()-bw)/2, 0, m.screen.Width())
	y := hudRows + core.Clamp((m.board.rows-bh)/2, 0, m.board.rows)

	m.screen.FillRect(x, y, bw, bh, ' ', core.ColorDefault)
	m.screen.DrawBox(x, y, bw, bh, border)
	for i, l := range lines {
		m.screen.DrawTextCentered(y+1+i, l, core.ColorWhite)
	}
}

func causeText(c flappy.EndCause) string {
	switch c {
	case flappy.CauseCollision:
		return "hit a pipe"
	case flappy.CauseGround:
		return "hit the ground"
	case flappy.CauseCeiling:
		return "flew too high"
	default:
		return c.String()
	}
}
