package colorlines

import (
	"fmt"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/lines"
)

const (
	cellWidth = 3 // Columns per board cell, glyph in the middle
	hudHeight = 3 // Title, score row, rules row
	footer    = 2 // Status row and key hints
	minWidth  = 30

	blinkTicks = 3 // Ticks per blink half-period of balls about to clear
)

const (
	glyphEmpty  = '·'
	glyphBall   = '●'
	glyphMoving = '○'
	glyphClear  = '✶'
	glyphSpawn  = '∙'
	glyphPicked = '◉'
)

// ballColors maps the engine palette to screen colours.
var ballColors = [lines.MaxColors]core.Color{
	lines.Red:     core.ColorBrightRed,
	lines.Green:   core.ColorBrightGreen,
	lines.Blue:    core.ColorBrightBlue,
	lines.Yellow:  core.ColorBrightYellow,
	lines.Magenta: core.ColorBrightMagenta,
	lines.Cyan:    core.ColorBrightCyan,
	lines.Orange:  core.ColorOrange,
	lines.White:   core.ColorBrightWhite,
	lines.Brown:   core.ColorBrown,
}

// BallColor returns the screen colour of a ball.
func BallColor(c lines.Color) core.Color {
	if int(c) < len(ballColors) {
		return ballColors[c]
	}
	return core.ColorDefault
}

// layoutSize returns the minimum screen size for the current board.
func (g *Game) layoutSize() (w, h int) {
	board := g.boardRect(0, 0)
	return max(board.W, minWidth), hudHeight + board.H + footer
}

// boardRect returns the board frame with its top-left corner at (x, y).
func (g *Game) boardRect(x, y int) core.Rect {
	return core.NewRect(x, y, g.cfg.Board.Width*cellWidth+2, g.cfg.Board.Height+2)
}

// cellRect returns the screen area of board cell c inside frame.
func cellRect(frame core.Rect, c lines.Cell) core.Rect {
	return core.NewRect(frame.X+1+c.X*cellWidth, frame.Y+1+c.Y, cellWidth, 1)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w := g.boardRect(0, 0).W
	frame := g.boardRect((g.screenW-w)/2, hudHeight)

	g.renderHUD(dst, frame)
	g.renderBoard(dst, frame)
	g.renderFooter(dst, frame)

	if g.gameOver {
		g.renderGameOver(dst, frame)
	} else if g.paused {
		dst.DrawTextCentered(frame.Y+frame.H/2, " PAUSED ")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layoutSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	st := g.State()
	dst.DrawTextCentered(0, g.variant.Title)

	dst.DrawText(frame.X, 1, fmt.Sprintf("Score: %d", st.Score))
	turn := fmt.Sprintf("Turn: %d", st.Turn)
	dst.DrawText(frame.Right()-len(turn), 1, turn)

	colors := g.difficulty.Colors(g.cfg.Rules.Colors, st.Score, st.Turn)
	dst.DrawTextCentered(2, fmt.Sprintf("%d in a row  %d colours", g.ctrl.MinRun(), colors))
}

func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	dst.DrawBox(frame, core.ColorGray)

	for y := range g.ctrl.Height() {
		for x := range g.ctrl.Width() {
			g.drawGlyph(dst, frame, lines.C(x, y), glyphEmpty, core.ColorGray)
		}
	}
	for _, p := range g.ctrl.Board().Balls() {
		g.drawGlyph(dst, frame, p.Cell, glyphBall, BallColor(p.Ball.Color))
	}

	switch g.ctrl.State() {
	case lines.BallSelected:
		if sel, ok := g.ctrl.Selected(); ok {
			ball, _ := g.ctrl.Ball(sel.X, sel.Y)
			r := cellRect(frame, sel)
			g.drawGlyph(dst, frame, sel, glyphPicked, BallColor(ball.Color))
			dst.SetCell(r.X, r.Y, core.Cell{Rune: '[', Color: core.ColorBrightWhite})
			dst.SetCell(r.Right()-1, r.Y, core.Cell{Rune: ']', Color: core.ColorBrightWhite})
		}
	case lines.BallMoving:
		if ball, to, ok := g.ctrl.Moving(); ok {
			g.drawGlyph(dst, frame, to, glyphMoving, BallColor(ball.Color))
		}
	case lines.ClearLines:
		if (g.phaseTicks/blinkTicks)%2 == 1 {
			for _, c := range g.ctrl.BallsToClear() {
				ball, _ := g.ctrl.Ball(c.X, c.Y)
				g.drawGlyph(dst, frame, c, glyphClear, BallColor(ball.Color))
			}
		}
	case lines.ShootNewBalls:
		for _, p := range g.ctrl.BallsToShoot() {
			g.drawGlyph(dst, frame, p.Cell, glyphSpawn, BallColor(p.Ball.Color))
		}
	}

	if !g.gameOver {
		dst.Highlight(cellRect(frame, g.cursor))
	}
}

func (g *Game) drawGlyph(dst *core.Screen, frame core.Rect, c lines.Cell, r rune, color core.Color) {
	cell := cellRect(frame, c)
	dst.SetCell(cell.X+cellWidth/2, cell.Y, core.Cell{Rune: r, Color: color})
}

func (g *Game) renderFooter(dst *core.Screen, frame core.Rect) {
	status := g.message
	if status == "" {
		status = g.statusText()
	}
	dst.DrawTextCentered(frame.Bottom(), status)
	hint := "Enter:select  P:pause  B:menu"
	dst.DrawTextColor((g.screenW-len(hint))/2, frame.Bottom()+1, hint, core.ColorGray)
}

func (g *Game) statusText() string {
	switch g.ctrl.State() {
	case lines.WaitingForSelection:
		return "Pick a ball"
	case lines.BallSelected:
		return "Pick an empty cell"
	case lines.ClearLines:
		if n := len(lines.Unique(g.ctrl.BallsToClear())); n > 0 {
			return fmt.Sprintf("+%d", n)
		}
	}
	return ""
}

func (g *Game) renderGameOver(dst *core.Screen, frame core.Rect) {
	box := frame.Centered(23, 5)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+1, "GAME OVER")
	dst.DrawTextCentered(box.Y+2, fmt.Sprintf("Score: %d", g.ctrl.Cleared()))
	dst.DrawTextCentered(box.Y+3, "R:restart  B:menu")
}
