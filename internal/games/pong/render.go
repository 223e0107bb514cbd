package pong

import (
	"fmt"

	"github.com/tavrin/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Seven-segment encoding for the score figures, one bit per segment:
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

// digitSegments maps a decimal digit to its lit segments.
var digitSegments = [10]uint8{
	segA | segB | segC | segD | segE | segF,        // 0
	segB | segC,                                    // 1
	segA | segB | segG | segE | segD,               // 2
	segA | segB | segG | segC | segD,               // 3
	segF | segG | segB | segC,                      // 4
	segA | segF | segG | segC | segD,               // 5
	segA | segF | segG | segE | segC | segD,        // 6
	segA | segB | segC,                             // 7
	segA | segB | segC | segD | segE | segF | segG, // 8
	segA | segB | segC | segD | segF | segG,        // 9
}

// Render draws the current match state to the screen, scaling the court to
// the available cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	if w < 2 || h < 2 {
		return
	}

	// Net
	netX := w / 2
	for y := 0; y < h; y += 2 {
		dst.SetCell(netX, y, NetChar, core.ColorGray)
	}

	// Paddles
	g.drawPaddle(dst, g.left)
	g.drawPaddle(dst, g.right)

	// Ball
	bx := scale(g.ball.X, CourtWidth, w)
	by := scale(g.ball.Y, CourtHeight, h)
	dst.SetCell(bx, by, BallChar, core.ColorBrightYellow)

	// Scores
	drawNumber(dst, netX-10, 1, g.scoreLeft)
	drawNumber(dst, netX+4, 1, g.scoreRight)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		msg := fmt.Sprintf("%s WINS!", g.winner)
		sub := fmt.Sprintf("%d - %d  |  R new game, Q quit", g.scoreLeft, g.scoreRight)
		g.drawCenteredMessage(dst, msg, sub)
	}
}

// drawPaddle maps a paddle's court rect onto screen cells.
func (g *Game) drawPaddle(dst *core.Screen, p Paddle) {
	x := scale(p.X, CourtWidth, dst.Width())
	y := scale(p.Y, CourtHeight, dst.Height())
	pw := core.Max(1, scale(p.W, CourtWidth, dst.Width()))
	ph := core.Max(1, scale(p.H, CourtHeight, dst.Height()))
	dst.DrawRectColored(core.NewRect(x, y, pw, ph), PaddleChar, core.ColorWhite)
}

// scale maps a court coordinate onto a screen axis of the given size.
func scale(v, court, screen int) int {
	return v * screen / court
}

// drawNumber draws n as large seven-segment figures, most significant digit
// first, each 3 cells wide and 5 tall with a one-cell gap.
func drawNumber(dst *core.Screen, x, y, n int) {
	if n < 0 {
		n = 0
	}
	if n >= 10 {
		drawDigit(dst, x, y, (n/10)%10)
		x += 4
	}
	drawDigit(dst, x, y, n%10)
}

// drawDigit draws a single digit from the segment table.
func drawDigit(dst *core.Screen, x, y, d int) {
	seg := digitSegments[d%10]
	put := func(px, py int) {
		dst.SetCell(px, py, PaddleChar, core.ColorBrightWhite)
	}

	if seg&segA != 0 {
		for i := 0; i < 3; i++ {
			put(x+i, y)
		}
	}
	if seg&segG != 0 {
		for i := 0; i < 3; i++ {
			put(x+i, y+2)
		}
	}
	if seg&segD != 0 {
		for i := 0; i < 3; i++ {
			put(x+i, y+4)
		}
	}
	if seg&segF != 0 {
		put(x, y)
		put(x, y+1)
		put(x, y+2)
	}
	if seg&segE != 0 {
		put(x, y+2)
		put(x, y+3)
		put(x, y+4)
	}
	if seg&segB != 0 {
		put(x+2, y)
		put(x+2, y+1)
		put(x+2, y+2)
	}
	if seg&segC != 0 {
		put(x+2, y+2)
		put(x+2, y+3)
		put(x+2, y+4)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
