package pong

import "github.com/tavrin/tui-pong/internal/core"

// Paddle is one side's paddle in court units. X is fixed per side for the
// whole session; only Y moves.
type Paddle struct {
	X, Y int
	W, H int
}

// newPaddle creates a paddle at the given x, vertically centered.
func newPaddle(x int) Paddle {
	return Paddle{
		X: x,
		Y: (CourtHeight - PaddleHeight) / 2,
		W: PaddleWidth,
		H: PaddleHeight,
	}
}

// Step advances the paddle by one tick based on its intent flags.
// Up wins when both intents are held. The result is always clamped to
// [0, CourtHeight-H].
func (p *Paddle) Step(up, down bool) {
	if up {
		p.Y = core.Max(0, p.Y-PaddleSpeed)
	} else if down {
		p.Y = core.Min(CourtHeight-p.H, p.Y+PaddleSpeed)
	}
}

// Right returns the x-coordinate of the paddle's right edge.
func (p Paddle) Right() int {
	return p.X + p.W
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}
