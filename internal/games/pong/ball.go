package pong

// Ball is the ball's center position and velocity, all in court units per
// tick. Velocity magnitude never changes during play; bounces only flip
// component signs.
type Ball struct {
	X, Y   int
	VX, VY int
}

// Reset recenters the ball and restores the fixed serve vector. It is the
// same every time: never randomized and independent of prior ball state.
// Scores and paddle positions are untouched.
func (b *Ball) Reset() {
	b.X = CourtWidth / 2
	b.Y = CourtHeight / 2
	b.VX = InitialBallVX
	b.VY = InitialBallVY
}

// Integrate moves the ball by its velocity.
func (b *Ball) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}

// Left returns the x-coordinate of the ball's left edge.
func (b Ball) Left() int {
	return b.X - BallSize/2
}

// Right returns the x-coordinate of the ball's right edge.
func (b Ball) Right() int {
	return b.X + BallSize/2
}
