package pong

import "github.com/tavrin/tui-pong/internal/core"

// Snapshot is a read-only, all-integer record of the match state for one
// tick. The render layer, replays and tests consume it; the simulation is
// never mutated through it.
type Snapshot struct {
	Tick uint64

	BallX  int
	BallY  int
	BallVX int
	BallVY int

	LeftPaddleY  int
	RightPaddleY int

	ScoreLeft  int
	ScoreRight int

	GameOver bool
	Winner   core.PlayerID
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         uint64(g.tickCount), //nolint:gosec // tickCount is never negative
		BallX:        g.ball.X,
		BallY:        g.ball.Y,
		BallVX:       g.ball.VX,
		BallVY:       g.ball.VY,
		LeftPaddleY:  g.left.Y,
		RightPaddleY: g.right.Y,
		ScoreLeft:    g.scoreLeft,
		ScoreRight:   g.scoreRight,
		GameOver:     g.gameOver,
		Winner:       g.winner,
	}
}

// ApplySnapshot restores the match state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //nolint:gosec // ticks stay far below MaxInt
	g.ball.X = snap.BallX
	g.ball.Y = snap.BallY
	g.ball.VX = snap.BallVX
	g.ball.VY = snap.BallVY
	g.left.Y = snap.LeftPaddleY
	g.right.Y = snap.RightPaddleY
	g.scoreLeft = snap.ScoreLeft
	g.scoreRight = snap.ScoreRight
	g.gameOver = snap.GameOver
	g.winner = snap.Winner
}
