// Package pong implements a two-player Pong match on a fixed 800x600 court.
// Player 1 controls the left paddle, Player 2 the right one. All positions
// and velocities are integers in court units; the render layer scales the
// court to the terminal.
package pong

import (
	"github.com/tavrin/tui-pong/internal/core"
	"github.com/tavrin/tui-pong/internal/registry"
)

// Court and entity constants, fixed at build time.
const (
	CourtWidth  = 800
	CourtHeight = 600

	PaddleWidth  = 10
	PaddleHeight = 100
	PaddleMargin = 20 // Distance from the court edge
	PaddleSpeed  = 6  // Court units per tick

	BallSize      = 20
	InitialBallVX = 5
	InitialBallVY = 3

	WinScore = 10
)

// Game implements the Pong simulation.
type Game struct {
	left  Paddle
	right Paddle
	ball  Ball

	scoreLeft  int
	scoreRight int

	gameOver bool
	paused   bool
	winner   core.PlayerID

	runtime   core.RuntimeConfig
	tickCount int
}

// New creates a new Pong game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset starts a fresh session: paddles centered at their fixed x, ball
// served from the court center, scores zeroed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.left = newPaddle(PaddleMargin)
	g.right = newPaddle(CourtWidth - PaddleMargin - PaddleWidth)
	g.ball.Reset()

	g.scoreLeft = 0
	g.scoreRight = 0
	g.gameOver = false
	g.paused = false
	g.winner = core.PlayerNone
	g.tickCount = 0
}

// Step advances the game by one tick. Once the match is over the entities
// and scores are frozen; rendering and input polling continue outside.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	p1 := in.Player(core.Player1)
	g.left.Step(p1.Has(core.ActionUp), p1.Has(core.ActionDown))

	p2 := in.Player(core.Player2)
	g.right.Step(p2.Has(core.ActionUp), p2.Has(core.ActionDown))

	g.updateBall()

	return core.StepResult{State: g.State()}
}

// updateBall integrates the ball and resolves collisions and scoring.
// The order is fixed: walls first, then paddles, then the scoring edges.
// Wall checks are independent ifs; the paddle/scoring chain picks at most
// one outcome per tick, left before right.
func (g *Game) updateBall() {
	b := &g.ball
	b.Integrate()

	if b.Y <= BallSize/2 {
		b.VY = -b.VY
		b.Y = BallSize / 2
	}
	if b.Y >= CourtHeight-BallSize/2 {
		b.VY = -b.VY
		b.Y = CourtHeight - BallSize/2
	}

	switch {
	case b.Left() <= g.left.Right() && b.Y >= g.left.Y && b.Y <= g.left.Y+g.left.H:
		// Touching either paddle edge counts as a hit. The ball is pinned
		// to the paddle face so the collision cannot re-trigger.
		b.VX = -b.VX
		b.X = g.left.Right() + BallSize/2

	case b.Right() >= g.right.X && b.Y >= g.right.Y && b.Y <= g.right.Y+g.right.H:
		b.VX = -b.VX
		b.X = g.right.X - BallSize/2

	case b.X <= 0:
		g.scoreRight++
		if g.scoreRight >= WinScore {
			g.gameOver = true
			g.winner = core.Player2
		} else {
			b.Reset()
		}

	case b.X >= CourtWidth:
		g.scoreLeft++
		if g.scoreLeft >= WinScore {
			g.gameOver = true
			g.winner = core.Player1
		} else {
			b.Reset()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		ScoreLeft:  g.scoreLeft,
		ScoreRight: g.scoreRight,
		GameOver:   g.gameOver,
		Paused:     g.paused,
		Winner:     g.winner,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
