package pong

import (
	"testing"

	"github.com/tavrin/tui-pong/internal/core"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.DefaultConfig())
	return g
}

func stepIdle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewMultiInputFrame())
	}
}

func TestWallBounceTop(t *testing.T) {
	g := newTestGame()
	g.ball = Ball{X: CourtWidth / 2, Y: 12, VX: 0, VY: -5}

	stepIdle(g, 1)

	if g.ball.VY <= 0 {
		t.Errorf("top wall should flip vy to positive, got %d", g.ball.VY)
	}
	if g.ball.Y != BallSize/2 {
		t.Errorf("ball should be clamped to y=%d, got %d", BallSize/2, g.ball.Y)
	}
}

func TestWallBounceBottom(t *testing.T) {
	g := newTestGame()
	g.ball = Ball{X: CourtWidth / 2, Y: CourtHeight - 12, VX: 0, VY: 5}

	stepIdle(g, 1)

	if g.ball.VY >= 0 {
		t.Errorf("bottom wall should flip vy to negative, got %d", g.ball.VY)
	}
	if g.ball.Y != CourtHeight-BallSize/2 {
		t.Errorf("ball should be clamped to y=%d, got %d", CourtHeight-BallSize/2, g.ball.Y)
	}
}

func TestLeftPaddleBounce(t *testing.T) {
	g := newTestGame()
	// Left paddle is centered: y in [250, 350]. Approach inside that band.
	g.ball = Ball{X: g.left.Right() + BallSize/2 + 3, Y: 300, VX: -5, VY: 0}

	stepIdle(g, 1)

	if g.ball.VX <= 0 {
		t.Errorf("paddle hit should flip vx to positive, got %d", g.ball.VX)
	}
	if g.ball.Left() != g.left.Right() {
		t.Errorf("ball left edge should sit on the paddle face: edge=%d face=%d",
			g.ball.Left(), g.left.Right())
	}
	if g.ball.VY != 0 {
		t.Errorf("flat bounce must not change vy, got %d", g.ball.VY)
	}
	if g.scoreLeft != 0 || g.scoreRight != 0 {
		t.Error("a paddle bounce must not score")
	}
}

func TestRightPaddleBounce(t *testing.T) {
	g := newTestGame()
	g.ball = Ball{X: g.right.X - BallSize/2 - 3, Y: 300, VX: 5, VY: 0}

	stepIdle(g, 1)

	if g.ball.VX >= 0 {
		t.Errorf("paddle hit should flip vx to negative, got %d", g.ball.VX)
	}
	if g.ball.Right() != g.right.X {
		t.Errorf("ball right edge should sit on the paddle face: edge=%d face=%d",
			g.ball.Right(), g.right.X)
	}
}

func TestPaddleBounceClosedInterval(t *testing.T) {
	// Touching either paddle end counts as a hit.
	for _, y := range []int{250, 350} {
		g := newTestGame()
		g.ball = Ball{X: g.left.Right() + BallSize/2 + 3, Y: y, VX: -3, VY: 0}

		stepIdle(g, 1)

		if g.ball.VX <= 0 {
			t.Errorf("y=%d: touching the paddle end should bounce, vx=%d", y, g.ball.VX)
		}
	}

	// One unit past the end misses.
	g := newTestGame()
	g.ball = Ball{X: g.left.Right() + BallSize/2 + 3, Y: 351, VX: -3, VY: 0}
	stepIdle(g, 1)
	if g.ball.VX > 0 {
		t.Error("y one unit past the paddle end should not bounce")
	}
}

func TestScoringLeftExit(t *testing.T) {
	g := newTestGame()
	// y well outside the centered paddle's band so the exit is clean.
	g.ball = Ball{X: 4, Y: 450, VX: -5, VY: 0}

	stepIdle(g, 1)

	if g.scoreRight != 1 {
		t.Errorf("left exit should give the right side one point, got %d", g.scoreRight)
	}
	if g.scoreLeft != 0 {
		t.Errorf("left exit must leave the left score unchanged, got %d", g.scoreLeft)
	}
	if g.ball.X != CourtWidth/2 || g.ball.Y != CourtHeight/2 {
		t.Errorf("ball should be recentered after a non-terminal point, got (%d, %d)",
			g.ball.X, g.ball.Y)
	}
	if g.ball.VX != InitialBallVX || g.ball.VY != InitialBallVY {
		t.Errorf("ball should carry the serve vector (%d, %d), got (%d, %d)",
			InitialBallVX, InitialBallVY, g.ball.VX, g.ball.VY)
	}
}

func TestScoringRightExit(t *testing.T) {
	g := newTestGame()
	g.ball = Ball{X: CourtWidth - 4, Y: 450, VX: 5, VY: 0}

	stepIdle(g, 1)

	if g.scoreLeft != 1 {
		t.Errorf("right exit should give the left side one point, got %d", g.scoreLeft)
	}
	if g.scoreRight != 0 {
		t.Errorf("right exit must leave the right score unchanged, got %d", g.scoreRight)
	}
}

func TestBallResetDeterminism(t *testing.T) {
	states := []Ball{
		{X: -3, Y: 17, VX: -5, VY: 3},
		{X: 912, Y: 599, VX: 5, VY: -3},
		{X: 0, Y: 0, VX: 0, VY: 0},
	}

	for _, b := range states {
		b.Reset()
		want := Ball{X: CourtWidth / 2, Y: CourtHeight / 2, VX: InitialBallVX, VY: InitialBallVY}
		if b != want {
			t.Errorf("Reset produced %+v, expected %+v", b, want)
		}
	}
}

func TestBallResetKeepsScoresAndPaddles(t *testing.T) {
	g := newTestGame()
	g.scoreLeft = 3
	g.scoreRight = 7
	g.left.Y = 10
	g.right.Y = 480

	g.ball.Reset()

	if g.scoreLeft != 3 || g.scoreRight != 7 {
		t.Error("ball reset must not touch scores")
	}
	if g.left.Y != 10 || g.right.Y != 480 {
		t.Error("ball reset must not touch paddle positions")
	}
}

// The reference rally: 800x600 court, paddle height 100, ball size 20, ball
// at (400,300) moving (-5,3) with both paddles centered and idle. The ball
// drifts below the left paddle and exits; the right side scores and the
// serve restores (400,300,+5,+3).
func TestIdleRallyLeftExit(t *testing.T) {
	g := newTestGame()
	g.ball = Ball{X: 400, Y: 300, VX: -5, VY: 3}

	for i := 0; i < 200 && g.scoreRight == 0; i++ {
		stepIdle(g, 1)
	}

	if g.scoreRight != 1 {
		t.Fatalf("expected the right side to score exactly once, got %d", g.scoreRight)
	}
	if g.scoreLeft != 0 {
		t.Errorf("left score should stay 0, got %d", g.scoreLeft)
	}

	want := Ball{X: 400, Y: 300, VX: 5, VY: 3}
	if g.ball != want {
		t.Errorf("after the point the ball should be %+v, got %+v", want, g.ball)
	}
}
