package pong

import (
	"strings"
	"testing"

	"github.com/tavrin/tui-pong/internal/core"
)

func TestDigitSegments(t *testing.T) {
	s := core.NewScreen(10, 10)

	// 8 lights every segment: the full 3x5 outline plus the middle bar.
	drawDigit(s, 1, 1, 8)
	for _, y := range []int{1, 3, 5} {
		for x := 1; x <= 3; x++ {
			if s.Get(x, y) != PaddleChar {
				t.Errorf("digit 8: expected lit cell at (%d, %d)", x, y)
			}
		}
	}
	for _, y := range []int{2, 4} {
		if s.Get(1, y) != PaddleChar || s.Get(3, y) != PaddleChar {
			t.Errorf("digit 8: expected lit verticals at row %d", y)
		}
		if s.Get(2, y) == PaddleChar {
			t.Errorf("digit 8: center of row %d should be empty", y)
		}
	}

	// 1 lights only the right-hand column.
	s.Clear()
	drawDigit(s, 1, 1, 1)
	for y := 1; y <= 5; y++ {
		if s.Get(3, y) != PaddleChar {
			t.Errorf("digit 1: expected lit cell at (3, %d)", y)
		}
		if s.Get(1, y) == PaddleChar {
			t.Errorf("digit 1: left column should be empty at row %d", y)
		}
	}
}

func TestRenderDrawsEntities(t *testing.T) {
	g := newTestGame()
	s := core.NewScreen(80, 24)

	g.Render(s)

	out := s.String()
	if !strings.ContainsRune(out, BallChar) {
		t.Error("render should draw the ball")
	}
	if !strings.ContainsRune(out, PaddleChar) {
		t.Error("render should draw the paddles")
	}
	if !strings.ContainsRune(out, NetChar) {
		t.Error("render should draw the net")
	}

	// Ball starts at the court center and maps to the screen center.
	cell := s.GetCell(40, 12)
	if cell.Rune != BallChar {
		t.Errorf("ball should render at the screen center, found %q", cell.Rune)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame()
	g.gameOver = true
	g.winner = core.Player1
	s := core.NewScreen(80, 24)

	g.Render(s)

	if !strings.Contains(s.String(), "Player 1 WINS!") {
		t.Error("game over render should announce the winner")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame()
	s := core.NewScreen(1, 1)

	// Must not panic on degenerate sizes.
	g.Render(s)
}
