package tui

import (
	"testing"

	"github.com/tavrin/tui-pong/internal/config"
	"github.com/tavrin/tui-pong/internal/core"
)

func TestKeyMapperDefaults(t *testing.T) {
	km := NewKeyMapper(config.Default().Keys)

	tests := []struct {
		key    string
		player core.PlayerID
		action core.Action
	}{
		{"w", core.Player1, core.ActionUp},
		{"s", core.Player1, core.ActionDown},
		{"up", core.Player2, core.ActionUp},
		{"down", core.Player2, core.ActionDown},
		{"p", core.Player1, core.ActionPause},
		{"r", core.Player1, core.ActionRestart},
	}

	for _, tt := range tests {
		player, action, isQuit := km.Map(tt.key)
		if isQuit {
			t.Errorf("Map(%q) unexpectedly reported quit", tt.key)
		}
		if player != tt.player || action != tt.action {
			t.Errorf("Map(%q) = (%v, %v), want (%v, %v)", tt.key, player, action, tt.player, tt.action)
		}
	}
}

func TestKeyMapperQuit(t *testing.T) {
	km := NewKeyMapper(config.Default().Keys)

	for _, key := range []string{"q", "ctrl+c"} {
		if _, _, isQuit := km.Map(key); !isQuit {
			t.Errorf("Map(%q) should report quit", key)
		}
	}
}

func TestKeyMapperUnboundKey(t *testing.T) {
	km := NewKeyMapper(config.Default().Keys)

	player, action, isQuit := km.Map("z")
	if isQuit || player != core.PlayerNone || action != core.ActionNone {
		t.Errorf("Map(unbound) = (%v, %v, %v), want (PlayerNone, ActionNone, false)", player, action, isQuit)
	}
}

func TestMapToFrameSetsPerPlayerActions(t *testing.T) {
	km := NewKeyMapper(config.Default().Keys)
	frame := core.NewMultiInputFrame()

	if km.MapToFrame("w", &frame) {
		t.Fatal("w should not be a quit key")
	}
	if km.MapToFrame("down", &frame) {
		t.Fatal("down should not be a quit key")
	}

	if !frame.Player(core.Player1).Has(core.ActionUp) {
		t.Error("w should set ActionUp for Player 1")
	}
	if frame.Player(core.Player1).Has(core.ActionDown) {
		t.Error("Player 1 should not have ActionDown")
	}
	if !frame.Player(core.Player2).Has(core.ActionDown) {
		t.Error("down should set ActionDown for Player 2")
	}
}

func TestMapToFrameQuit(t *testing.T) {
	km := NewKeyMapper(config.Default().Keys)
	frame := core.NewMultiInputFrame()

	if !km.MapToFrame("q", &frame) {
		t.Fatal("q should be a quit key")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not land in the input frame")
	}
}

func TestKeyMapperCustomBindings(t *testing.T) {
	keys := config.Default().Keys
	keys.LeftUp = []string{"a"}
	keys.LeftDown = []string{"z"}
	km := NewKeyMapper(keys)

	player, action, _ := km.Map("a")
	if player != core.Player1 || action != core.ActionUp {
		t.Errorf("Map(a) = (%v, %v), want (Player1, ActionUp)", player, action)
	}
	if _, action, _ := km.Map("w"); action != core.ActionNone {
		t.Error("rebinding should drop the default key")
	}
}
