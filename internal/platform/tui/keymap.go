package tui

import (
	"github.com/tavrin/tui-pong/internal/config"
	"github.com/tavrin/tui-pong/internal/core"
)

// binding is the target of a single key: which player's frame it lands in
// and which action it sets. Session-level actions (pause, restart) are
// carried on Player1's frame; the game treats them as coming from either
// player.
type binding struct {
	player core.PlayerID
	action core.Action
}

// KeyMapper translates Bubble Tea key names to per-player game actions.
// Bindings come from the platform config, which centralizes them and makes
// them testable.
type KeyMapper struct {
	bindings map[string]binding
	quit     map[string]bool
}

// NewKeyMapper creates a key mapper from the given bindings.
func NewKeyMapper(keys config.KeyBindings) *KeyMapper {
	km := &KeyMapper{
		bindings: make(map[string]binding),
		quit:     make(map[string]bool),
	}

	add := func(names []string, player core.PlayerID, action core.Action) {
		for _, name := range names {
			km.bindings[name] = binding{player: player, action: action}
		}
	}
	add(keys.LeftUp, core.Player1, core.ActionUp)
	add(keys.LeftDown, core.Player1, core.ActionDown)
	add(keys.RightUp, core.Player2, core.ActionUp)
	add(keys.RightDown, core.Player2, core.ActionDown)
	add(keys.Pause, core.Player1, core.ActionPause)
	add(keys.Restart, core.Player1, core.ActionRestart)

	for _, name := range keys.Quit {
		km.quit[name] = true
	}

	return km
}

// Map translates a key name to its binding.
// Returns isQuit=true for quit keys; action is ActionNone for unbound keys.
func (km *KeyMapper) Map(key string) (player core.PlayerID, action core.Action, isQuit bool) {
	if km.quit[key] {
		return core.PlayerNone, core.ActionQuit, true
	}
	if b, ok := km.bindings[key]; ok {
		return b.player, b.action, false
	}
	return core.PlayerNone, core.ActionNone, false
}

// MapToFrame updates a multi-input frame based on a key name.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapToFrame(key string, frame *core.MultiInputFrame) bool {
	player, action, isQuit := km.Map(key)
	if isQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(player, action)
	}
	return false
}
