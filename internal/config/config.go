// Package config provides YAML-based platform configuration: key bindings
// and the replay database location. Court and physics constants are fixed
// at build time and deliberately not configurable here.
package config

// Config contains all platform configuration.
type Config struct {
	Keys     KeyBindings `yaml:"keys"`
	Database string      `yaml:"database"`
}

// KeyBindings maps semantic actions to the keys that trigger them, using
// Bubble Tea key names ("w", "up", "ctrl+c", ...).
type KeyBindings struct {
	LeftUp    []string `yaml:"left_up"`
	LeftDown  []string `yaml:"left_down"`
	RightUp   []string `yaml:"right_up"`
	RightDown []string `yaml:"right_down"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Quit      []string `yaml:"quit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Keys: KeyBindings{
			LeftUp:    []string{"w"},
			LeftDown:  []string{"s"},
			RightUp:   []string{"up"},
			RightDown: []string{"down"},
			Pause:     []string{"p"},
			Restart:   []string{"r"},
			Quit:      []string{"q", "ctrl+c"},
		},
		Database: "~/.pong/replays.db",
	}
}

// Normalize fills any binding list a config file left empty with the
// default, so a partial file cannot produce an unplayable game.
func (c *Config) Normalize() {
	def := Default()
	fill := func(dst *[]string, src []string) {
		if len(*dst) == 0 {
			*dst = src
		}
	}
	fill(&c.Keys.LeftUp, def.Keys.LeftUp)
	fill(&c.Keys.LeftDown, def.Keys.LeftDown)
	fill(&c.Keys.RightUp, def.Keys.RightUp)
	fill(&c.Keys.RightDown, def.Keys.RightDown)
	fill(&c.Keys.Pause, def.Keys.Pause)
	fill(&c.Keys.Restart, def.Keys.Restart)
	fill(&c.Keys.Quit, def.Keys.Quit)
	if c.Database == "" {
		c.Database = def.Database
	}
}
