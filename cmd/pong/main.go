// pong is a two-player Pong for the terminal.
//
// Usage:
//
//	pong play                - Play a local two-player match
//	pong serve               - Start SSH server for remote play
//	pong replays             - Browse and watch saved replays
//	pong replay <id>         - Watch a specific replay
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--db <path>      - Path to the replay database
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tavrin/tui-pong/internal/config"

	// Import the game to register it
	_ "github.com/tavrin/tui-pong/internal/games/pong"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-player Pong in your terminal",
	Long: `Pong is a terminal rendition of the classic two-player game.
Player 1 uses W/S, Player 2 uses the arrow keys. First to 10 wins.

Available commands:
  play     - Play a local match (--record to save a replay)
  serve    - Start SSH server for remote play
  replays  - Browse and watch saved replays
  replay   - Watch a specific replay by ID

Examples:
  pong play
  pong play --record
  pong serve --ssh :2222
  pong replays
  pong replay 3`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to replay database (defaults to config value)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the platform config and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Database = flagDBPath
	}
	return cfg
}
