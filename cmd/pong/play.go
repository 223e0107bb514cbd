package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tavrin/tui-pong/internal/core"
	"github.com/tavrin/tui-pong/internal/platform/tui"
	"github.com/tavrin/tui-pong/internal/registry"
	"github.com/tavrin/tui-pong/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local two-player match",
	Long: `Start a local match on this terminal. Both players share the keyboard.

Controls (defaults, see config to rebind):
  W/S        - Player 1 paddle
  Up/Down    - Player 2 paddle
  P          - Pause
  R          - Restart (after a match ends)
  Q/Ctrl+C   - Quit

Examples:
  pong play
  pong play --record
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the match and save it as a replay")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	game, err := registry.Create("pong")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	keys := tui.NewKeyMapper(cfg.Keys)

	if !flagRecord {
		if runErr := tui.Run(game, rt, keys); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if runErr := tui.RunRecorded(game, rt, keys, store); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
