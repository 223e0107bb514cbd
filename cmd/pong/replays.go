package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tavrin/tui-pong/internal/config"
	"github.com/tavrin/tui-pong/internal/core"
	"github.com/tavrin/tui-pong/internal/platform/tui"
	"github.com/tavrin/tui-pong/internal/registry"
	"github.com/tavrin/tui-pong/internal/storage"
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse and watch saved replays",
	Long: `Open an interactive list of saved replays. Select one with Enter to
watch it, or delete it with D.

Examples:
  pong replays
  pong replays --db ./replays.db`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch a specific replay",
	Long: `Replay a recorded match by ID. Use 'pong replays' to find IDs.

Examples:
  pong replay 3`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplays(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	for {
		id, pickErr := tui.RunReplayPicker(store, width, height)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		if id == 0 {
			return
		}
		if watchErr := watchReplay(store, id, cfg.Keys); watchErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", watchErr)
			os.Exit(1)
		}
	}
}

func runReplay(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay ID %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if watchErr := watchReplay(store, id, cfg.Keys); watchErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", watchErr)
		os.Exit(1)
	}
}

// watchReplay fetches a recording and plays it back in the TUI.
func watchReplay(store *storage.Store, id int64, keys config.KeyBindings) error {
	rec, err := store.GetReplay(id)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	game, err := registry.Create("pong")
	if err != nil {
		return err
	}

	return tui.RunPlayback(game, rt, tui.NewKeyMapper(keys), rec)
}
