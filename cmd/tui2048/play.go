package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the menu and play",
	Long: `Start the game in interactive menu mode.

The menu offers to continue the saved game, start a new one or view
high scores. Quitting a game returns to the menu.

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  R                 - New game
  C/Enter           - Keep going after reaching 2048
  Ctrl+S            - Save a screenshot
  ?                 - Toggle full help
  Q/Ctrl+C          - Back to menu

Examples:
  tui2048 play
  tui2048 play --size 5
  tui2048 play --config ./my-2048.yaml --db ./2048.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess, err := openSession(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sess.close()

	if !sess.persistent() {
		fmt.Fprintf(os.Stderr, "Warning: could not open database %s, progress will not be saved\n", flagDBPath)
	}
	opts.Store = sess.games

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("session started", "size", opts.Size, "persistent", sess.persistent())

	// Menu loop
	for {
		saved := sess.hasSave()
		menuResult, err := tui.RunMenu(saved, sess.bestScore(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceScores:
			data, dataErr := sess.scoreboard()
			if dataErr != nil {
				logger.Warn("scoreboard incomplete", "error", dataErr)
			}
			goBack, sbErr := tui.RunScoreboard(data, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				return
			}
			if !goBack {
				return
			}
			continue

		case tui.ChoiceNewGame:
			if saved {
				if err := sess.games.ClearGameState(); err != nil {
					logger.Warn("could not discard saved game", "error", err)
				}
			}

		case tui.ChoiceContinue:
			// The engine restores the save on reset.

		default:
			return
		}

		game := t2048.NewGame(opts)
		if err := tui.Run(game, sess.games, cfg, logger); err != nil {
			sess.close()
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
	}
}
