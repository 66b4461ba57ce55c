package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagKeepPlaying bool
	flagRestart     bool
)

var moveCmd = &cobra.Command{
	Use:   "move <direction>...",
	Short: "Apply moves to the saved game without the UI",
	Long: `Apply one or more moves to the saved game and print the board.
A new game is started when there is no saved game.

Directions: up, right, down, left, or the WASD (w/a/s/d) and vim
(k/h/j/l) letters. An unknown direction aborts before any move.

Examples:
  tui2048 move left
  tui2048 move up up right down
  tui2048 move --keep-playing left
  tui2048 move --restart`,
	Args: cobra.ArbitraryArgs,
	Run:  runMove,
}

func init() {
	moveCmd.Flags().BoolVar(&flagKeepPlaying, "keep-playing", false, "Continue past the win tile before moving")
	moveCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new game before moving")
}

func runMove(_ *cobra.Command, args []string) {
	// Parse everything first so a bad direction leaves the game untouched.
	dirs := make([]t2048.Direction, 0, len(args))
	for _, arg := range args {
		dir, err := t2048.ParseDirection(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dirs = append(dirs, dir)
	}

	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess, err := openSession(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer sess.close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Store = sess.games

	m := t2048.NewManager(opts)

	if flagRestart {
		recordScore(sess, m.Score())
		m.Restart()
	}
	if flagKeepPlaying && !keepPlayingIfWon(m) {
		logger.Debug("keep playing ignored, game not won")
	}

	moved := 0
	for _, dir := range dirs {
		res := m.Move(dir)
		if !res.Moved {
			logger.Debug("move had no effect", "direction", dir)
			continue
		}
		moved++
		if res.Won {
			fmt.Printf("Reached %d!\n", m.WinValue())
		}
	}

	recordScore(sess, m.Score())
	logger.Info("moves applied", "requested", len(dirs), "moved", moved, "score", m.Score())

	printGame(os.Stdout, m)
}

// keepPlayingIfWon continues a won game past the win tile. Games that have
// not been won are left alone so a later win still stops them.
func keepPlayingIfWon(m *t2048.Manager) bool {
	if !m.Won() || m.KeepPlayingEnabled() {
		return false
	}
	m.KeepPlaying()
	return true
}

// recordScore stores the run's score, logging failures.
func recordScore(sess *session, score int) {
	if score <= 0 {
		return
	}
	if err := sess.games.RecordScore(score); err != nil {
		logger.Warn("could not record score", "score", score, "error", err)
	}
}
