// tui2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	tui2048                  - Start menu, then play (same as "play")
//	tui2048 play             - Start menu, then play
//	tui2048 move <dir>...    - Apply moves to the saved game without the UI
//	tui2048 show             - Print the saved game
//	tui2048 scores           - Show high scores
//	tui2048 reset            - Discard the saved game
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible tile spawns
//	--db <path>      - Set database path (default: ~/.arcade/2048.db)
//	--config <path>  - Use a custom game config YAML
//	--size <n>       - Override the board size from the config
//	--log <path>     - Set log file (default: ~/.arcade/2048.log, "" disables)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagSize    int
	flagLogPath string
	flagDebug   bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	closeLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `2048 is a sliding-tile puzzle. Slide the board in one of four directions;
equal tiles that collide merge into their sum. Reach the 2048 tile to win,
keep going for a higher score.

Available commands:
  play     - Start menu and game (default)
  move     - Apply moves to the saved game without the UI
  show     - Print the saved game
  scores   - View high scores
  reset    - Discard the saved game

Examples:
  tui2048
  tui2048 --size 5
  tui2048 move left up up
  tui2048 scores`,
	PersistentPreRunE: setupLogger,
	Run:               runPlay,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/2048.db", "Path to game database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/2048.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// setupLogger opens the log file. The terminal belongs to the UI, so logs
// never go to stderr.
func setupLogger(_ *cobra.Command, _ []string) error {
	if flagLogPath == "" {
		return nil
	}

	path, err := expandHome(flagLogPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "2048",
		Level:           level,
	})
	return nil
}

func closeLogger() {
	if logFile != nil {
		logFile.Close()
	}
}

// gameOptions builds the engine options from the config file and flags.
// Rand and Store are left for the caller.
func gameOptions() (t2048.Options, error) {
	cfg, err := config.Load2048(flagConfig)
	if err != nil {
		return t2048.Options{}, err
	}
	if flagSize > 0 {
		cfg.Board.Size = flagSize
		if err := cfg.Validate(); err != nil {
			return t2048.Options{}, fmt.Errorf("--size: %w", err)
		}
	}

	return t2048.Options{
		Size:            cfg.Board.Size,
		StartTiles:      cfg.Board.StartTiles,
		FourProbability: cfg.Spawn.FourProbability,
		WinValue:        cfg.WinValue,
		Logger:          logger,
	}, nil
}
