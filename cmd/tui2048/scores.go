package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs and the best score.

Examples:
  tui2048 scores
  tui2048 scores --db ./2048.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	sess, err := openSession(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer sess.close()

	// Get top scores
	scores, err := sess.db.TopScores(t2048.GameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tui2048 play' to set the first high score!")
		return
	}

	rows := make([][]string, len(scores))
	for i, entry := range scores {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(entry.Score),
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	fmt.Println(table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Score", "Date").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render())

	// Show best score and totals
	fmt.Println()
	fmt.Printf("Best: %d\n", sess.bestScore())
	if stats, err := sess.db.GetGameStats(t2048.GameID); err == nil {
		fmt.Printf("Games: %d  Average: %.0f\n", stats.GamesCount, stats.AvgScore)
	}
}
