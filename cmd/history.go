package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/timesninja/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished games ranked by score",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 0, "Limit the number of games shown (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	games, err := st.EventRepo().ListGames(context.Background())
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}
	if len(games) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}
	if limit > 0 && len(games) > limit {
		games = games[:limit]
	}

	fmt.Printf("%-4s %-6s %-8s %-8s %-5s %s\n", "#", "SCORE", "LEVEL", "CORRECT", "ACC", "PLAYED")
	for i, g := range games {
		fmt.Printf("%-4d %-6d %-8s %2d/%-5d %3d%%  %s\n",
			i+1, g.Score, g.Level, g.CorrectCount, g.TotalQuestions,
			g.Accuracy, g.Timestamp.Format("Jan 02, 2006 15:04"))
	}
	return nil
}
