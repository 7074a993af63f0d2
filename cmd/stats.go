package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/abhisek/timesninja/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics and hardest facts",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
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

	printLevelStats(os.Stdout, games)
	fmt.Println()
	printHardestFacts(os.Stdout, games)
	return nil
}

type levelStats struct {
	level   string
	games   int
	best    int
	correct int
	total   int
}

// printLevelStats writes one aggregate row per level, in first-seen order.
func printLevelStats(w io.Writer, games []store.GameRecord) {
	byLevel := map[string]*levelStats{}
	var order []string
	for _, g := range games {
		s, ok := byLevel[g.Level]
		if !ok {
			s = &levelStats{level: g.Level}
			byLevel[g.Level] = s
			order = append(order, g.Level)
		}
		s.games++
		if g.Score > s.best {
			s.best = g.Score
		}
		s.correct += g.CorrectCount
		s.total += g.TotalQuestions
	}

	fmt.Fprintf(w, "%-8s %-6s %-6s %s\n", "LEVEL", "GAMES", "BEST", "ACCURACY")
	for _, level := range order {
		s := byLevel[level]
		acc := 0
		if s.total > 0 {
			acc = s.correct * 100 / s.total
		}
		fmt.Fprintf(w, "%-8s %-6d %-6d %3d%%\n", s.level, s.games, s.best, acc)
	}
}

type factMisses struct {
	a, b   int
	misses int
	seen   int
}

// printHardestFacts ranks facts by miss count across all stored games.
func printHardestFacts(w io.Writer, games []store.GameRecord) {
	byFact := map[[2]int]*factMisses{}
	for _, g := range games {
		for _, o := range g.Outcomes {
			key := [2]int{o.A, o.B}
			f, ok := byFact[key]
			if !ok {
				f = &factMisses{a: o.A, b: o.B}
				byFact[key] = f
			}
			f.seen++
			if !o.Correct {
				f.misses++
			}
		}
	}

	var facts []*factMisses
	for _, f := range byFact {
		if f.misses > 0 {
			facts = append(facts, f)
		}
	}
	if len(facts) == 0 {
		fmt.Fprintln(w, "No missed facts. Nice.")
		return
	}

	sort.Slice(facts, func(i, j int) bool {
		if facts[i].misses != facts[j].misses {
			return facts[i].misses > facts[j].misses
		}
		return facts[i].a*facts[i].b > facts[j].a*facts[j].b
	})
	if len(facts) > 10 {
		facts = facts[:10]
	}

	fmt.Fprintln(w, "HARDEST FACTS")
	for _, f := range facts {
		fmt.Fprintf(w, "  %2d × %-2d  missed %d of %d\n", f.a, f.b, f.misses, f.seen)
	}
}
