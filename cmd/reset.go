package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/timesninja/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored games and events",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	if !force {
		fmt.Printf("This deletes all game history in %s. Type 'yes' to continue: ", dbPath)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := st.EventRepo().DeleteAll(context.Background()); err != nil {
		return fmt.Errorf("delete events: %w", err)
	}
	fmt.Println("All game history deleted.")
	return nil
}
