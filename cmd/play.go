package cmd

import (
	"fmt"

	"github.com/abhisek/timesninja/internal/game"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		levelKey, _ := cmd.Flags().GetString("level")
		level, ok := game.LevelByKey(levelKey)
		if !ok {
			return fmt.Errorf("unknown level %q: must be easy, medium, or ninja", levelKey)
		}
		offline, _ := cmd.Flags().GetBool("offline")
		return runAppWith(cmd, level, offline)
	},
}

func init() {
	playCmd.Flags().String("level", game.DefaultLevel.Key, "Difficulty level: easy, medium, or ninja")
	playCmd.Flags().Bool("offline", false, "Use the built-in question bank even when an LLM API key is set")
}
