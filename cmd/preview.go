package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/timesninja/internal/llm"
	"github.com/abhisek/timesninja/internal/questionbank"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated questions on stdin (no database)",
	Long: `Generate a session of questions and answer them on the command line.

This is a stateless developer tool. No database, no score, no events.
Useful for evaluating question quality and tuning the generation prompt.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().Bool("offline", false, "Use the built-in question bank instead of the LLM")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	offline, _ := cmd.Flags().GetBool("offline")

	ctx := context.Background()
	bank, err := previewBank(ctx, count, offline)
	if err != nil {
		return err
	}

	questions, err := bank.SessionQuestions(ctx, nil)
	if err != nil {
		return fmt.Errorf("generate questions: %w", err)
	}
	if len(questions) > count {
		questions = questions[:count]
	}

	fmt.Printf("Generated %d questions.\n\n", len(questions))
	scanner := bufio.NewScanner(os.Stdin)

	var correct int
	for i, q := range questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(questions))
		fmt.Println(q.Prompt())

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n == q.CorrectAnswer {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %d\n", q.CorrectAnswer)
		}
		if q.Hint != "" {
			fmt.Printf("Hint: %s\n", q.Hint)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(questions))
	return nil
}

// previewBank builds a bank without an event repo, so nothing is logged.
func previewBank(ctx context.Context, count int, offline bool) (questionbank.Bank, error) {
	if offline {
		return questionbank.NewLocalBank(questionbank.WithSessionSize(count)), nil
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("LLM provider: %w (or pass --offline)", err)
		}
		cfg = discovered
	}
	provider, err := llm.NewProvider(ctx, cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	bankCfg := questionbank.DefaultConfig()
	bankCfg.SessionSize = count
	return questionbank.NewLLMBank(provider, bankCfg), nil
}
