package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smarted/studykit/internal/app"
	"github.com/smarted/studykit/internal/coach"
	"github.com/smarted/studykit/internal/screens/chat"
)

var coachCmd = &cobra.Command{
	Use:   "coach [message]",
	Short: "Chat with the study coach",
	Long:  "Without arguments, opens an interactive chat. With a message, prints a single reply.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		provider, err := e.provider(ctx)
		if err != nil {
			return err
		}
		svc := coach.NewService(provider, coach.DefaultConfig())

		if len(args) == 0 {
			return app.RunScreen(chat.New("Study Coach", svc.Chat))
		}
		reply, err := svc.Chat(ctx, nil, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("coach: %w", err)
		}
		fmt.Println(reply)
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a weekly study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetStringSlice("days")
		goals, _ := cmd.Flags().GetString("goals")
		ctx := cmd.Context()

		if _, err := coach.NormalizeDays(days); err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		provider, err := e.provider(ctx)
		if err != nil {
			return err
		}
		plan, err := coach.NewService(provider, coach.DefaultConfig()).StudyPlan(ctx, days, goals)
		if err != nil {
			return fmt.Errorf("plan: %w", err)
		}

		fmt.Printf("%-10s  %-8s  %-10s  %s\n", "Day", "Time", "Duration", "Task")
		fmt.Println(strings.Repeat("─", 72))
		for _, it := range plan.Items {
			fmt.Printf("%-10s  %-8s  %-10s  %s\n", it.Day, it.Time, it.Duration, it.Task)
		}
		return nil
	},
}

var feynmanCmd = &cobra.Command{
	Use:   "feynman <concept>",
	Short: "Get feedback on a plain-language explanation of a concept",
	Long:  "Explain the concept as if teaching a child. The explanation is read from --explanation or stdin.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		explanation, _ := cmd.Flags().GetString("explanation")
		ctx := cmd.Context()

		if explanation == "" {
			fmt.Fprintln(os.Stderr, "Type your explanation, then press Ctrl+D:")
			b, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
			if err != nil {
				return fmt.Errorf("read explanation: %w", err)
			}
			explanation = string(b)
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		provider, err := e.provider(ctx)
		if err != nil {
			return err
		}
		concept := strings.Join(args, " ")
		ev, err := coach.NewService(provider, coach.DefaultConfig()).EvaluateFeynman(ctx, concept, explanation)
		if err != nil {
			return fmt.Errorf("feynman: %w", err)
		}

		fmt.Printf("Clarity: %d/10\n\n", ev.ClarityScore)
		fmt.Println(ev.Feedback)
		if len(ev.WeakSpots) > 0 {
			fmt.Println("\nWeak spots")
			for _, w := range ev.WeakSpots {
				fmt.Printf("• %s\n", w)
			}
		}
		fmt.Printf("\nTextbook definition\n%s\n", ev.TextbookDefinition)
		return nil
	},
}

func init() {
	planCmd.Flags().StringSlice("days", []string{"Mon", "Wed", "Fri"}, "Days available to study")
	planCmd.Flags().String("goals", "", "What you want to achieve this week")
	_ = planCmd.MarkFlagRequired("goals")

	feynmanCmd.Flags().String("explanation", "", "Your explanation (default: read from stdin)")
}
