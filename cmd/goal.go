package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smarted/studykit/internal/progress"
	"github.com/smarted/studykit/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Set and track a weekly study goal",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <description>",
	Short: "Set the weekly goal, replacing any current one",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, _ := cmd.Flags().GetFloat64("hours")
		goal := progress.WeeklyGoal{
			Description: strings.TrimSpace(strings.Join(args, " ")),
			TotalHours:  hours,
		}
		if err := progress.ValidateWeeklyGoal(goal); err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.ProgressRepo().SetWeeklyGoal(cmd.Context(), goal); err != nil {
			return err
		}
		fmt.Printf("Weekly goal set: %s (%sh)\n", goal.Description, formatHours(goal.TotalHours))
		return nil
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show this week's progress toward the goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		repo := e.store.ProgressRepo()
		goal, err := repo.WeeklyGoal(cmd.Context())
		if errors.Is(err, store.ErrNotFound) {
			fmt.Println(`No weekly goal yet. Set one with: studykit goal set "Study Math" --hours 5`)
			return nil
		}
		if err != nil {
			return err
		}
		data, err := repo.Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(formatGoal(progress.GoalProgressOf(goal, data.StudyHistory, time.Now())))
		return nil
	},
}

var goalClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the weekly goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.ProgressRepo().ClearWeeklyGoal(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Weekly goal cleared.")
		return nil
	},
}

func formatGoal(gp progress.GoalProgress) string {
	status := fmt.Sprintf("%.0f%%", gp.Percent)
	if gp.Done() {
		status = "done"
	}
	return fmt.Sprintf("%s\n%s / %sh this week (since %s), %s",
		gp.Goal.Description,
		formatHours(gp.CompletedHours), formatHours(gp.Goal.TotalHours),
		gp.WeekStart, status)
}

// formatHours prints one decimal, dropping a trailing ".0".
func formatHours(h float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", h), ".0")
}

func init() {
	goalSetCmd.Flags().Float64("hours", 5, "Target study hours for the week")

	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalClearCmd)
}
