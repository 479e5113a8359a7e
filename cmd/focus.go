package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smarted/studykit/internal/app"
	"github.com/smarted/studykit/internal/progress"
	focusscreen "github.com/smarted/studykit/internal/screens/focus"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Start a Pomodoro focus timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		cfg := focusConfig(e)
		if cmd.Flags().Changed("work") {
			cfg.WorkMinutes, _ = cmd.Flags().GetInt("work")
		}
		if cmd.Flags().Changed("break") {
			cfg.BreakMinutes, _ = cmd.Flags().GetInt("break")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return app.RunScreen(focusscreen.New(cfg, e.store.ProgressRepo()))
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage focus sessions",
}

var sessionLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a study session done away from the timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("minutes")
		rating, _ := cmd.Flags().GetString("rating")
		date, _ := cmd.Flags().GetString("date")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		s := progress.StudySession{
			Date:    orToday(date),
			Minutes: minutes,
			Rating:  progress.Rating(strings.ToLower(strings.TrimSpace(rating))),
		}
		if err := e.store.ProgressRepo().AddStudySession(cmd.Context(), s); err != nil {
			return err
		}
		fmt.Printf("Logged %s of %s focus on %s.\n", progress.FormatMinutes(s.Minutes), s.Rating, s.Date)
		return nil
	},
}

func init() {
	focusCmd.Flags().Int("work", 0, "Work block length in minutes (default from config)")
	focusCmd.Flags().Int("break", 0, "Break length in minutes (default from config)")

	sessionLogCmd.Flags().Int("minutes", 25, "Session length in minutes")
	sessionLogCmd.Flags().String("rating", string(progress.RatingDeep), "How it went: deep or distracted")
	sessionLogCmd.Flags().String("date", "", "Date as YYYY-MM-DD (default today)")

	sessionCmd.AddCommand(sessionLogCmd)
}
