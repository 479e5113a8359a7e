package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studykit",
	Short: "AI study assistant for the terminal",
	Long: "studykit is a terminal study assistant: ask questions about your notes, generate quizzes,\n" +
		"summaries and flashcards, run focus sessions and track your progress.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYKIT_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/studykit/config.yaml)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(feynmanCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
