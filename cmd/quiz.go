package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/smarted/studykit/internal/app"
	"github.com/smarted/studykit/internal/progress"
	"github.com/smarted/studykit/internal/quiz"
	quizscreen "github.com/smarted/studykit/internal/screens/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate, take and record quizzes",
}

var quizGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a curriculum quiz for a grade and subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		subject, _ := cmd.Flags().GetString("subject")
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
		questions, err := quiz.NewService(provider, quiz.DefaultConfig()).Generate(ctx, grade, subject)
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}
		return deliverQuiz(cmd, e, questions, subject)
	},
}

var quizFromDocCmd = &cobra.Command{
	Use:   "from-doc <document-id|file>",
	Short: "Generate a quiz from a document or a passage of it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selection, _ := cmd.Flags().GetString("selection")
		subject, _ := cmd.Flags().GetString("subject")
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
		svc := quiz.NewService(provider, quiz.DefaultConfig())

		var questions []quiz.Question
		if selection != "" {
			questions, err = svc.FromSelection(ctx, selection)
		} else {
			text, lerr := e.loadText(ctx, args[0])
			if lerr != nil {
				return lerr
			}
			questions, err = svc.FromContent(ctx, text)
		}
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}
		return deliverQuiz(cmd, e, questions, subject)
	},
}

var quizTakeCmd = &cobra.Command{
	Use:   "take <quiz.json>",
	Short: "Take a saved quiz in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")

		questions, err := readQuiz(args[0])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		return takeQuiz(e, questions, subject)
	},
}

var quizRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a quiz score taken elsewhere",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		score, _ := cmd.Flags().GetInt("score")
		total, _ := cmd.Flags().GetInt("total")
		date, _ := cmd.Flags().GetString("date")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		q := progress.QuizResult{
			Date:    orToday(date),
			Subject: strings.TrimSpace(subject),
			Score:   score,
			Total:   total,
		}
		if err := e.store.ProgressRepo().AddQuizResult(cmd.Context(), q); err != nil {
			return err
		}
		pct, _ := q.Percent()
		fmt.Printf("Recorded %d/%d (%.0f%%) on %s.\n", q.Score, q.Total, pct, q.Date)
		return nil
	},
}

// deliverQuiz writes the quiz as JSON, or runs it in the terminal with
// --take.
func deliverQuiz(cmd *cobra.Command, e *env, questions []quiz.Question, subject string) error {
	take, _ := cmd.Flags().GetBool("take")
	out, _ := cmd.Flags().GetString("out")

	if out != "" {
		if err := writeQuiz(out, questions); err != nil {
			return err
		}
		fmt.Printf("Saved %d questions to %s\n", len(questions), out)
	}
	if take {
		return takeQuiz(e, questions, subject)
	}
	if out == "" {
		return json.NewEncoder(os.Stdout).Encode(quiz.Quiz{Questions: questions})
	}
	return nil
}

func takeQuiz(e *env, questions []quiz.Question, subject string) error {
	s := quizscreen.New(questions, subject, e.store.ProgressRepo(), func() tea.Cmd { return tea.Quit })
	if err := app.RunScreen(s); err != nil {
		return err
	}
	if r, done := s.Result(); done {
		pct, _ := r.Percent()
		fmt.Printf("Score: %d/%d (%.0f%%)\n", r.Score, r.Total, pct)
	}
	return nil
}

func readQuiz(path string) ([]quiz.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	var q quiz.Quiz
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("parse quiz %s: %w", path, err)
	}
	if err := quiz.Check(q.Questions); err != nil {
		return nil, fmt.Errorf("quiz %s: %w", path, err)
	}
	return q.Questions, nil
}

func writeQuiz(path string, questions []quiz.Question) error {
	data, err := json.MarshalIndent(quiz.Quiz{Questions: questions}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// orToday returns date, or today's date when it is empty.
func orToday(date string) string {
	if date = strings.TrimSpace(date); date != "" {
		return date
	}
	return time.Now().Format(progress.DateLayout)
}

func init() {
	for _, c := range []*cobra.Command{quizGenerateCmd, quizFromDocCmd} {
		c.Flags().Bool("take", false, "Take the quiz in the terminal right away")
		c.Flags().StringP("out", "o", "", "Save the quiz as JSON to this file")
	}
	quizGenerateCmd.Flags().Int("grade", 10, "School grade (1-12)")
	quizGenerateCmd.Flags().String("subject", "", "Subject, e.g. \"Physical Sciences\"")
	_ = quizGenerateCmd.MarkFlagRequired("subject")
	quizFromDocCmd.Flags().String("subject", "", "Subject recorded with the score")
	quizFromDocCmd.Flags().String("selection", "", "Quiz only this passage instead of the whole document")

	quizTakeCmd.Flags().String("subject", "", "Subject recorded with the score")

	quizRecordCmd.Flags().String("subject", "", "Quiz subject")
	quizRecordCmd.Flags().Int("score", 0, "Points scored")
	quizRecordCmd.Flags().Int("total", 0, "Points available")
	quizRecordCmd.Flags().String("date", "", "Date as YYYY-MM-DD (default today)")
	_ = quizRecordCmd.MarkFlagRequired("total")

	quizCmd.AddCommand(quizGenerateCmd)
	quizCmd.AddCommand(quizFromDocCmd)
	quizCmd.AddCommand(quizTakeCmd)
	quizCmd.AddCommand(quizRecordCmd)
}
