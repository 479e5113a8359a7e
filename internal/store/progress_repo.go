package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/smarted/studykit/internal/progress"
)

type progressRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

type studySessionRow struct {
	Date    string `db:"date"`
	Minutes int    `db:"minutes"`
	Rating  string `db:"rating"`
}

type quizResultRow struct {
	Date    string `db:"date"`
	Subject string `db:"subject"`
	Score   int    `db:"score"`
	Total   int    `db:"total"`
}

func (r *progressRepo) Snapshot(ctx context.Context) (progress.Data, error) {
	d := progress.Data{
		StudyHistory: []progress.StudySession{},
		QuizHistory:  []progress.QuizResult{},
	}

	var sessions []studySessionRow
	if err := r.db.SelectContext(ctx, &sessions,
		`SELECT date, minutes, rating FROM study_sessions ORDER BY sequence ASC`); err != nil {
		return progress.Data{}, fmt.Errorf("query study sessions: %w", err)
	}
	for _, s := range sessions {
		d.StudyHistory = append(d.StudyHistory, progress.StudySession{
			Date:    s.Date,
			Minutes: s.Minutes,
			Rating:  progress.Rating(s.Rating),
		})
	}

	var quizzes []quizResultRow
	if err := r.db.SelectContext(ctx, &quizzes,
		`SELECT date, subject, score, total FROM quiz_results ORDER BY sequence ASC`); err != nil {
		return progress.Data{}, fmt.Errorf("query quiz results: %w", err)
	}
	for _, q := range quizzes {
		d.QuizHistory = append(d.QuizHistory, progress.QuizResult(q))
	}

	return d, nil
}

func (r *progressRepo) AddStudySession(ctx context.Context, s progress.StudySession) error {
	if err := progress.ValidateStudySession(s); err != nil {
		return err
	}
	return r.insertSession(ctx, r.db, s)
}

func (r *progressRepo) AddQuizResult(ctx context.Context, q progress.QuizResult) error {
	if err := progress.ValidateQuizResult(q); err != nil {
		return err
	}
	return r.insertQuiz(ctx, r.db, q)
}

func (r *progressRepo) Replace(ctx context.Context, d progress.Data) error {
	if err := progress.ValidateData(d); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if err := clearProgress(ctx, tx); err != nil {
		return err
	}
	for _, s := range d.StudyHistory {
		if err := r.insertSession(ctx, tx, s); err != nil {
			return err
		}
	}
	for _, q := range d.QuizHistory {
		if err := r.insertQuiz(ctx, tx, q); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

func (r *progressRepo) Reset(ctx context.Context) error {
	return clearProgress(ctx, r.db)
}

type weeklyGoalRow struct {
	Description string  `db:"description"`
	TotalHours  float64 `db:"total_hours"`
}

func (r *progressRepo) WeeklyGoal(ctx context.Context) (progress.WeeklyGoal, error) {
	var row weeklyGoalRow
	err := r.db.GetContext(ctx, &row, `SELECT description, total_hours FROM weekly_goal WHERE id = 1`)
	if isNoRows(err) {
		return progress.WeeklyGoal{}, ErrNotFound
	}
	if err != nil {
		return progress.WeeklyGoal{}, fmt.Errorf("get weekly goal: %w", err)
	}
	return progress.WeeklyGoal(row), nil
}

func (r *progressRepo) SetWeeklyGoal(ctx context.Context, g progress.WeeklyGoal) error {
	if err := progress.ValidateWeeklyGoal(g); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO weekly_goal (id, description, total_hours, updated_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET description = excluded.description,
			total_hours = excluded.total_hours, updated_at = excluded.updated_at`,
		g.Description, g.TotalHours, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("save weekly goal: %w", err)
	}
	return nil
}

func (r *progressRepo) ClearWeeklyGoal(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM weekly_goal`); err != nil {
		return fmt.Errorf("clear weekly goal: %w", err)
	}
	return nil
}

func clearProgress(ctx context.Context, ex sqlx.ExecerContext) error {
	for _, table := range []string{"study_sessions", "quiz_results", "weekly_goal"} {
		if _, err := ex.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (r *progressRepo) insertSession(ctx context.Context, ext sqlx.ExtContext, s progress.StudySession) error {
	seq, err := r.seq.Next(ctx, ext)
	if err != nil {
		return err
	}
	_, err = ext.ExecContext(ctx,
		`INSERT INTO study_sessions (sequence, date, minutes, rating, created_at) VALUES (?, ?, ?, ?, ?)`,
		seq, s.Date, s.Minutes, string(s.Rating), time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("save study session: %w", err)
	}
	return nil
}

func (r *progressRepo) insertQuiz(ctx context.Context, ext sqlx.ExtContext, q progress.QuizResult) error {
	seq, err := r.seq.Next(ctx, ext)
	if err != nil {
		return err
	}
	_, err = ext.ExecContext(ctx,
		`INSERT INTO quiz_results (sequence, date, subject, score, total, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		seq, q.Date, q.Subject, q.Score, q.Total, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}
