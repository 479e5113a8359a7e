package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smarted/studykit/internal/app"
	"github.com/smarted/studykit/internal/coach"
	"github.com/smarted/studykit/internal/focus"
	"github.com/smarted/studykit/internal/screens/home"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	opts := app.Options{Home: home.Options{
		Progress:    e.store.ProgressRepo(),
		Focus:       focusConfig(e),
		TrendWindow: e.cfg.Progress.TrendWindow,
	}}

	// The app works without a model; the coach is disabled instead.
	provider, err := e.provider(cmd.Context())
	if err != nil {
		e.log.Info("LLM features disabled", zap.Error(err))
		fmt.Fprintln(os.Stderr, "AI features will be unavailable:", err)
	} else {
		opts.Home.Coach = coach.NewService(provider, coach.DefaultConfig()).Chat
	}

	return app.Run(opts)
}

func focusConfig(e *env) focus.Config {
	return focus.Config{
		WorkMinutes:  e.cfg.Focus.WorkMinutes,
		BreakMinutes: e.cfg.Focus.BreakMinutes,
	}
}
