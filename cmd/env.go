package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smarted/studykit/internal/config"
	"github.com/smarted/studykit/internal/extract"
	"github.com/smarted/studykit/internal/llm"
	"github.com/smarted/studykit/internal/logger"
	"github.com/smarted/studykit/internal/store"
)

// env is what a command needs to run: settings, a logger and the store.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	store *store.Store
}

// openEnv loads configuration, builds the logger and opens the database.
// Callers must Close the result.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Debug("opened store", zap.String("path", dbPath))

	return &env{cfg: cfg, log: log, store: st}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", zap.Error(err))
	}
	_ = e.log.Sync()
}

// provider builds the configured LLM provider. Every call is recorded
// through the event repo.
func (e *env) provider(ctx context.Context) (llm.Provider, error) {
	if !e.cfg.LLM.HasAPIKey() {
		return nil, errors.New("no LLM provider configured: set GEMINI_API_KEY (or OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY)")
	}
	p, err := llm.NewProvider(ctx, e.cfg.LLM, e.store.EventRepo(), e.log)
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}
	return p, nil
}

// loadText returns the text of a stored document, or of a file on disk
// when ref names one.
func (e *env) loadText(ctx context.Context, ref string) (string, error) {
	if _, err := os.Stat(ref); err == nil {
		return extract.FromFile(ref)
	}
	doc, err := e.store.DocumentRepo().GetDocument(ctx, ref)
	if errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("%q is neither a file nor a document id", ref)
	}
	if err != nil {
		return "", fmt.Errorf("get document: %w", err)
	}
	return doc.Content, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then STUDYKIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
