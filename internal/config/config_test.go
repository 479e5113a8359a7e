package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears every variable Load consults so host settings don't leak in.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY", "OPENAI_API_KEY",
		"ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"STUDYKIT_LLM_PROVIDER", "STUDYKIT_GEMINI_API_KEY", "STUDYKIT_OPENAI_API_KEY",
		"STUDYKIT_ANTHROPIC_API_KEY", "STUDYKIT_OPENROUTER_API_KEY", "STUDYKIT_DB",
		"STUDYKIT_LOG_LEVEL", "STUDYKIT_RETRIEVAL_MAX_CHUNKS",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-flash", cfg.LLM.Gemini.Model)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.LLM.Retry.InitialWait)
	assert.Equal(t, 1500, cfg.Retrieval.MaxContextLength)
	assert.Equal(t, 3, cfg.Retrieval.MaxChunks)
	assert.Equal(t, 7, cfg.Progress.TrendWindow)
	assert.Equal(t, 25, cfg.Focus.WorkMinutes)
	assert.Equal(t, 5, cfg.Focus.BreakMinutes)
}

func TestLoad_File(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
llm_provider: openai
openai:
  api_key: sk-file
  model: gpt-4.1-mini
retrieval:
  max_context_length: 800
focus:
  work_minutes: 50
  break_minutes: 10
log:
  format: json
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-file", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.OpenAI.Model)
	assert.Equal(t, 800, cfg.Retrieval.MaxContextLength)
	assert.Equal(t, 3, cfg.Retrieval.MaxChunks)
	assert.Equal(t, 50, cfg.Focus.WorkMinutes)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retrieval:\n  max_chunks: 5\n"), 0o600))
	t.Setenv("STUDYKIT_RETRIEVAL_MAX_CHUNKS", "2")
	t.Setenv("STUDYKIT_GEMINI_API_KEY", "g-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Retrieval.MaxChunks)
	assert.Equal(t, "g-env", cfg.LLM.Gemini.APIKey)
	assert.NoError(t, cfg.LLM.Validate())
}

func TestLoad_DiscoversVendorKey(t *testing.T) {
	isolate(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant", cfg.LLM.Anthropic.APIKey)
}

func TestLoad_ExplicitProviderReadsVendorKey(t *testing.T) {
	isolate(t)
	t.Setenv("STUDYKIT_LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant-test", cfg.LLM.Anthropic.APIKey)
	assert.True(t, cfg.LLM.HasAPIKey())
}

func TestLoad_PrefixedKeySelectsProvider(t *testing.T) {
	isolate(t)
	t.Setenv("STUDYKIT_OPENAI_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	assert.True(t, cfg.LLM.HasAPIKey())
}

func TestLoad_ConfiguredKeyWinsOverVendorEnv(t *testing.T) {
	isolate(t)
	t.Setenv("STUDYKIT_GEMINI_API_KEY", "g-config")
	t.Setenv("GEMINI_API_KEY", "g-vendor")
	t.Setenv("OPENAI_API_KEY", "sk-vendor")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "g-config", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, "sk-vendor", cfg.LLM.OpenAI.APIKey)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retrieval:\n  max_chunks: 0\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
