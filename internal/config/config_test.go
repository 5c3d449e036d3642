package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/compass/internal/assessment"
)

// isolated returns Options that never touch the developer's real files.
func isolated(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		EnvFile:     filepath.Join(dir, "missing.env"),
		SearchPaths: []string{dir},
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(isolated(t))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, DraftBackendSQLite, cfg.Draft.Backend)
	assert.Equal(t, "quizAnswers", cfg.Draft.Key)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.File)

	seq, err := cfg.Sequence()
	require.NoError(t, err)
	assert.Equal(t, 6, seq.Len())
}

func TestConfigFile(t *testing.T) {
	opts := isolated(t)
	write(t, filepath.Join(opts.SearchPaths[0], "compass.yaml"), `
api:
  base_url: https://careers.example.com/api
  timeout: 10s
  retry:
    max_attempts: 5
draft:
  backend: file
  dir: /tmp/drafts
wizard:
  sections: [background, interests, skills]
log:
  level: debug
  format: json
`)

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "https://careers.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, 2.0, cfg.API.Retry.Multiplier)
	assert.Equal(t, DraftBackendFile, cfg.Draft.Backend)
	assert.Equal(t, "/tmp/drafts", cfg.Draft.Dir)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NotEmpty(t, cfg.File)

	seq, err := cfg.Sequence()
	require.NoError(t, err)
	assert.Equal(t, []string{"background", "interests", "skills"}, seq.IDs())
}

func TestEnvOverridesFile(t *testing.T) {
	opts := isolated(t)
	write(t, filepath.Join(opts.SearchPaths[0], "compass.yaml"), "api:\n  token: from-file\n")
	t.Setenv("COMPASS_API_TOKEN", "from-env")
	t.Setenv("COMPASS_WIZARD_SECTIONS", "interests,skills")

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.API.Token)
	assert.Equal(t, []string{"interests", "skills"}, cfg.Wizard.Sections)
}

func TestDotEnv(t *testing.T) {
	opts := isolated(t)
	opts.EnvFile = filepath.Join(t.TempDir(), ".env")
	write(t, opts.EnvFile, "COMPASS_DRAFT_KEY=fromdotenv\n")
	t.Setenv("COMPASS_DRAFT_KEY", "") // registers cleanup; godotenv won't override a set var
	os.Unsetenv("COMPASS_DRAFT_KEY")

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "fromdotenv", cfg.Draft.Key)
}

func TestExplicitFileMustExist(t *testing.T) {
	opts := isolated(t)
	opts.File = filepath.Join(t.TempDir(), "nope.yaml")
	_, err := Load(opts)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad draft backend", func(c *Config) { c.Draft.Backend = "redis" }, true},
		{"empty draft key", func(c *Config) { c.Draft.Key = "" }, true},
		{"unknown section", func(c *Config) { c.Wizard.Sections = []string{"hobbies"} }, true},
		{"sections out of order", func(c *Config) { c.Wizard.Sections = []string{"skills", "interests"} }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"bad api url", func(c *Config) { c.API.BaseURL = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", "c", ""}))
	assert.Nil(t, splitList(nil))
}

func TestSequenceKeepsCanonicalOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Wizard.Sections = []string{"interests", "goals"}
	seq, err := cfg.Sequence()
	require.NoError(t, err)
	assert.Equal(t, assessment.SectionGoals, seq.At(seq.Last()).ID)
}
