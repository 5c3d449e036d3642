// Package config loads compass settings from defaults, a YAML config
// file, a .env file and COMPASS_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/careercompass/compass/internal/api"
	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/draft"
	"github.com/careercompass/compass/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. COMPASS_API_TOKEN.
const EnvPrefix = "COMPASS"

// Draft backends.
const (
	DraftBackendSQLite = "sqlite"
	DraftBackendFile   = "file"
	DraftBackendMemory = "memory"
)

// Config is the full application configuration.
type Config struct {
	API     api.Config
	Store   StoreConfig
	Draft   DraftConfig
	Wizard  WizardConfig
	Catalog CatalogConfig
	Log     LogConfig

	// File is the config file that was read, if any.
	File string
}

// StoreConfig locates the SQLite database.
type StoreConfig struct {
	// DB is the database path. Empty means the XDG data directory.
	DB string
}

// DraftConfig selects where drafts are kept.
type DraftConfig struct {
	Backend string // sqlite, file, memory
	Key     string
	Dir     string // for the file backend; empty means the data directory
}

// WizardConfig shapes the wizard.
type WizardConfig struct {
	// Sections lists section ids to show. Empty means all of them.
	Sections []string
}

// CatalogConfig points at an optional option catalog override file.
type CatalogConfig struct {
	File string
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string
	Format string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: api.DefaultConfig(),
		Draft: DraftConfig{
			Backend: DraftBackendSQLite,
			Key:     draft.DefaultKey,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.token", d.API.Token)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("api.retry.max_attempts", d.API.Retry.MaxAttempts)
	v.SetDefault("api.retry.initial_wait", d.API.Retry.InitialWait)
	v.SetDefault("api.retry.max_wait", d.API.Retry.MaxWait)
	v.SetDefault("api.retry.multiplier", d.API.Retry.Multiplier)
	v.SetDefault("store.db", d.Store.DB)
	v.SetDefault("draft.backend", d.Draft.Backend)
	v.SetDefault("draft.key", d.Draft.Key)
	v.SetDefault("draft.dir", d.Draft.Dir)
	v.SetDefault("wizard.sections", []string{})
	v.SetDefault("catalog.file", d.Catalog.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Options controls where Load looks.
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string

	// EnvFile is the dotenv file to read. Default ".env"; a missing file
	// is ignored.
	EnvFile string

	// SearchPaths replaces the default config search path.
	SearchPaths []string
}

// Load builds the configuration. The result is validated.
func Load(opts Options) (Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", opts.File, err)
		}
	} else {
		v.SetConfigName("compass")
		v.SetConfigType("yaml")
		paths := opts.SearchPaths
		if paths == nil {
			paths = defaultSearchPaths()
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		API: api.Config{
			BaseURL: v.GetString("api.base_url"),
			Token:   v.GetString("api.token"),
			Timeout: v.GetDuration("api.timeout"),
			Retry: api.RetryConfig{
				MaxAttempts: v.GetInt("api.retry.max_attempts"),
				InitialWait: v.GetDuration("api.retry.initial_wait"),
				MaxWait:     v.GetDuration("api.retry.max_wait"),
				Multiplier:  v.GetFloat64("api.retry.multiplier"),
			},
		},
		Store: StoreConfig{DB: v.GetString("store.db")},
		Draft: DraftConfig{
			Backend: strings.ToLower(v.GetString("draft.backend")),
			Key:     v.GetString("draft.key"),
			Dir:     v.GetString("draft.dir"),
		},
		Wizard:  WizardConfig{Sections: splitList(v.GetStringSlice("wizard.sections"))},
		Catalog: CatalogConfig{File: v.GetString("catalog.file")},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		File: v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// defaultSearchPaths returns ".", then $XDG_CONFIG_HOME/compass or
// ~/.config/compass.
func defaultSearchPaths() []string {
	paths := []string{"."}
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return append(paths, filepath.Join(x, "compass"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "compass"))
	}
	return paths
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return err
	}
	switch c.Draft.Backend {
	case DraftBackendSQLite, DraftBackendFile, DraftBackendMemory:
	default:
		return fmt.Errorf("unknown draft backend %q", c.Draft.Backend)
	}
	if c.Draft.Key == "" {
		return errors.New("draft key is required")
	}
	if _, err := c.Sequence(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Sequence returns the configured wizard section sequence.
func (c Config) Sequence() (assessment.Sequence, error) {
	seq, err := assessment.ParseSequence(c.Wizard.Sections)
	if err != nil {
		return nil, fmt.Errorf("wizard sections: %w", err)
	}
	return seq, nil
}

// SubmitTimeout is the budget for the final submission: one attempt at
// the configured timeout.
func (c Config) SubmitTimeout() time.Duration {
	return c.API.Timeout
}
