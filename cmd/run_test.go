package cmd

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/config"
	"github.com/careercompass/compass/internal/draft"
	"github.com/careercompass/compass/internal/store"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestDraftBackend(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	st := testStore(t)

	tests := []struct {
		name    string
		backend string
		dir     string
		want    any
	}{
		{"sqlite default", "", "", &store.DraftRepo{}},
		{"sqlite", config.DraftBackendSQLite, "", &store.DraftRepo{}},
		{"memory", config.DraftBackendMemory, "", &draft.MemoryBackend{}},
		{"file in data dir", config.DraftBackendFile, "", &draft.FileBackend{}},
		{"file in dir", config.DraftBackendFile, t.TempDir(), &draft.FileBackend{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Draft.Backend = tt.backend
			cfg.Draft.Dir = tt.dir

			b, err := draftBackend(cfg, st)
			require.NoError(t, err)
			assert.IsType(t, tt.want, b)
		})
	}
}

func TestDraftBackendRoundTrip(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	cfg := config.DefaultConfig()
	b, err := draftBackend(cfg, st)
	require.NoError(t, err)

	p := draft.NewPersistence(b)
	a := assessment.NewAnswers()
	a.ToggleInterest("analysis")
	require.NoError(t, p.Save(ctx, draft.New(a, "Finance", 1, fixedNow)))

	got, err := p.Peek(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Finance", got.Field)
	assert.Equal(t, []string{"analysis"}, got.Answers.SelectedInterests)
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COMPASS_DB", filepath.Join(dir, "env.db"))

	newCmd := func(flag string) *cobra.Command {
		c := &cobra.Command{}
		c.Flags().String("db", "", "")
		if flag != "" {
			require.NoError(t, c.Flags().Set("db", flag))
		}
		return c
	}

	tests := []struct {
		name       string
		flag       string
		configured string
		want       string
	}{
		{"flag wins", filepath.Join(dir, "flag.db"), filepath.Join(dir, "cfg.db"), filepath.Join(dir, "flag.db")},
		{"config next", "", filepath.Join(dir, "cfg.db"), filepath.Join(dir, "cfg.db")},
		{"env last", "", "", filepath.Join(dir, "env.db")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDBPath(newCmd(tt.flag), tt.configured)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.True(t, strings.HasPrefix(buf.String(), "compass "))
}

func TestSetupOnFreshDataDir(t *testing.T) {
	data := filepath.Join(t.TempDir(), "fresh")
	t.Setenv("XDG_DATA_HOME", data)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COMPASS_DB", "")

	c := &cobra.Command{}
	c.SetErr(io.Discard)
	rt, err := setup(c, true)
	require.NoError(t, err)
	t.Cleanup(func() { rt.Close() })

	rt.log.Info("started")
	assert.FileExists(t, filepath.Join(data, "compass", "compass.log"))
	assert.FileExists(t, filepath.Join(data, "compass", "compass.db"))
}

func TestSetupLogsToDataDirWithCustomDB(t *testing.T) {
	data := filepath.Join(t.TempDir(), "fresh")
	t.Setenv("XDG_DATA_HOME", data)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COMPASS_DB", filepath.Join(t.TempDir(), "elsewhere", "compass.db"))

	c := &cobra.Command{}
	rt, err := setup(c, true)
	require.NoError(t, err)
	t.Cleanup(func() { rt.Close() })

	assert.FileExists(t, filepath.Join(data, "compass", "compass.log"))
}

func TestDraftShowKeepsCorruptDraft(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COMPASS_DB", "")
	ctx := context.Background()

	dbPath := filepath.Join(data, "compass", "compass.db")
	require.NoError(t, store.EnsureDir(dbPath))
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.DraftRepo().Put(ctx, draft.DefaultKey, []byte(`not json`)))
	require.NoError(t, st.Close())

	var buf bytes.Buffer
	draftShowCmd.SetOut(&buf)
	draftShowCmd.SetContext(ctx)
	require.NoError(t, draftShowCmd.RunE(draftShowCmd, nil))
	assert.Contains(t, buf.String(), "unreadable")

	st, err = store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	raw, err := st.DraftRepo().Get(ctx, draft.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`not json`), raw)

	events, err := st.EventRepo().QueryWizardEvents(ctx, store.QueryOpts{Kind: store.WizardEventDiscarded})
	require.NoError(t, err)
	assert.Empty(t, events)
}
