package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/compass/internal/draft"
	"github.com/careercompass/compass/internal/quiz"
	"github.com/careercompass/compass/internal/router"
	"github.com/careercompass/compass/internal/screens/complete"
	"github.com/careercompass/compass/internal/wizard"
)

type stubBackend struct{}

func (stubBackend) Questions(context.Context) ([]quiz.Question, error) { return nil, nil }

func (stubBackend) Profile(context.Context) (*quiz.Profile, error) {
	return nil, quiz.ErrProfileNotFound
}

func (stubBackend) Submit(context.Context, quiz.Payload) (*quiz.SubmissionReceipt, error) {
	return &quiz.SubmissionReceipt{ID: 1}, nil
}

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	ctrl, err := wizard.New(wizard.Deps{
		Backend: stubBackend{},
		Drafts:  draft.NewPersistence(draft.NewMemoryBackend()),
		Status:  quiz.NewMemoryStatus(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, wizard.Context{})
	require.NoError(t, err)

	m := newAppModel(context.Background(), Options{Controller: ctrl, Backend: stubBackend{}})
	m.Init()
	return m
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestRunRequiresCollaborators(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	assert.Error(t, err)
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEscPopsOnlyPushedScreens(t *testing.T) {
	m := newTestModel(t)
	esc := tea.KeyPressMsg{Code: tea.KeyEscape}

	m, cmd := update(m, esc)
	assert.Equal(t, 1, m.router.Depth())
	if cmd != nil {
		assert.NotEqual(t, router.PopScreenMsg{}, cmd())
	}

	m, _ = update(m, router.PushScreenMsg{Screen: complete.New(nil, "", 0)})
	require.Equal(t, 2, m.router.Depth())

	m, cmd = update(m, esc)
	require.NotNil(t, cmd)
	m, _ = update(m, cmd())
	assert.Equal(t, 1, m.router.Depth())
	assert.Same(t, m.wizard, m.router.Active())
}

func TestViewBeforeSizeIsEmpty(t *testing.T) {
	m := newTestModel(t)
	assert.NotPanics(t, func() { m.View() })
	m, _ = update(m, tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.NotPanics(t, func() { m.View() })
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.NotPanics(t, func() { m.View() })
}
