package draft

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/compass/internal/assessment"
)

func sampleAnswers(t *testing.T) *assessment.Answers {
	t.Helper()
	a := assessment.NewAnswers()
	a.ToggleInterest("ml")
	a.ToggleInterest("ai")
	require.NoError(t, a.ToggleDomain("ai"))
	a.RateSkill("Python", 80)
	a.RateSkill("SQL", 40)
	require.NoError(t, a.SetResponse(assessment.SectionPersonality, "decisionMaking", "analytical"))
	require.NoError(t, a.SetResponse(assessment.SectionGoals, "shortTermGoal", "skills"))
	return a
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	a := sampleAnswers(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	d := New(a, "Data Science", 2, now)

	data, err := Encode(d)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, "Data Science", got.Field)
	assert.Equal(t, 2, got.Section)
	assert.True(t, got.SavedAt.Equal(now))
	assert.True(t, a.Equal(got.Answers))
}

func TestNewClonesAnswers(t *testing.T) {
	a := sampleAnswers(t)
	d := New(a, "", 0, time.Now())
	a.ToggleInterest("ml")
	assert.Contains(t, d.Answers.SelectedInterests, "ml")
}

func TestDecodeRejectsCorruptRecords(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"version":`},
		{"missing answers", `{"version":1,"id":"x","savedAt":"2025-01-01T00:00:00Z"}`},
		{"too many domains", `{"version":1,"id":"x","savedAt":"2025-01-01T00:00:00Z","answers":{"selectedInterests":[],"selectedDomains":["a","b","c","d"],"skillRatings":{}}}`},
		{"duplicate domains", `{"version":1,"id":"x","savedAt":"2025-01-01T00:00:00Z","answers":{"selectedInterests":[],"selectedDomains":["a","a"],"skillRatings":{}}}`},
		{"rating out of range", `{"version":1,"id":"x","savedAt":"2025-01-01T00:00:00Z","answers":{"selectedInterests":[],"selectedDomains":[],"skillRatings":{"Go":140}}}`},
		{"non-string response", `{"version":1,"id":"x","savedAt":"2025-01-01T00:00:00Z","answers":{"selectedInterests":[],"selectedDomains":[],"skillRatings":{},"goals":{"shortTermGoal":3}}}`},
		{"future version", `{"version":99,"id":"x","savedAt":"2025-01-01T00:00:00Z","answers":{"selectedInterests":[],"selectedDomains":[],"skillRatings":{}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestDecodeFillsMissingResponseGroups(t *testing.T) {
	data := `{"version":1,"id":"x","savedAt":"2025-01-01T00:00:00Z","answers":{"selectedInterests":["web"],"selectedDomains":[],"skillRatings":{}}}`
	d, err := Decode([]byte(data))
	require.NoError(t, err)
	assert.NotNil(t, d.Answers.Personality)
	assert.NotNil(t, d.Answers.WorkStyle)
	assert.NotNil(t, d.Answers.Goals)
}

func TestPersistenceSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	p := NewPersistence(NewMemoryBackend())
	a := sampleAnswers(t)

	require.NoError(t, p.Save(ctx, New(a, "Data Science", 1, time.Now())))

	// A fresh Persistence simulates a reload.
	reloaded := NewPersistence(p.backend)
	got, err := reloaded.LoadOnce(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, a.Equal(got.Answers))
}

func TestLoadOnce(t *testing.T) {
	ctx := context.Background()
	p := NewPersistence(NewMemoryBackend())

	d, err := p.LoadOnce(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = p.LoadOnce(ctx)
	assert.ErrorIs(t, err, ErrAlreadyLoaded)
}

func TestLoadDiscardsCorruptDraft(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	require.NoError(t, b.Put(ctx, DefaultKey, []byte(`{"garbage":true}`)))

	p := NewPersistence(b)
	d, err := p.LoadOnce(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)

	raw, err := b.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Nil(t, raw, "corrupt record should be deleted")
}

func TestPeekLeavesCorruptDraft(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	require.NoError(t, b.Put(ctx, DefaultKey, []byte(`not json`)))

	discarded := false
	p := NewPersistence(b, WithDiscardHook(func(context.Context, error) { discarded = true }))
	d, err := p.Peek(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Nil(t, d)
	assert.False(t, discarded)

	raw, err := b.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`not json`), raw)

	// Peek does not use up the load-once slot.
	d, err = p.LoadOnce(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.True(t, discarded)
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	p := NewPersistence(b, WithKey("k"))

	first := assessment.NewAnswers()
	first.ToggleInterest("web")
	require.NoError(t, p.Save(ctx, New(first, "", 0, time.Now())))

	second := assessment.NewAnswers()
	second.ToggleInterest("ai")
	require.NoError(t, p.Save(ctx, New(second, "", 0, time.Now())))

	got, err := p.Peek(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ai"}, got.Answers.SelectedInterests)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	p := NewPersistence(NewMemoryBackend())
	require.NoError(t, p.Save(ctx, New(sampleAnswers(t), "", 0, time.Now())))
	require.NoError(t, p.Clear(ctx))

	d, err := p.Peek(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)

	// Clearing an absent draft is not an error.
	require.NoError(t, p.Clear(ctx))
}

func TestSaveStampsZeroTime(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	p := NewPersistence(NewMemoryBackend(), WithClock(func() time.Time { return fixed }))

	d := &Draft{Version: CurrentVersion, ID: "id-1", Answers: assessment.NewAnswers()}
	require.NoError(t, p.Save(ctx, d))

	got, err := p.Peek(ctx)
	require.NoError(t, err)
	assert.True(t, got.SavedAt.Equal(fixed))
}

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	b, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	got, err := b.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, b.Put(ctx, "k", []byte(`{"a":1}`)))
	require.NoError(t, b.Put(ctx, "k", []byte(`{"a":2}`)))

	got, err = b.Get(ctx, "k")
	require.NoError(t, err)
	var v map[string]int
	require.NoError(t, json.Unmarshal(got, &v))
	assert.Equal(t, 2, v["a"])

	require.NoError(t, b.Delete(ctx, "k"))
	require.NoError(t, b.Delete(ctx, "k"))
	got, err = b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDiscardHook(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	require.NoError(t, b.Put(ctx, DefaultKey, []byte(`not json`)))

	var got error
	p := NewPersistence(b, WithDiscardHook(func(_ context.Context, err error) { got = err }))
	_, err := p.LoadOnce(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, got, ErrCorrupt)
}
