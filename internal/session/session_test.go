// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/seekspot/pkg/types"
)

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSession(t *testing.T) (*Session, *MemoryStore, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := &MemoryStore{}
	s, err := Open(store, WithClock(c.now))
	require.NoError(t, err)
	return s, store, c
}

func TestNewSessionIsFree(t *testing.T) {
	s, _, _ := newTestSession(t)
	st := s.State()
	assert.Equal(t, TierFree, st.Tier())
	assert.Equal(t, FreeResultLimit, st.ResultLimit())
	assert.Equal(t, 0, s.RemainingDays())
}

func TestStartTrial(t *testing.T) {
	s, store, _ := newTestSession(t)
	require.NoError(t, s.StartTrial("  Ada@Example.COM "))

	st := s.State()
	assert.True(t, st.TrialActive)
	assert.Equal(t, "ada@example.com", st.TrialEmail)
	assert.Equal(t, TrialSearches, st.SearchesRemaining)
	assert.Equal(t, TierTrial, st.Tier())
	assert.Equal(t, TrialResultLimit, st.ResultLimit())
	assert.Equal(t, 7, s.RemainingDays())
	assert.True(t, s.HasUsedTrial("ADA@example.com"))

	// Persisted on mutation.
	assert.True(t, store.State.TrialActive)
	assert.Equal(t, []string{"ada@example.com"}, store.State.UsedTrialEmails)
}

func TestStartTrialRejectsReusedEmail(t *testing.T) {
	s, _, _ := newTestSession(t)
	require.NoError(t, s.StartTrial("ada@example.com"))
	require.NoError(t, s.EndTrial())

	err := s.StartTrial("Ada@Example.com")
	assert.ErrorIs(t, err, ErrTrialUsed)
	assert.False(t, s.State().TrialActive)

	require.NoError(t, s.StartTrial("grace@example.com"))
	assert.ErrorIs(t, s.StartTrial(""), ErrEmailRequired)
}

func TestTrialExpires(t *testing.T) {
	s, store, c := newTestSession(t)
	require.NoError(t, s.StartTrial("ada@example.com"))

	c.advance(3*24*time.Hour + time.Hour)
	assert.Equal(t, 4, s.RemainingDays(), "partial days round up")

	c.advance(4 * 24 * time.Hour)
	st := s.State()
	assert.False(t, st.TrialActive)
	assert.Equal(t, TierFree, st.Tier())
	assert.Equal(t, 0, st.SearchesRemaining)
	assert.False(t, store.State.TrialActive, "expiry is persisted")
	assert.True(t, s.HasUsedTrial("ada@example.com"))
}

func TestOpenEndsExpiredTrial(t *testing.T) {
	store := &MemoryStore{State: State{
		TrialActive:       true,
		TrialEndDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		TrialEmail:        "ada@example.com",
		SearchesRemaining: 12,
		UsedTrialEmails:   []string{"ada@example.com"},
	}}
	s, err := Open(store, WithClock(func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }))
	require.NoError(t, err)
	assert.Equal(t, TierFree, s.State().Tier())
	assert.False(t, store.State.TrialActive)
}

func TestActivatePremiumEndsTrial(t *testing.T) {
	s, _, _ := newTestSession(t)
	require.NoError(t, s.StartTrial("ada@example.com"))
	require.NoError(t, s.ActivatePremium())

	st := s.State()
	assert.True(t, st.Premium)
	assert.False(t, st.TrialActive)
	assert.Equal(t, 0, st.SearchesRemaining)
	assert.Equal(t, TierPremium, st.Tier())
	assert.Equal(t, PremiumResultLimit, st.ResultLimit())
	assert.Equal(t, 0, s.RemainingDays())
}

func TestEndTrialCancelsPremium(t *testing.T) {
	s, _, _ := newTestSession(t)
	require.NoError(t, s.ActivatePremium())
	require.NoError(t, s.EndTrial())
	assert.Equal(t, TierFree, s.State().Tier())
}

func TestDecrementSearchesFloorsAtZero(t *testing.T) {
	s, _, _ := newTestSession(t)
	require.NoError(t, s.StartTrial("ada@example.com"))
	for i := 0; i < TrialSearches+5; i++ {
		require.NoError(t, s.DecrementSearches())
	}
	assert.Equal(t, 0, s.State().SearchesRemaining)
}

func TestUseSearch(t *testing.T) {
	s, _, _ := newTestSession(t)

	g, err := s.UseSearch()
	require.NoError(t, err)
	assert.Equal(t, Grant{Tier: TierFree, Limit: FreeResultLimit}, g)

	require.NoError(t, s.StartTrial("ada@example.com"))
	for i := TrialSearches - 1; i >= 0; i-- {
		g, err = s.UseSearch()
		require.NoError(t, err)
		assert.Equal(t, TierTrial, g.Tier)
		assert.Equal(t, TrialResultLimit, g.Limit)
		assert.Equal(t, i, g.SearchesRemaining)
	}
	_, err = s.UseSearch()
	assert.ErrorIs(t, err, ErrNoSearchesRemaining)

	require.NoError(t, s.ActivatePremium())
	g, err = s.UseSearch()
	require.NoError(t, err)
	assert.Equal(t, Grant{Tier: TierPremium, Limit: PremiumResultLimit}, g)
}

// failingStore accepts loads and rejects saves.
type failingStore struct{ MemoryStore }

func (f *failingStore) Save(State) error { return errors.New("disk full") }

func TestFailedSaveKeepsState(t *testing.T) {
	s, err := Open(&failingStore{})
	require.NoError(t, err)

	err = s.StartTrial("ada@example.com")
	assert.ErrorContains(t, err, "disk full")
	assert.False(t, s.State().TrialActive)
	assert.False(t, s.HasUsedTrial("ada@example.com"))
}

// flakyStore rejects saves while broken is set.
type flakyStore struct {
	MemoryStore
	broken bool
}

func (f *flakyStore) Save(st State) error {
	if f.broken {
		return errors.New("disk full")
	}
	return f.MemoryStore.Save(st)
}

func TestStateLogsFailedExpirySave(t *testing.T) {
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := &flakyStore{}
	core, logs := observer.New(zapcore.WarnLevel)
	s, err := Open(store, WithClock(c.now), WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.NoError(t, s.StartTrial("ada@example.com"))

	store.broken = true
	c.advance(TrialDuration + time.Minute)

	st := s.State()
	assert.False(t, st.TrialActive)
	assert.Equal(t, TierFree, st.Tier())
	assert.Contains(t, st.UsedTrialEmails, "ada@example.com")

	entries := logs.FilterMessage("saving expired trial").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "disk full")
	assert.True(t, store.State.TrialActive, "failed save must not reach the store")

	store.broken = false
	assert.False(t, s.State().TrialActive)
	assert.False(t, store.State.TrialActive)
	assert.Equal(t, 1, logs.FilterMessage("saving expired trial").Len())
}

func TestStores(t *testing.T) {
	end := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	want := State{
		TrialActive:       true,
		TrialEndDate:      end,
		TrialEmail:        "ada@example.com",
		SearchesRemaining: 17,
		UsedTrialEmails:   []string{"old@example.com", "ada@example.com"},
	}

	tests := []struct {
		name string
		open func(t *testing.T, dir string) Store
	}{
		{"file", func(t *testing.T, dir string) Store {
			return &FileStore{Path: filepath.Join(dir, "nested", "session.json")}
		}},
		{"sqlite", func(t *testing.T, dir string) Store {
			st, err := OpenSQLiteStore(filepath.Join(dir, "session.db"))
			require.NoError(t, err)
			t.Cleanup(func() { st.Close() })
			return st
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.open(t, t.TempDir())

			empty, err := store.Load()
			require.NoError(t, err)
			assert.False(t, empty.TrialActive)
			assert.Empty(t, empty.UsedTrialEmails)

			require.NoError(t, store.Save(want))
			got, err := store.Load()
			require.NoError(t, err)
			assert.True(t, got.TrialEndDate.Equal(end))
			got.TrialEndDate = end
			assert.Equal(t, want, got)

			// Overwrite: ending the trial keeps used emails.
			ended := State{UsedTrialEmails: want.UsedTrialEmails}
			require.NoError(t, store.Save(ended))
			got, err = store.Load()
			require.NoError(t, err)
			assert.False(t, got.TrialActive)
			assert.True(t, got.TrialEndDate.IsZero())
			assert.Equal(t, want.UsedTrialEmails, got.UsedTrialEmails)
		})
	}
}

func TestSessionOverSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)

	s, err := Open(store)
	require.NoError(t, err)
	require.NoError(t, s.StartTrial("ada@example.com"))
	_, err = s.UseSearch()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	s2, err := Open(reopened)
	require.NoError(t, err)
	st := s2.State()
	assert.True(t, st.TrialActive)
	assert.Equal(t, TrialSearches-1, st.SearchesRemaining)
	assert.True(t, s2.HasUsedTrial("ada@example.com"))
}

func TestNewStore(t *testing.T) {
	dir := t.TempDir()

	st, err := NewStore(types.SessionConfig{Path: filepath.Join(dir, "s.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, st)

	st, err = NewStore(types.SessionConfig{Backend: types.SessionSQLite, Path: filepath.Join(dir, "s.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, st)
	st.(*SQLiteStore).Close()

	_, err = NewStore(types.SessionConfig{Backend: "redis"})
	assert.ErrorContains(t, err, "unknown session backend")
}
