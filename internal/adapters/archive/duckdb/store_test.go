package duckdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleSession(id string, at time.Time, rpm ...string) domain.ArchivedSession {
	return domain.ArchivedSession{
		ID:         domain.SessionID(id),
		Source:     id + ".log",
		Protocol:   "6",
		IngestedAt: at,
		Commands: []domain.ParsedCommand{
			{Name: "ATSP6", Response: []string{"OK"}},
			{Name: "ATI", Response: []string{"ELM327 v1.5"}},
		},
		Responses: []domain.PIDRecord{
			{Request: "0105", Response: []string{"41 05 7B"}},
			{Request: "010C", Response: rpm},
		},
	}
}

func TestStoreHistoryNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveSession(context.Background(), sampleSession("s1", base, "41 0C 1A F8")))
	require.NoError(t, store.SaveSession(context.Background(), sampleSession("s2", base.Add(time.Hour), "41 0C 0F A0", "41 0C 0F A1")))

	history, err := store.History(context.Background(), "010C", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, domain.SessionID("s2"), history[0].SessionID)
	assert.Equal(t, "s2.log", history[0].Source)
	assert.Equal(t, "6", history[0].Protocol)
	assert.Equal(t, []string{"41 0C 0F A0", "41 0C 0F A1"}, history[0].Response)
	assert.True(t, base.Add(time.Hour).Equal(history[0].IngestedAt))

	assert.Equal(t, domain.SessionID("s1"), history[1].SessionID)
	assert.Equal(t, []string{"41 0C 1A F8"}, history[1].Response)
}

func TestStoreHistoryLimit(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.SaveSession(context.Background(), sampleSession(id, base.Add(time.Duration(i)*time.Minute), "41 0C 00 00")))
	}

	history, err := store.History(context.Background(), "010C", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.SessionID("c"), history[0].SessionID)
	assert.Equal(t, domain.SessionID("b"), history[1].SessionID)
}

func TestStoreHistoryMatchesRequestIgnoringCase(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	session := sampleSession("s1", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), "41 0C 1A F8")
	session.Responses[1].Request = "010c"
	require.NoError(t, store.SaveSession(context.Background(), session))

	history, err := store.History(context.Background(), "010C", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "010c", history[0].Request)
	assert.Equal(t, []string{"41 0C 1A F8"}, history[0].Response)
}

func TestStoreHistoryUnknownRequestIsEmpty(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	require.NoError(t, store.SaveSession(context.Background(), sampleSession("s1", time.Now(), "41 0C 00 00")))

	history, err := store.History(context.Background(), "0142", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStoreSaveSessionDuplicateIDRollsBack(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveSession(context.Background(), sampleSession("dup", at, "41 0C 00 00")))
	err := store.SaveSession(context.Background(), sampleSession("dup", at, "41 0C 11 11"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "insert session dup")

	history, err := store.History(context.Background(), "010C", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, []string{"41 0C 00 00"}, history[0].Response)

	count, err := store.Sessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStoreSaveSessionWithoutProtocolOrCommands(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	session := domain.ArchivedSession{
		ID:         "bare",
		Source:     "bare.log",
		IngestedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		Responses:  []domain.PIDRecord{{Request: "0100", Response: []string{"41 00 BE 3F A8 13"}}},
	}
	require.NoError(t, store.SaveSession(context.Background(), session))

	history, err := store.History(context.Background(), "0100", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Empty(t, history[0].Protocol)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "archive.duckdb")

	store, err := Open(context.Background(), dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveSession(context.Background(), sampleSession("s1", time.Now(), "41 0C 1A F8")))
	require.NoError(t, store.Close())

	reopened, err := Open(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	history, err := reopened.History(context.Background(), "010C", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestStoreCanceledContext(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.SaveSession(ctx, sampleSession("s1", time.Now(), "41 0C 00 00")), context.Canceled)

	_, err := store.History(ctx, "010C", 0)
	require.ErrorIs(t, err, context.Canceled)
}
