package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "oka-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordRepo_LoadMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()

	_, ok, err := repo.Load("oka-state")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRecordRepo_SaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()

	require.NoError(t, repo.Save("oka-state", []byte(`{"user":null,"savedUsers":{}}`)))

	data, ok, err := repo.Load("oka-state")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"user":null,"savedUsers":{}}`, string(data))
}

func TestRecordRepo_SaveReplacesWholeValue(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()

	require.NoError(t, repo.Save("oka-state", []byte(`{"v":1}`)))
	require.NoError(t, repo.Save("oka-state", []byte(`{"v":2}`)))

	data, ok, err := repo.Load("oka-state")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"v":2}`, string(data))
}

func TestRecordRepo_KeysAreIndependent(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()

	require.NoError(t, repo.Save("a", []byte(`1`)))
	require.NoError(t, repo.Save("b", []byte(`2`)))

	data, ok, err := repo.Load("a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1", string(data))
}

func TestRecordRepo_Delete(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()

	require.NoError(t, repo.Save("oka-state", []byte(`{"v":1}`)))
	require.NoError(t, repo.Delete("oka-state"))

	_, ok, err := repo.Load("oka-state")
	require.NoError(t, err)
	require.False(t, ok)

	// Deleting again is not an error.
	require.NoError(t, repo.Delete("oka-state"))
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini-2.0-flash", Model: "gemini-2.0-flash",
		Purpose: "story", InputTokens: 120, OutputTokens: 300,
		LatencyMs: 900, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini-2.0-flash", Model: "gemini-2.0-flash",
		Purpose: "reading-analysis", Success: false, ErrorMessage: "boom",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	require.Equal(t, "reading-analysis", events[0].Purpose)
	require.False(t, events[0].Success)
	require.Equal(t, "boom", events[0].ErrorMessage)

	require.Equal(t, "story", events[1].Purpose)
	require.True(t, events[1].Success)
	require.Equal(t, 300, events[1].OutputTokens)
}

func TestEventRepo_PurposeFilterAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for range 3 {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "story", Success: true}))
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "reward-scene", Success: true}))
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "story"})
	require.NoError(t, err)
	require.Len(t, events, 3)

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
}

func TestEventRepo_GetByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "story",
		Success: true, RequestBody: `{"system":"..."}`, ResponseBody: `{"title":"..."}`,
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	require.Equal(t, "story", e.Purpose)
	require.Equal(t, `{"system":"..."}`, e.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, events[0].ID+100)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestEventRepo_UsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "story",
		InputTokens: 100, OutputTokens: 400, LatencyMs: 1000, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "story",
		InputTokens: 200, OutputTokens: 600, LatencyMs: 3000, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "reward-scene",
		InputTokens: 50, OutputTokens: 10, LatencyMs: 500, Success: true,
	}))

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)

	// Most calls first.
	require.Equal(t, "story", byPurpose[0].Purpose)
	require.Equal(t, 2, byPurpose[0].Calls)
	require.Equal(t, 300, byPurpose[0].InputTokens)
	require.Equal(t, 1000, byPurpose[0].OutputTokens)
	require.Equal(t, int64(2000), byPurpose[0].AvgLatencyMs)

	require.Equal(t, "reward-scene", byPurpose[1].Purpose)
	require.Equal(t, 1, byPurpose[1].Calls)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	require.Equal(t, "gemini-2.0-flash", byModel[0].Model)
	require.Equal(t, 2, byModel[0].Calls)
	require.Equal(t, 300, byModel[0].InputTokens)
	require.Equal(t, "gemini-2.5-flash", byModel[1].Model)
}

func TestOpen_Reopens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oka.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.RecordRepo().Save("oka-state", []byte(`{"kept":true}`)))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	data, ok, err := s2.RecordRepo().Load("oka-state")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"kept":true}`, string(data))
}
