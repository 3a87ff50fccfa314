package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"healthpilot/internal/db"

	"github.com/openai/openai-go/v3/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.Migrate())
	return NewStore(database)
}

func testResponse(t *testing.T, text string) *responses.Response {
	t.Helper()
	raw := map[string]any{
		"model": "gpt-4o-mini",
		"output": []map[string]any{
			{
				"type": "message",
				"role": "assistant",
				"content": []map[string]any{
					{"type": "output_text", "text": text},
				},
			},
		},
	}
	b, err := json.Marshal(raw)
	require.NoError(t, err)
	var resp responses.Response
	require.NoError(t, json.Unmarshal(b, &resp))
	return &resp
}

func TestEnsureSessionIdempotent(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.EnsureSession(ctx, "s1", "default"))
	require.NoError(t, store.EnsureSession(ctx, "s1", "default"))

	sessions, err := store.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s1", sessions[0].ID)
	assert.Equal(t, "default", sessions[0].Channel)
}

func TestSaveAndLoadTurns(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.EnsureSession(ctx, "s1", "default"))
	require.NoError(t, store.SaveTurn(ctx, "s1", "tips for stress", testResponse(t, "Try breathing breaks.")))

	turns, err := store.GetTurns(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "tips for stress", turns[0].UserMessage)
	assert.Equal(t, "gpt-4o-mini", turns[0].Model.String)

	items, err := store.LoadInputHistory(ctx, "s1")
	require.NoError(t, err)
	// One user message plus one assistant output message.
	require.Len(t, items, 2)
}

func TestLoadInputHistorySkipsBadJSON(t *testing.T) {
	t.Parallel()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.Migrate())

	ctx := context.Background()
	q := db.New(database.Conn())
	require.NoError(t, q.UpsertSession(ctx, "s1", "default"))
	require.NoError(t, q.InsertTurn(ctx, "s1", "hello", "{not json", sql.NullString{}))

	store := NewStore(database)
	items, err := store.LoadInputHistory(ctx, "s1")
	require.NoError(t, err)
	// The user message survives, the broken response is skipped.
	assert.Len(t, items, 1)
}

func TestLoadInputHistoryEmptySession(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	items, err := store.LoadInputHistory(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, items)
}
