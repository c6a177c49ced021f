package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"farm-advisor/internal/models"
	"farm-advisor/pkg/config"
	"farm-advisor/pkg/sqlite"
)

func testRepo(t *testing.T) *InteractionRepository {
	t.Helper()
	db, err := sqlite.Open(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewInteractionRepository(db, zap.NewNop())
}

func TestLogAndHistory(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	first := &models.Interaction{
		Question:       "when to plant rice",
		Answer:         "During monsoon season.",
		Language:       "en",
		InputMethod:    models.InputMethodText,
		SessionID:      uuid.NewString(),
		ResponseTimeMS: 3,
		Timestamp:      base,
	}
	second := &models.Interaction{
		Question:    "गेहूं कब बोएं",
		Answer:      "नवंबर से दिसंबर में।",
		Language:    "hi",
		InputMethod: models.InputMethodVoice,
		SessionID:   uuid.NewString(),
		Timestamp:   base.Add(time.Minute),
	}

	id, err := repo.Log(ctx, first)
	require.NoError(t, err)
	assert.Positive(t, id)
	_, err = repo.Log(ctx, second)
	require.NoError(t, err)

	history, err := repo.History(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first.
	assert.Equal(t, "गेहूं कब बोएं", history[0].Question)
	assert.Equal(t, "hi", history[0].Language)
	assert.Equal(t, "when to plant rice", history[1].Question)
	assert.Equal(t, int64(3), history[1].ResponseTimeMS)
}

func TestHistoryLimit(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := repo.Log(ctx, &models.Interaction{
			Question:    "q",
			Answer:      "a",
			Language:    "en",
			InputMethod: models.InputMethodText,
			Timestamp:   base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	history, err := repo.History(ctx, 2, "")
	require.NoError(t, err)
	assert.Len(t, history, 2)

	// Non-positive limit falls back to the default instead of returning
	// nothing.
	history, err = repo.History(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, history, 5)
}

func TestHistoryFilterBySession(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	session := uuid.NewString()
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	for i, sid := range []string{session, uuid.NewString(), session} {
		_, err := repo.Log(ctx, &models.Interaction{
			Question:    "q",
			Answer:      "a",
			Language:    "en",
			InputMethod: models.InputMethodText,
			SessionID:   sid,
			Timestamp:   base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	history, err := repo.History(ctx, 10, session)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	for _, it := range history {
		assert.Equal(t, session, it.SessionID)
	}
}

func TestHistoryEmptyDatabase(t *testing.T) {
	repo := testRepo(t)
	history, err := repo.History(context.Background(), 10, "")
	require.NoError(t, err)
	assert.Empty(t, history)
}
