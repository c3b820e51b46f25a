package logs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellit-io/sellit/internal/bus"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/storage"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(storage.NewGateway(storage.NewMemoryBackend(), bus.New()))
}

func TestAppendNewestFirst(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Append(ctx, models.LogEntry{
			ID:        fmt.Sprintf("l%d", i),
			Timestamp: time.Now().UTC(),
			Level:     models.LevelInfo,
			Event:     "login",
		}))
	}

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "l2", all[0].ID, "newest entry first")
	assert.Equal(t, "l0", all[2].ID)
}

func TestRetentionCap(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for i := 0; i < MaxEntries+1; i++ {
		require.NoError(t, s.Append(ctx, models.LogEntry{
			ID:    fmt.Sprintf("l%d", i),
			Level: models.LevelInfo,
			Event: "tick",
		}))
	}

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, MaxEntries)
	assert.Equal(t, fmt.Sprintf("l%d", MaxEntries), all[0].ID)
	// l0 is the oldest entry and the one evicted
	assert.Equal(t, "l1", all[MaxEntries-1].ID)
}

func TestClear(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, models.LogEntry{ID: "l1", Event: "x"}))
	require.NoError(t, s.Clear(ctx))

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
