package messages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellit-io/sellit/internal/bus"
	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
	"github.com/sellit-io/sellit/internal/storage"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(storage.NewGateway(storage.NewMemoryBackend(), bus.New()))
}

func sampleMessage(id string) models.Message {
	return models.Message{
		ID:          id,
		SenderID:    "u1",
		ReceiverID:  "u2",
		MessageText: "I love this business plan",
		Timestamp:   time.Now().UTC(),
	}
}

func TestAppendAndList(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, sampleMessage("m1")))
	require.NoError(t, s.Append(ctx, sampleMessage("m2")))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "m1", all[0].ID)
	assert.Equal(t, "m2", all[1].ID)
}

func TestModerationStateMachine(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, sampleMessage("m1")))
	require.NoError(t, s.Append(ctx, sampleMessage("m2")))

	require.NoError(t, s.Report(ctx, "m1", "spam"))
	require.NoError(t, s.MarkBlocked(ctx, "m2", "contact details"))

	flagged, err := s.Flagged(ctx)
	require.NoError(t, err)
	assert.Len(t, flagged, 2)

	// dismiss returns both to clean and clears the reason
	require.NoError(t, s.DismissFlags(ctx, "m1"))
	require.NoError(t, s.DismissFlags(ctx, "m2"))

	flagged, err = s.Flagged(ctx)
	require.NoError(t, err)
	assert.Empty(t, flagged)

	all, err := s.List(ctx)
	require.NoError(t, err)
	for _, m := range all {
		assert.False(t, m.IsBlocked)
		assert.False(t, m.IsReported)
		assert.Empty(t, m.ReportReason)
	}
}

func TestFlagUnknownMessage(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.ErrorIs(t, s.Report(ctx, "ghost", "x"), common.ErrNotFound)
	require.ErrorIs(t, s.DismissFlags(ctx, "ghost"), common.ErrNotFound)
}
