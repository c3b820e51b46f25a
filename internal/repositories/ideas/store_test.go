package ideas

import (
	"context"
	"testing"

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

func sampleIdea(id string) models.BusinessIdea {
	return models.BusinessIdea{
		ID:                  id,
		UserID:              "u1",
		Title:               "Solar SaaS",
		Category:            "SaaS",
		RequiredBudget:      50000,
		ExpectedProfitShare: 15,
		Visibility:          models.VisibilityPublic,
		Status:              models.StatusPublished,
		Tags:                []string{"solar"},
	}
}

func TestCreateFindDelete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, sampleIdea("i1")))
	require.NoError(t, s.Create(ctx, sampleIdea("i2")))

	got, err := s.FindByID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "Solar SaaS", got.Title)

	require.NoError(t, s.Delete(ctx, "i1"))
	_, err = s.FindByID(ctx, "i1")
	require.ErrorIs(t, err, common.ErrNotFound)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "delete removes the record entirely")

	require.ErrorIs(t, s.Delete(ctx, "i1"), common.ErrNotFound)
}

func TestSetStatus(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, sampleIdea("i1")))
	require.NoError(t, s.SetStatus(ctx, "i1", models.StatusSold))

	got, err := s.FindByID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSold, got.Status)
}

func TestUpdate_NotFound(t *testing.T) {
	s := newStore(t)
	require.ErrorIs(t, s.Update(context.Background(), sampleIdea("ghost")), common.ErrNotFound)
}
