package agreements

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

func sampleAgreement(id string) models.Agreement {
	return models.Agreement{
		ID:         id,
		IdeaID:     "i1",
		OwnerID:    "u1",
		InvestorID: "u2",
		Terms:      "15% profit share",
		Status:     models.AgreementDraft,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestCreateAndFind(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, sampleAgreement("a1")))

	got, err := s.FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, models.AgreementDraft, got.Status)

	_, err = s.FindByID(ctx, "ghost")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSetTermsAndStatus(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, sampleAgreement("a1")))
	require.NoError(t, s.SetTerms(ctx, "a1", "20% profit share"))
	require.NoError(t, s.SetStatus(ctx, "a1", models.AgreementPendingInvestor))

	got, err := s.FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "20% profit share", got.Terms)
	assert.Equal(t, models.AgreementPendingInvestor, got.Status)

	require.ErrorIs(t, s.SetStatus(ctx, "ghost", models.AgreementSigned), common.ErrNotFound)
}
