package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
)

var (
	owner    = &models.User{ID: "owner-1", Role: models.RoleOwner}
	investor = &models.User{ID: "inv-1", Role: models.RoleInvestor}
	stranger = &models.User{ID: "who-1", Role: models.RoleInvestor}
)

func draft(t *testing.T, f *fixture) *models.Agreement {
	t.Helper()
	a, err := f.agreement.Draft(context.Background(), owner, "i1", owner.ID, investor.ID, "15% profit share")
	require.NoError(t, err)
	return a
}

func TestSigningOwnerFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := draft(t, f)

	a, err := f.agreement.Sign(ctx, owner, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AgreementPendingInvestor, a.Status)

	a, err = f.agreement.Sign(ctx, investor, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AgreementSigned, a.Status)

	_, err = f.agreement.Sign(ctx, owner, a.ID)
	require.ErrorIs(t, err, common.ErrAlreadySigned)
}

func TestSigningInvestorFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := draft(t, f)

	a, err := f.agreement.Sign(ctx, investor, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AgreementPendingOwner, a.Status)

	a, err = f.agreement.Sign(ctx, owner, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AgreementSigned, a.Status)
}

func TestSigningRestrictions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := draft(t, f)

	_, err := f.agreement.Sign(ctx, stranger, a.ID)
	require.ErrorIs(t, err, common.ErrForbidden, "non-party cannot sign")

	_, err = f.agreement.Sign(ctx, owner, a.ID)
	require.NoError(t, err)
	_, err = f.agreement.Sign(ctx, owner, a.ID)
	require.ErrorIs(t, err, common.ErrForbidden, "a party cannot sign twice")
}

func TestTermsFreezeAfterFirstSignature(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := draft(t, f)

	require.NoError(t, f.agreement.SetTerms(ctx, investor, a.ID, "20% profit share"))
	require.ErrorIs(t, f.agreement.SetTerms(ctx, stranger, a.ID, "99%"), common.ErrForbidden)

	_, err := f.agreement.Sign(ctx, owner, a.ID)
	require.NoError(t, err)
	require.ErrorIs(t, f.agreement.SetTerms(ctx, investor, a.ID, "25%"), common.ErrAlreadySigned)

	got, err := f.agreements.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "20% profit share", got.Terms)
}

func TestAgreementListScoping(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft(t, f)

	mine, err := f.agreement.List(ctx, investor)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := f.agreement.List(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := f.agreement.List(ctx, &models.User{ID: "a1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
