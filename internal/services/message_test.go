package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellit-io/sellit/internal/common"
	"github.com/sellit-io/sellit/internal/models"
)

func TestSendAndConversation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := &models.User{ID: "u1", Role: models.RoleOwner}
	investor := &models.User{ID: "u2", Role: models.RoleInvestor}

	_, err := f.message.Send(ctx, owner, investor.ID, "i1", "I love this business plan")
	require.NoError(t, err)
	_, err = f.message.Send(ctx, investor, owner.ID, "i1", "Great, tell me more")
	require.NoError(t, err)
	_, err = f.message.Send(ctx, owner, "u3", "", "unrelated thread")
	require.NoError(t, err)

	conv, err := f.message.Conversation(ctx, "u1", "u2")
	require.NoError(t, err)
	require.Len(t, conv, 2)
	assert.Equal(t, "I love this business plan", conv[0].MessageText)
	assert.Equal(t, "Great, tell me more", conv[1].MessageText)

	parts, err := f.message.Participants(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2", "u3"}, parts)
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	f := newFixture(t)
	sender := &models.User{ID: "u1"}

	_, err := f.message.Send(context.Background(), sender, "u2", "", "   ")
	require.ErrorIs(t, err, common.ErrEmptyMessage)
}

func TestSendBlockedByPolicy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sender := &models.User{ID: "u1"}

	_, err := f.message.Send(ctx, sender, "u2", "", "contact me at jane@example.com")
	require.ErrorIs(t, err, common.ErrPolicyBlocked)

	all, err := f.messages.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "a rejected message is never persisted")

	entries, err := f.audit.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.LevelWarn, entries[0].Level)
	assert.Equal(t, "message blocked", entries[0].Event)
}

func TestModerationRoles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sender := &models.User{ID: "u1", Role: models.RoleOwner}
	admin := &models.User{ID: "a1", Role: models.RoleAdmin}

	m, err := f.message.Send(ctx, sender, "u2", "", "hello there")
	require.NoError(t, err)

	require.NoError(t, f.message.Report(ctx, sender, m.ID, "rude"))

	_, err = f.message.SafetyQueue(ctx, sender)
	require.ErrorIs(t, err, common.ErrForbidden)

	queue, err := f.message.SafetyQueue(ctx, admin)
	require.NoError(t, err)
	require.Len(t, queue, 1)

	require.ErrorIs(t, f.message.DismissFlags(ctx, sender, m.ID), common.ErrForbidden)
	require.NoError(t, f.message.DismissFlags(ctx, admin, m.ID))

	queue, err = f.message.SafetyQueue(ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, queue)
}
