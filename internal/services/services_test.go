package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sellit-io/sellit/internal/bus"
	"github.com/sellit-io/sellit/internal/logging"
	"github.com/sellit-io/sellit/internal/repositories/agreements"
	"github.com/sellit-io/sellit/internal/repositories/ideas"
	"github.com/sellit-io/sellit/internal/repositories/logs"
	"github.com/sellit-io/sellit/internal/repositories/messages"
	"github.com/sellit-io/sellit/internal/repositories/users"
	"github.com/sellit-io/sellit/internal/storage"
)

// fixture wires every service over a fresh in-memory backend.
type fixture struct {
	gw         *storage.Gateway
	users      users.Repository
	ideas      ideas.Repository
	messages   messages.Repository
	agreements agreements.Repository
	logs       logs.Repository

	audit     AuditService
	auth      AuthService
	idea      IdeaService
	message   MessageService
	agreement AgreementService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gw := storage.NewGateway(storage.NewMemoryBackend(), bus.New())

	f := &fixture{
		gw:         gw,
		users:      users.NewStore(gw),
		ideas:      ideas.NewStore(gw),
		messages:   messages.NewStore(gw),
		agreements: agreements.NewStore(gw),
		logs:       logs.NewStore(gw),
	}
	f.audit = NewAuditService(f.logs, logging.NewDiscard())
	f.auth = NewAuthService(gw, f.users, f.audit)
	f.idea = NewIdeaService(f.ideas, f.audit)
	f.message = NewMessageService(f.messages, f.audit)
	f.agreement = NewAgreementService(f.agreements, f.audit)
	return f
}

func (f *fixture) seed(t *testing.T, ctx context.Context) {
	t.Helper()
	require.NoError(t, SeedDemoUsers(ctx, f.gw, f.users))
}
