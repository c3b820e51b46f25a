package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellit-io/sellit/internal/bus"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	return NewGateway(NewMemoryBackend(), bus.New())
}

func TestGateway_RoundTrip(t *testing.T) {
	g := newTestGateway(t)

	for _, v := range []string{"[]", "", `[{"id":"m1"}]`} {
		require.NoError(t, g.Set(KeyMessages, v))
		got, ok, err := g.Get(KeyMessages)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestGateway_SetFiresExactlyOneEvent(t *testing.T) {
	g := newTestGateway(t)

	var events []bus.Event
	g.Changes().Subscribe(func(e bus.Event) { events = append(events, e) })

	require.NoError(t, g.Set(KeyUsers, "[]"))

	require.Len(t, events, 1)
	assert.Equal(t, KeyUsers, events[0].Key)
}

func TestGateway_RemoveFiresNoEvent(t *testing.T) {
	g := newTestGateway(t)
	require.NoError(t, g.Set(KeySession, "user_1"))

	var n int
	g.Changes().Subscribe(func(bus.Event) { n++ })

	require.NoError(t, g.Remove(KeySession))
	assert.Equal(t, 0, n)

	_, ok, err := g.Get(KeySession)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGateway_NamespaceIsolation(t *testing.T) {
	g := newTestGateway(t)

	require.NoError(t, g.Set(KeyUsers, "production"))

	require.NoError(t, g.SetSandbox(true))
	_, ok, err := g.Get(KeyUsers)
	require.NoError(t, err)
	assert.False(t, ok, "production data must be invisible in sandbox mode")

	require.NoError(t, g.Set(KeyUsers, "sandbox"))

	require.NoError(t, g.SetSandbox(false))
	got, ok, err := g.Get(KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "production", got, "toggling the flag switches datasets, it does not migrate")
}

func TestGateway_ClearNamespace(t *testing.T) {
	g := newTestGateway(t)

	require.NoError(t, g.Set(KeyUsers, "production users"))
	require.NoError(t, g.SetSandbox(true))
	require.NoError(t, g.Set(KeyUsers, "sandbox users"))

	// clear the sandbox namespace only
	require.NoError(t, g.ClearNamespace())
	_, ok, err := g.Get(KeyUsers)
	require.NoError(t, err)
	assert.False(t, ok)

	// production data survived
	require.NoError(t, g.SetSandbox(false))
	got, ok, err := g.Get(KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "production users", got)
}

func TestGateway_ClearNamespace_ProductionLeavesSandbox(t *testing.T) {
	b := NewMemoryBackend()
	g := NewGateway(b, bus.New())

	require.NoError(t, g.Set(KeyUsers, "production users"))
	require.NoError(t, b.Set(PrefixSandbox+KeyUsers, "sandbox users"))

	require.NoError(t, g.ClearNamespace())

	_, ok, err := g.Get(KeyUsers)
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := b.Get(PrefixSandbox + KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "sandbox users", v)
}

func TestGateway_ClearNamespace_Idempotent(t *testing.T) {
	g := newTestGateway(t)
	require.NoError(t, g.Set(KeyIdeas, "[]"))

	require.NoError(t, g.ClearNamespace())
	require.NoError(t, g.ClearNamespace())

	_, ok, err := g.Get(KeyIdeas)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNamespacer_DefaultIsProduction(t *testing.T) {
	ns := NewNamespacer(NewMemoryBackend())
	assert.False(t, ns.Sandbox())
	assert.Equal(t, PrefixProduction, ns.Prefix())
}

func TestNamespacer_Toggle(t *testing.T) {
	ns := NewNamespacer(NewMemoryBackend())

	require.NoError(t, ns.SetSandbox(true))
	assert.Equal(t, PrefixSandbox, ns.Prefix())

	require.NoError(t, ns.SetSandbox(false))
	assert.Equal(t, PrefixProduction, ns.Prefix())
}
