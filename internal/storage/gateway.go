package storage

import (
	"fmt"
	"strings"

	"github.com/sellit-io/sellit/internal/bus"
)

// Gateway is the single entry point to the namespaced key space. Every
// consumer receives it by reference; nothing else touches the Backend
// directly. Set publishes exactly one change event per call; Remove
// publishes none. The asymmetry is inherited from the system this layer
// models and is preserved, not fixed.
type Gateway struct {
	backend Backend
	ns      *Namespacer
	changes *bus.Bus
}

// NewGateway binds a backend to a change bus.
func NewGateway(b Backend, changes *bus.Bus) *Gateway {
	return &Gateway{backend: b, ns: NewNamespacer(b), changes: changes}
}

// Changes exposes the notification bus for subscribers.
func (g *Gateway) Changes() *bus.Bus { return g.changes }

// Sandbox reports whether the gateway currently resolves keys in the sandbox
// namespace.
func (g *Gateway) Sandbox() bool { return g.ns.Sandbox() }

// SetSandbox flips the namespace switch for all subsequent operations.
func (g *Gateway) SetSandbox(on bool) error { return g.ns.SetSandbox(on) }

// Get returns the raw value stored under the logical key. ok is false for a
// key that was never written in the active namespace.
func (g *Gateway) Get(key string) (string, bool, error) {
	return g.backend.Get(g.ns.Prefix() + key)
}

// Set persists value under the logical key and then notifies subscribers,
// synchronously, before returning. A failed write publishes nothing.
func (g *Gateway) Set(key, value string) error {
	if err := g.backend.Set(g.ns.Prefix()+key, value); err != nil {
		return err
	}
	g.changes.Publish(bus.Event{Key: key})
	return nil
}

// Remove deletes the logical key without notifying subscribers.
func (g *Gateway) Remove(key string) error {
	return g.backend.Remove(g.ns.Prefix() + key)
}

// ClearNamespace removes every key under the active prefix, leaving the
// other namespace untouched. Calling it on an already-empty namespace is a
// no-op.
func (g *Gateway) ClearNamespace() error {
	prefix := g.ns.Prefix()
	keys, err := g.backend.Keys(prefix)
	if err != nil {
		return fmt.Errorf("clear namespace: %w", err)
	}
	for _, k := range keys {
		// The production prefix is itself a prefix of the sandbox one, so a
		// production clear must skip sandbox keys.
		if prefix == PrefixProduction && strings.HasPrefix(k, PrefixSandbox) {
			continue
		}
		if err := g.backend.Remove(k); err != nil {
			return fmt.Errorf("clear namespace: %w", err)
		}
	}
	return nil
}
