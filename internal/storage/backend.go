// Package storage implements the namespaced key-value layer the rest of the
// application treats as its database: a physical Backend, the namespace
// prefixing that separates production from sandbox data, the Gateway that
// publishes change notifications on every write, and the Watcher that turns
// filesystem events from other processes into the same notifications.
package storage

// Backend is the physical key-value medium. Implementations must be safe for
// concurrent use within one process; no coordination across processes is
// provided, matching the shared-store model this layer is built around.
type Backend interface {
	// Get returns the raw stored value. ok is false when the key was never
	// written (that is not an error).
	Get(key string) (value string, ok bool, err error)

	// Set writes value under key, overwriting any previous value. A failed
	// write (quota, I/O) is returned as an error; the layer never retries.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string) error

	// Keys lists every stored key that starts with prefix.
	Keys(prefix string) ([]string, error)

	// Close releases backend resources.
	Close() error
}
