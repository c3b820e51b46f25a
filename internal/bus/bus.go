// Package bus implements the process-wide change notification channel.
//
// Every write through the storage gateway publishes one Event carrying the
// logical key that changed. Cross-process changes observed by the store
// watcher are republished on the same bus, so subscribers see local and
// remote writes uniformly and re-read only the collections they care about.
package bus

import "sync"

// Event signals that the value under a logical key changed. It carries no
// version or payload; observers are expected to re-read the key.
type Event struct {
	Key string
}

// Handler receives change events. Handlers run synchronously in the
// publisher's goroutine and must not block.
type Handler func(Event)

// Bus is a minimal publish-subscribe hub. The zero value is not usable;
// construct with New.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[int]Handler
}

func New() *Bus {
	return &Bus{subs: make(map[int]Handler)}
}

// Subscribe registers h and returns a cancel function that removes the
// subscription. Cancel is idempotent.
func (b *Bus) Subscribe(h Handler) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers e to every current subscriber, synchronously. The
// subscriber set is snapshotted first, so handlers may subscribe or cancel
// without deadlocking.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	snapshot := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		snapshot = append(snapshot, h)
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(e)
	}
}

// Len reports the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
