// Package event carries in-process change signals between the stores and
// anything rendering their collections.  It replaces the source product's
// window-level CustomEvent broadcasts with an explicit bus: one typed
// channel per record kind, full re-read on every signal, no payloads and no
// partial updates.
package event

import "sync"

// Kind names a record-kind collection.
type Kind string

const (
	KindFavorites     Kind = "favorites"
	KindReviews       Kind = "reviews"
	KindComments      Kind = "comments"
	KindLikes         Kind = "likes"
	KindReservations  Kind = "reservations"
	KindNotifications Kind = "notifications"
)

// Bus fans a "collection changed" signal out to subscribers of a kind.
// Publish never blocks: a subscriber that already has a signal pending
// coalesces further ones, which is safe because consumers re-read the whole
// collection per signal anyway.
type Bus struct {
	mu   sync.Mutex
	subs map[Kind]map[int]chan struct{}
	next int
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Kind]map[int]chan struct{})}
}

// Subscribe registers interest in kind.  The returned cancel function must
// be called when the subscriber goes away; it is the only cleanup the bus
// needs.
func (b *Bus) Subscribe(kind Kind) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	id := b.next
	b.next++
	if b.subs[kind] == nil {
		b.subs[kind] = make(map[int]chan struct{})
	}
	b.subs[kind][id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs[kind], id)
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish signals every subscriber of kind.
func (b *Bus) Publish(kind Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[kind] {
		select {
		case ch <- struct{}{}:
		default: // a signal is already pending; coalesce
		}
	}
}
