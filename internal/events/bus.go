// Package events provides a small in-process change feed for forum entities.
//
// Repos stay persistence-only; the service layer publishes an Event after
// each successful mutation. The moderation dashboard subscribes and applies
// the increments it receives (a created question bumps one counter, a deleted
// answer decrements another) instead of refetching every collection whenever
// anything changes.
//
// The bus is deliberately process-local: subscribers are registered from the
// same binary that performs the writes, so there is no broker, no wire
// format, and no delivery guarantee beyond "subscribers that keep up see
// every event". Slow subscribers drop events rather than block publishers.
package events

import (
	"sync"
	"time"
)

// Kind identifies the entity collection an event belongs to.
type Kind string

// Op identifies what happened to the entity.
type Op string

const (
	KindUser     Kind = "user"
	KindQuestion Kind = "question"
	KindAnswer   Kind = "answer"
	KindMessage  Kind = "message"

	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Event is a single entity change. Title carries a short human-readable
// label (question title, answer snippet) for activity feeds; it may be empty
// for updates and deletes.
type Event struct {
	Kind       Kind      `json:"kind"`
	Op         Op        `json:"op"`
	ID         string    `json:"id"`
	ActorName  string    `json:"actor_name,omitempty"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Bus fans events out to subscribers. The zero value is not usable; call
// NewBus. All methods are safe for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]chan Event
	next int
}

// subBuffer is the per-subscriber channel depth. A subscriber that falls
// this far behind starts losing events.
const subBuffer = 64

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Publish delivers ev to every current subscriber without blocking. Events
// for subscribers with a full buffer are dropped.
func (b *Bus) Publish(ev Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber is not keeping up; drop rather than stall writes.
		}
	}
}

// Subscribe registers a new subscriber and returns its channel plus a cancel
// function. The channel is closed when cancel is called; cancel is
// idempotent.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subBuffer)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Len returns the number of active subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
