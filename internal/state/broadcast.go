package state

import "sync"

// Subscription identifies a registered Broadcaster callback.
type Subscription uint64

// Broadcaster is an observer list that remembers the last published value.
// A new subscriber receives that value immediately, then every later one.
// The zero value is ready to use and replays the zero T.
//
// Callbacks run on the goroutine that calls Publish (or Subscribe, for the
// replay) and never under the broadcaster's lock, so a callback may publish
// to other broadcasters or subscribe again without deadlocking.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	last   T
	nextID Subscription
	order  []Subscription
	subs   map[Subscription]func(T)
}

// NewBroadcaster returns a Broadcaster whose replay value is initial.
func NewBroadcaster[T any](initial T) *Broadcaster[T] {
	return &Broadcaster[T]{last: initial}
}

// Subscribe registers fn and delivers the last published value to it before
// returning.
func (b *Broadcaster[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return 0
	}
	b.mu.Lock()
	if b.subs == nil {
		b.subs = make(map[Subscription]func(T))
	}
	b.nextID++
	id := b.nextID
	b.subs[id] = fn
	b.order = append(b.order, id)
	last := b.last
	b.mu.Unlock()

	fn(last)
	return id
}

// Unsubscribe removes a callback. Unknown subscriptions are ignored.
func (b *Broadcaster[T]) Unsubscribe(id Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[id]; !ok {
		return
	}
	delete(b.subs, id)
	for i, sub := range b.order {
		if sub == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Publish stores v as the replay value and delivers it to every subscriber
// in subscription order.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	b.last = v
	fns := make([]func(T), 0, len(b.order))
	for _, id := range b.order {
		fns = append(fns, b.subs[id])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// PublishNewer is Publish for values that can arrive out of order. v is
// stored and delivered only when newer(v, last) holds; otherwise it is
// dropped and PublishNewer returns false. The check and the store happen
// under one lock, so the replay value never moves backwards.
func (b *Broadcaster[T]) PublishNewer(v T, newer func(v, last T) bool) bool {
	b.mu.Lock()
	if !newer(v, b.last) {
		b.mu.Unlock()
		return false
	}
	b.last = v
	fns := make([]func(T), 0, len(b.order))
	for _, id := range b.order {
		fns = append(fns, b.subs[id])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
	return true
}

// Last returns the most recently published value.
func (b *Broadcaster[T]) Last() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// Len returns the number of registered subscribers.
func (b *Broadcaster[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.order)
}
