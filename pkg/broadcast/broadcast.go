// Package broadcast fans values out to in-process subscribers.
//
// Delivery is non-blocking and keeps only the latest value: a subscriber
// that falls behind skips intermediate values and sees the most recent one.
package broadcast

import (
	"context"
	"sync"
)

// Topic delivers every published value to all current subscribers.
// The zero value is not usable; call NewTopic.
type Topic[V any] struct {
	mu     sync.Mutex
	subs   map[*subscriber[V]]struct{}
	closed bool

	// onEmpty runs after the last subscriber leaves through cancellation.
	onEmpty func()
}

type subscriber[V any] struct {
	ch chan V
}

// NewTopic creates an open topic with no subscribers.
func NewTopic[V any]() *Topic[V] {
	return &Topic[V]{subs: make(map[*subscriber[V]]struct{})}
}

// Subscribe registers a subscriber whose channel already holds initial.
// The channel is closed when ctx is done or the topic is closed.
func (t *Topic[V]) Subscribe(ctx context.Context, initial V) <-chan V {
	sub := &subscriber[V]{ch: make(chan V, 1)}
	sub.ch <- initial

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		close(sub.ch)
		return sub.ch
	}
	t.subs[sub] = struct{}{}
	t.mu.Unlock()

	go func() {
		<-ctx.Done()
		t.remove(sub)
	}()
	return sub.ch
}

// Publish offers v to every subscriber, replacing any value they have not
// yet received. It never blocks.
func (t *Topic[V]) Publish(v V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for sub := range t.subs {
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- v:
		default:
		}
	}
}

// Len returns the number of active subscribers.
func (t *Topic[V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

// Close closes every subscriber channel. Later subscriptions receive only
// their initial value.
func (t *Topic[V]) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	for sub := range t.subs {
		close(sub.ch)
		delete(t.subs, sub)
	}
}

func (t *Topic[V]) remove(sub *subscriber[V]) {
	t.mu.Lock()
	if _, ok := t.subs[sub]; !ok {
		t.mu.Unlock()
		return
	}
	delete(t.subs, sub)
	close(sub.ch)
	empty := len(t.subs) == 0
	t.mu.Unlock()

	if empty && t.onEmpty != nil {
		t.onEmpty()
	}
}
