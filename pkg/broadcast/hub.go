package broadcast

import (
	"context"
	"sync"
)

// Hub is a set of topics addressed by key. Topics are created on first
// subscription and dropped once they have no subscribers left.
type Hub[K comparable, V any] struct {
	mu     sync.Mutex
	topics map[K]*Topic[V]
}

// NewHub creates an empty hub.
func NewHub[K comparable, V any]() *Hub[K, V] {
	return &Hub[K, V]{topics: make(map[K]*Topic[V])}
}

// Subscribe subscribes to the topic of key. See Topic.Subscribe.
func (h *Hub[K, V]) Subscribe(ctx context.Context, key K, initial V) <-chan V {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.topics[key]
	if !ok {
		t = NewTopic[V]()
		t.onEmpty = func() { h.prune(key, t) }
		h.topics[key] = t
	}
	return t.Subscribe(ctx, initial)
}

// Watched reports whether key has at least one subscriber.
func (h *Hub[K, V]) Watched(key K) bool {
	h.mu.Lock()
	t, ok := h.topics[key]
	h.mu.Unlock()
	return ok && t.Len() > 0
}

// Publish delivers v to the subscribers of key, if any.
func (h *Hub[K, V]) Publish(key K, v V) {
	h.mu.Lock()
	t, ok := h.topics[key]
	h.mu.Unlock()
	if ok {
		t.Publish(v)
	}
}

// Close closes every subscription to key and forgets the topic.
func (h *Hub[K, V]) Close(key K) {
	h.mu.Lock()
	t, ok := h.topics[key]
	delete(h.topics, key)
	h.mu.Unlock()
	if ok {
		t.Close()
	}
}

func (h *Hub[K, V]) prune(key K, t *Topic[V]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// A new subscriber may have joined since the topic emptied.
	if cur, ok := h.topics[key]; ok && cur == t && t.Len() == 0 {
		delete(h.topics, key)
	}
}
