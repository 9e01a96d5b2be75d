// Package hub fans out "comments changed" notifications per recipe to the
// WatchComments streams of this server process.
package hub

import "sync"

// Hub is safe for concurrent use. Notifications carry no payload: a woken
// subscriber re-reads the comment list, so bursts coalesce into one wake-up.
type Hub struct {
	mu   sync.Mutex
	subs map[int64]map[chan struct{}]struct{}
}

func New() *Hub {
	return &Hub{subs: make(map[int64]map[chan struct{}]struct{})}
}

// Subscribe registers interest in recipeID. The returned cancel func must be
// called once the subscriber is done; the channel is never closed.
func (h *Hub) Subscribe(recipeID int64) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	set, ok := h.subs[recipeID]
	if !ok {
		set = make(map[chan struct{}]struct{})
		h.subs[recipeID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[recipeID], ch)
			if len(h.subs[recipeID]) == 0 {
				delete(h.subs, recipeID)
			}
		})
	}
	return ch, cancel
}

// Publish wakes every subscriber of recipeID without blocking.
func (h *Hub) Publish(recipeID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[recipeID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribers reports the number of active subscriptions to recipeID.
func (h *Hub) Subscribers(recipeID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[recipeID])
}
