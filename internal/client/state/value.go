// Package state holds observable values shared between the client services
// and the terminal UI.
package state

import "sync"

// Value is a concurrency-safe value whose changes are pushed to subscribers.
// Subscribers run synchronously on the goroutine that changed the value and
// must not call Set or Update themselves.
type Value[T any] struct {
	mu     sync.RWMutex
	v      T
	nextID int
	subs   map[int]func(T)
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial, subs: make(map[int]func(T))}
}

func (s *Value[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

func (s *Value[T]) Set(v T) {
	s.Update(func(T) T { return v })
}

// Update replaces the value with fn(current) and notifies subscribers.
func (s *Value[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	s.v = fn(s.v)
	v := s.v
	subs := make([]func(T), 0, len(s.subs))
	for _, f := range s.subs {
		subs = append(subs, f)
	}
	s.mu.Unlock()

	for _, f := range subs {
		f(v)
	}
	return v
}

// Subscribe registers fn and returns a function that removes it.
func (s *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}
