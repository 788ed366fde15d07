package uistate

import (
	"sync"

	"github.com/google/uuid"
)

type subscription struct {
	id uuid.UUID
	fn func(State)
}

// Store holds the current State and fans snapshots out to subscribers.
// It is safe for concurrent use. Subscribers are called outside the lock, one snapshot at
// a time, in the order the updates were applied. They must not block.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  []subscription

	// pending holds snapshots not yet delivered; draining is set while some Update call
	// is delivering them.
	pending  []State
	draining bool
}

func NewStore(initial State) *Store {
	return &Store{state: initial.clone()}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Update applies fn to the state and notifies subscribers with the result. When another
// Update is already notifying, including one further up the same call stack, the snapshot
// is queued behind it and delivered by that call.
func (s *Store) Update(fn func(*State)) State {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state.clone()
	s.pending = append(s.pending, snap)
	if s.draining {
		s.mu.Unlock()
		return snap
	}
	s.draining = true
	s.mu.Unlock()

	s.drain()
	return snap
}

func (s *Store) drain() {
	done := false
	defer func() {
		if !done {
			// A subscriber panicked; let the next Update deliver what is left.
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
		}
	}()

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.mu.Unlock()
			done = true
			return
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		subs := make([]subscription, len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(next.clone())
		}
	}
}

// Subscribe registers fn and returns a function that removes it. Calling the returned
// function more than once is a no-op.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	id := uuid.New()
	s.mu.Lock()
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
