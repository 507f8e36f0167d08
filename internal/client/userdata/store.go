package userdata

import "sync"

// Store is a subscribable container for the current UserProfile.
//
// Set and Reset replace the value wholesale and call every subscriber
// before returning. Writers are serialized, so subscribers observe each
// value in order and never a partial one. Subscribers must not call Set or
// Reset themselves.
type Store struct {
	writeMu sync.Mutex

	mu     sync.RWMutex
	value  UserProfile
	nextID int
	subs   map[int]func(UserProfile)
}

// NewStore returns a store holding the default profile.
func NewStore() *Store {
	return &Store{value: Default(), subs: make(map[int]func(UserProfile))}
}

// Get returns a copy of the current value.
func (s *Store) Get() UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value.clone()
}

// Set replaces the held value. No validation is done.
func (s *Store) Set(v UserProfile) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.value = v.clone()
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(v.clone())
	}
}

// Reset replaces the held value with Default.
func (s *Store) Reset() {
	s.Set(Default())
}

// Subscribe registers fn and calls it immediately with the current value.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(UserProfile)) (unsubscribe func()) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	current := s.value.clone()
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// snapshotSubs returns subscribers in registration order. Caller holds mu.
func (s *Store) snapshotSubs() []func(UserProfile) {
	out := make([]func(UserProfile), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
