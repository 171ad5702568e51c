package gate

import (
	"sync"

	"golang.org/x/exp/slices"
)

// VerifiedSet holds the IDs of users that currently have access. It is shared
// between the update handlers and the monitor.
type VerifiedSet struct {
	mu    sync.RWMutex
	users map[int64]struct{}
}

func NewVerifiedSet() *VerifiedSet {
	return &VerifiedSet{
		users: make(map[int64]struct{}),
	}
}

func (s *VerifiedSet) Add(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = struct{}{}
}

func (s *VerifiedSet) Remove(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
}

func (s *VerifiedSet) Contains(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok
}

func (s *VerifiedSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Snapshot returns a sorted copy that is safe to iterate while the set changes.
func (s *VerifiedSet) Snapshot() []int64 {
	s.mu.RLock()
	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	slices.Sort(ids)
	return ids
}
