package services

import (
	"sync"

	"github.com/google/uuid"
)

// AccountLocks is a per-account mutual exclusion guard. Each account gets its
// own mutex, created lazily; the map itself is protected by an outer mutex.
// Locks are never removed: the set of accounts is small and long-lived, and a
// stable mutex identity per account is what makes ordered acquisition safe.
type AccountLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewAccountLocks creates an empty account lock table
func NewAccountLocks() *AccountLocks {
	return &AccountLocks{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (l *AccountLocks) lockFor(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.locks[id]; !exists {
		l.locks[id] = &sync.Mutex{}
	}
	return l.locks[id]
}

// WithAccountsLocked runs fn while holding the locks for both accounts.
// Locks are always acquired in ascending ID order so that two transfers over
// the same pair in opposite directions cannot deadlock. Both locks are
// released on every exit path, including when fn returns an error.
func (l *AccountLocks) WithAccountsLocked(idA, idB uuid.UUID, fn func() error) error {
	if idA == idB {
		lock := l.lockFor(idA)
		lock.Lock()
		defer lock.Unlock()
		return fn()
	}

	first, second := l.lockFor(idA), l.lockFor(idB)
	if idB.String() < idA.String() {
		first, second = second, first
	}

	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()

	return fn()
}
