package services

import (
	"sync"

	"github.com/google/uuid"
)

// ImportLock serializes imports per user. Entries are dropped once no import holds or waits on them.
type ImportLock struct {
	mu    sync.Mutex
	users map[uuid.UUID]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewImportLock() *ImportLock {
	return &ImportLock{users: make(map[uuid.UUID]*userLock)}
}

// Lock blocks until the user's lock is held and returns its release func
func (l *ImportLock) Lock(userID uuid.UUID) func() {
	l.mu.Lock()
	ul, ok := l.users[userID]
	if !ok {
		ul = &userLock{}
		l.users[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			ul.mu.Unlock()

			l.mu.Lock()
			ul.refs--
			if ul.refs == 0 {
				delete(l.users, userID)
			}
			l.mu.Unlock()
		})
	}
}

func (l *ImportLock) active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.users)
}
