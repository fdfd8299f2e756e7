// Package lock serializes commands against a single audit across goroutines
// (Local) or processes (Redis).
package lock

import (
	"context"
	"sync"

	"hsse/pkg/platform/sentinel"
)

// Release frees a held lock. It is safe to call more than once.
type Release func()

// Local is an in-process keyed lock. Waiters give up when their context ends.
type Local struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch      chan struct{}
	holders int
}

func NewLocal() *Local {
	return &Local{slots: make(map[string]*slot)}
}

// Acquire blocks until key is free or ctx is done, in which case it returns
// sentinel.ErrLocked.
func (l *Local) Acquire(ctx context.Context, key string) (Release, error) {
	l.mu.Lock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.holders++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.drop(key, s)
		return nil, sentinel.ErrLocked
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.drop(key, s)
		})
	}, nil
}

func (l *Local) drop(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.holders--
	if s.holders == 0 {
		delete(l.slots, key)
	}
}
