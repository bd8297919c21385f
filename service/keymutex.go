package service

import "sync"

// keyMutex hands out one mutex per pokemon id, so writes to the same
// pokemon are serialized (keeping broadcasts in commit order) while
// writes to different pokemon run in parallel.
type keyMutex struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newKeyMutex() *keyMutex {
	return &keyMutex{locks: map[int]*sync.Mutex{}}
}

// lock acquires the mutex for id and returns it for the caller to
// unlock. Entries are kept once created; the map grows with the number
// of distinct ids ever written, which is fine at catalog scale.
func (k *keyMutex) lock(id int) *sync.Mutex {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m
}
