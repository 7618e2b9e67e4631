package store

import "sync"

// keyedMutex provides one mutex per string key, created lazily. Repositories
// key it by username (or username plus slot number) so that read-modify-write
// cycles on the same record serialize while operations on different records
// proceed independently.
//
// Mutexes are never removed from the registry; the user population of a
// contest is small and bounded, so the memory cost is negligible next to the
// correctness risk of releasing a mutex another goroutine may still hold.
type keyedMutex struct {
	mus sync.Map // string -> *sync.Mutex
}

// Lock acquires the mutex for key, blocking until it is available, and
// returns the unlock function. The lock must be held only for the duration
// of one read-modify-write cycle — never across caller-side I/O.
func (km *keyedMutex) Lock(key string) func() {
	mu, _ := km.mus.LoadOrStore(key, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
