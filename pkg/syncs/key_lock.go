package syncs

import "sync"

// KeyLocker provides per-key mutual exclusion.
// See [KeyLock] for an implementation.
type KeyLocker[K comparable] interface {
	Lock(key K)
	Unlock(key K)
}

// KeyLock is a per-key mutex that allows independent keys to be locked
// concurrently while serializing access to the same key. Create instances with
// [NewKeyLock], or use the zero value directly.
//
// Entries are reference counted and dropped once no goroutine holds or waits
// for the key, so keys may be short-lived values such as pointers.
type KeyLock[K comparable] struct {
	locks map[K]*keyEntry
	mu    sync.Mutex
}

type keyEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyLock creates a new [KeyLock].
func NewKeyLock[K comparable]() *KeyLock[K] {
	return &KeyLock[K]{
		locks: make(map[K]*keyEntry),
	}
}

// acquire returns the entry for key, registering the caller as a reference.
func (kl *KeyLock[K]) acquire(key K) *keyEntry {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	if kl.locks == nil {
		kl.locks = make(map[K]*keyEntry)
	}

	e, ok := kl.locks[key]
	if !ok {
		e = &keyEntry{}
		kl.locks[key] = e
	}

	e.refs++

	return e
}

// release drops the caller's reference to key and returns its entry.
func (kl *KeyLock[K]) release(key K) *keyEntry {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	e, ok := kl.locks[key]
	if !ok {
		panic("syncs: unlock of unlocked key")
	}

	e.refs--
	if e.refs == 0 {
		delete(kl.locks, key)
	}

	return e
}

// Lock acquires the mutex for the given key, blocking if it is already held.
func (kl *KeyLock[K]) Lock(key K) {
	kl.acquire(key).mu.Lock()
}

// Unlock releases the mutex for the given key. It panics if the key is not
// locked.
func (kl *KeyLock[K]) Unlock(key K) {
	kl.release(key).mu.Unlock()
}

// Len returns the number of keys that are currently held or waited on.
func (kl *KeyLock[K]) Len() int {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	return len(kl.locks)
}
