// Package syncs provides synchronization primitives and utilities.
//
// The main primitive is [KeyLock], a mutex partitioned by key. It lets callers
// associate mutual exclusion with the identity of a value (for example a
// pointer to shared state) rather than with whoever happens to hold the lock.
package syncs
