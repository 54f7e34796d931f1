package cow

import "sync"

// SyncCow guards a Cow shared between goroutines. Reads take the read lock;
// promotion and mutation take the write lock, so concurrent updates of a
// Borrowed value still clone it once.
type SyncCow[T any] struct {
	mutex sync.RWMutex
	cow   *Cow[T]
}

// NewSync wraps c. The caller must stop using c directly.
func NewSync[T any](c *Cow[T]) *SyncCow[T] {
	return &SyncCow[T]{cow: c}
}

// Get returns the current value under the read lock
func (s *SyncCow[T]) Get() T {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.cow.Get()
}

// Variant returns the current variant under the read lock
func (s *SyncCow[T]) Variant() Variant {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.cow.Variant()
}

// IsOwned reports whether the value has been promoted
func (s *SyncCow[T]) IsOwned() bool {
	return s.Variant() == Owned
}

// Update promotes the value if needed and lets fn mutate it in place.
// fn must not retain v after returning.
func (s *SyncCow[T]) Update(fn func(v *T)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	fn(s.cow.ToMut())
}

// IntoOwned takes the value out, leaving a zero Cow behind
func (s *SyncCow[T]) IntoOwned() T {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.cow.IntoOwned()
}
