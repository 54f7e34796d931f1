package cow

import (
	"slices"
	"strings"
)

// Cloner is implemented by types that know how to deep copy themselves
type Cloner[T any] interface {
	Clone() T
}

// BorrowString borrows s. Promotion copies it with strings.Clone, so the
// owned string never shares memory with s.
func BorrowString(s string) *Cow[string] {
	return NewBorrowed(s, strings.Clone)
}

// BorrowSlice borrows s. Promotion copies the elements into a new backing
// array; appending to the owned slice never writes into s's spare capacity.
func BorrowSlice[S ~[]E, E any](s S) *Cow[S] {
	return NewBorrowed(s, CloneSlice[S, E])
}

// BorrowCloner borrows v and promotes it with v.Clone().
func BorrowCloner[T Cloner[T]](v T) *Cow[T] {
	return NewBorrowed(v, func(v T) T { return v.Clone() })
}

// CloneSlice is the CloneFunc behind BorrowSlice. It keeps nil as nil and
// always detaches from the source array.
func CloneSlice[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}
