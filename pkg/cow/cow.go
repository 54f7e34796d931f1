// Package cow implements a copy-on-write value holder.
//
// A Cow starts either Borrowed, sharing storage with data owned elsewhere,
// or Owned, holding a private value. The first request for mutable access or
// for ownership of a Borrowed value clones it; after that the Cow is Owned
// for the rest of its life and never clones again.
//
// Go has no borrow checker. While a Cow is Borrowed the caller must not
// mutate the data it was built from. The garbage collector keeps the
// referenced data alive, so no lifetime obligation exists beyond that.
package cow

import (
	"fmt"

	"github.com/AdrianWangs/go-cow/pkg/logger"
)

// Variant identifies which side of the copy-on-write a Cow is on
type Variant int

const (
	// Borrowed values share storage with their source
	Borrowed Variant = iota
	// Owned values hold storage nobody else references
	Owned
)

func (v Variant) String() string {
	switch v {
	case Borrowed:
		return "Borrowed"
	case Owned:
		return "Owned"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// CloneFunc returns a copy of v that shares no mutable storage with it.
// A nil CloneFunc copies by assignment, which is only correct for types
// without pointers, slices or maps.
type CloneFunc[T any] func(v T) T

// Cow holds a value that is either borrowed or owned.
// The zero value is a Borrowed zero T with no CloneFunc.
// A Cow must not be copied after first use.
type Cow[T any] struct {
	val     T
	variant Variant
	clone   CloneFunc[T]
}

// NewBorrowed wraps v without copying it. clone is used on promotion.
func NewBorrowed[T any](v T, clone CloneFunc[T]) *Cow[T] {
	return &Cow[T]{val: v, variant: Borrowed, clone: clone}
}

// NewOwned takes v as the Cow's private value. No copy is made.
func NewOwned[T any](v T) *Cow[T] {
	return &Cow[T]{val: v, variant: Owned}
}

// Get returns the held value regardless of variant.
// The result must be treated as read-only.
func (c *Cow[T]) Get() T {
	return c.val
}

// Variant reports the current variant
func (c *Cow[T]) Variant() Variant {
	return c.variant
}

// IsBorrowed reports whether the Cow still shares its source's storage
func (c *Cow[T]) IsBorrowed() bool {
	return c.variant == Borrowed
}

// IsOwned reports whether the Cow holds a private value
func (c *Cow[T]) IsOwned() bool {
	return c.variant == Owned
}

// ToMut returns a pointer to the owned value, cloning a Borrowed value
// first. Only the first call on a Borrowed Cow clones.
func (c *Cow[T]) ToMut() *T {
	if c.variant == Borrowed {
		c.val = c.cloneVal()
		c.variant = Owned
		c.clone = nil
	}
	return &c.val
}

// IntoOwned hands the value to the caller: a clone when Borrowed, the owned
// value itself when Owned. The Cow is reset to its zero value afterwards.
func (c *Cow[T]) IntoOwned() T {
	var v T
	if c.variant == Borrowed {
		v = c.cloneVal()
	} else {
		v = c.val
	}
	*c = Cow[T]{}
	return v
}

// String formats the held value with fmt's %v verb
func (c *Cow[T]) String() string {
	return fmt.Sprint(c.val)
}

func (c *Cow[T]) cloneVal() T {
	if logger.IsDebugEnabled() {
		logger.WithFields(logger.Fields{
			"type": fmt.Sprintf("%T", c.val),
		}).Debug("cow: cloning borrowed value")
	}
	if c.clone == nil {
		return c.val
	}
	return c.clone(c.val)
}
