// Package user defines a record whose name fields may either borrow the
// caller's strings or own private copies of them.
package user

import (
	"strings"

	"github.com/AdrianWangs/go-cow/pkg/cow"
)

// User holds a first and last name. Fields are read-only after construction.
type User struct {
	firstName *cow.Cow[string]
	lastName  *cow.Cow[string]
}

// NewOwned builds a User holding its own copies of both names
func NewOwned(firstName, lastName string) *User {
	return &User{
		firstName: cow.NewOwned(strings.Clone(firstName)),
		lastName:  cow.NewOwned(strings.Clone(lastName)),
	}
}

// NewBorrowed builds a User that shares storage with the given names
func NewBorrowed(firstName, lastName string) *User {
	return &User{
		firstName: cow.BorrowString(firstName),
		lastName:  cow.BorrowString(lastName),
	}
}

// FirstName returns the first name, borrowed or owned
func (u *User) FirstName() string {
	return u.firstName.Get()
}

// LastName returns the last name, borrowed or owned
func (u *User) LastName() string {
	return u.lastName.Get()
}

// Owned reports whether both names are private copies
func (u *User) Owned() bool {
	return u.firstName.IsOwned() && u.lastName.IsOwned()
}

// String returns "first last"
func (u *User) String() string {
	return u.FirstName() + " " + u.LastName()
}
