package user

import (
	"strings"
	"testing"
	"unsafe"
)

func TestNewOwned(t *testing.T) {
	first, last := strings.Clone("first_name"), strings.Clone("last_name")
	u := NewOwned(first, last)

	if u.FirstName() != "first_name" || u.LastName() != "last_name" {
		t.Fatalf("names = %q %q, want %q %q", u.FirstName(), u.LastName(), "first_name", "last_name")
	}
	if !u.Owned() {
		t.Fatalf("NewOwned user reports borrowed fields")
	}
	if unsafe.StringData(u.FirstName()) == unsafe.StringData(first) {
		t.Fatalf("owned first name shares storage with the argument")
	}
}

func TestNewBorrowed(t *testing.T) {
	first, last := strings.Clone("Eve"), strings.Clone("Monepenny")
	u := NewBorrowed(first, last)

	if u.Owned() {
		t.Fatalf("NewBorrowed user reports owned fields")
	}
	if unsafe.StringData(u.FirstName()) != unsafe.StringData(first) ||
		unsafe.StringData(u.LastName()) != unsafe.StringData(last) {
		t.Fatalf("borrowed names do not share storage with the arguments")
	}
	if got := u.String(); got != "Eve Monepenny" {
		t.Fatalf("String() = %q, want %q", got, "Eve Monepenny")
	}
}

func TestAccessorsAgreeAcrossVariants(t *testing.T) {
	owned := NewOwned("a", "")
	borrowed := NewBorrowed("a", "")

	if owned.FirstName() != borrowed.FirstName() || owned.LastName() != borrowed.LastName() {
		t.Fatalf("owned %q and borrowed %q users disagree", owned, borrowed)
	}
}
