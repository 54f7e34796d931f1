// Package text holds string helpers that avoid allocating when the input
// already satisfies them.
package text

import (
	"strings"

	"github.com/AdrianWangs/go-cow/pkg/cow"
)

// RemoveWhitespaces strips every ' ' from s. Input without spaces comes back
// Borrowed and shares s's storage; otherwise the result is a new Owned string.
// Tabs, newlines and other Unicode spaces are left alone.
func RemoveWhitespaces(s string) *cow.Cow[string] {
	if !strings.Contains(s, " ") {
		return cow.BorrowString(s)
	}
	return cow.NewOwned(strings.ReplaceAll(s, " ", ""))
}
