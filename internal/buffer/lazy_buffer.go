// Package buffer provides a byte buffer that reads from borrowed data until
// it is first written to.
package buffer

import (
	"fmt"
	"slices"

	"github.com/AdrianWangs/go-cow/pkg/cow"
)

// LazyBuffer is a byte sequence that clones its source on the first Append.
// The source must not be modified while the buffer is still borrowing it.
type LazyBuffer struct {
	data *cow.Cow[[]byte]
}

// New wraps data without copying it
func New(data []byte) *LazyBuffer {
	return newLazyBuffer(data, cow.CloneSlice[[]byte, byte])
}

func newLazyBuffer(data []byte, clone cow.CloneFunc[[]byte]) *LazyBuffer {
	return &LazyBuffer{data: cow.NewBorrowed(data, clone)}
}

// Data returns the current contents. Callers must not modify the result.
func (b *LazyBuffer) Data() []byte {
	return b.data.Get()
}

// Append copies the source on the first call, then extends the private copy.
func (b *LazyBuffer) Append(more []byte) {
	p := b.data.ToMut()
	*p = append(*p, more...)
}

// Len returns the buffer's length in bytes
func (b *LazyBuffer) Len() int {
	return len(b.data.Get())
}

// Cloned reports whether the buffer has stopped borrowing its source
func (b *LazyBuffer) Cloned() bool {
	return b.data.IsOwned()
}

// ByteSlice returns a copy of the contents
func (b *LazyBuffer) ByteSlice() []byte {
	return slices.Clone(b.data.Get())
}

// String formats the contents as a list of byte values, e.g. "[0 1 2]"
func (b *LazyBuffer) String() string {
	return fmt.Sprint(b.data.Get())
}
