// Package cloner supplies deep-copy strategies for cow.Cow values whose type
// has no Clone method of its own.
package cloner

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/proto"

	"github.com/AdrianWangs/go-cow/pkg/cow"
)

// Proto clones protobuf messages with proto.Clone
func Proto[M proto.Message]() cow.CloneFunc[M] {
	return func(m M) M {
		// proto.Clone of a nil message yields a nil interface
		c, _ := proto.Clone(m).(M)
		return c
	}
}

// BorrowProto borrows m until the first mutation
func BorrowProto[M proto.Message](m M) *cow.Cow[M] {
	return cow.NewBorrowed(m, Proto[M]())
}

// Msgpack deep copies v by encoding it with msgpack and decoding the result
// into a fresh value. Interface-held values are decoded loosely so numbers
// keep a fixed width. The round trip is still lossy in these cases:
//   - unexported fields are dropped
//   - integers held in interfaces come back as int64 or uint64, floats as float64
//   - time.Time values come back in UTC; the instant is kept, the zone is not
//
// Types whose fields avoid all three are copied exactly.
// It panics if T cannot be encoded, which is a programming error.
func Msgpack[T any]() cow.CloneFunc[T] {
	return func(v T) T {
		b, err := msgpack.Marshal(&v)
		if err != nil {
			panic(fmt.Errorf("cloner: encode %T: %w", v, err))
		}
		dec := msgpack.NewDecoder(bytes.NewReader(b))
		dec.UseLooseInterfaceDecoding(true)
		var out T
		if err := dec.Decode(&out); err != nil {
			panic(fmt.Errorf("cloner: decode %T: %w", out, err))
		}
		return out
	}
}

// BorrowMsgpack borrows v and deep copies it through msgpack on promotion.
// See Msgpack for the values that do not survive the copy unchanged.
func BorrowMsgpack[T any](v T) *cow.Cow[T] {
	return cow.NewBorrowed(v, Msgpack[T]())
}
