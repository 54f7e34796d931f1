package buffer

import (
	"bytes"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func countingBuffer(data []byte, calls *int) *LazyBuffer {
	return newLazyBuffer(data, func(b []byte) []byte {
		*calls++
		return slices.Clone(b)
	})
}

func TestLazyBufferScenario(t *testing.T) {
	src := make([]byte, 10)
	calls := 0
	buf := countingBuffer(src, &calls)

	if buf.Cloned() {
		t.Fatalf("new buffer already cloned")
	}
	if &buf.Data()[0] != &src[0] {
		t.Fatalf("Data() before Append must return the source")
	}

	buf.Append([]byte{1, 2, 3})
	buf.Append([]byte{4, 5, 6})

	want := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6}
	if diff := cmp.Diff(want, buf.Data()); diff != "" {
		t.Fatalf("Data() mismatch (-want +got):\n%s", diff)
	}
	if calls != 1 {
		t.Fatalf("clone calls = %d, want 1", calls)
	}
	if !bytes.Equal(src, make([]byte, 10)) {
		t.Fatalf("source modified: %v", src)
	}
	if got := buf.String(); got != "[0 0 0 0 0 0 0 0 0 0 1 2 3 4 5 6]" {
		t.Fatalf("String() = %q", got)
	}
}

func TestLazyBufferConcatenation(t *testing.T) {
	cases := []struct {
		name    string
		src     []byte
		appends [][]byte
	}{
		{"empty source", []byte{}, [][]byte{{1}, {2, 3}}},
		{"nil source", nil, [][]byte{{9}}},
		{"empty appends", []byte{7}, [][]byte{{}, nil, {}}},
		{"many", []byte("abc"), [][]byte{[]byte("d"), []byte("ef"), []byte("ghij")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			orig := slices.Clone(c.src)
			calls := 0
			buf := countingBuffer(c.src, &calls)

			want := slices.Clone(c.src)
			for _, a := range c.appends {
				buf.Append(a)
				want = append(want, a...)
			}

			if !bytes.Equal(buf.Data(), want) {
				t.Fatalf("Data() = %v, want %v", buf.Data(), want)
			}
			if buf.Len() != len(want) {
				t.Fatalf("Len() = %d, want %d", buf.Len(), len(want))
			}
			if !bytes.Equal(c.src, orig) {
				t.Fatalf("source modified: %v, want %v", c.src, orig)
			}
			if calls != 1 || !buf.Cloned() {
				t.Fatalf("clone calls = %d, cloned = %v, want 1 and true", calls, buf.Cloned())
			}
		})
	}
}

func TestLazyBufferSpareCapacityUntouched(t *testing.T) {
	backing := bytes.Repeat([]byte{0xff}, 8)
	src := backing[:4]

	buf := New(src)
	buf.Append([]byte{1, 2})

	if !bytes.Equal(backing, bytes.Repeat([]byte{0xff}, 8)) {
		t.Fatalf("Append wrote into the source's backing array: %v", backing)
	}
	if !bytes.Equal(buf.Data(), []byte{0xff, 0xff, 0xff, 0xff, 1, 2}) {
		t.Fatalf("Data() = %v", buf.Data())
	}
}

func TestLazyBufferByteSlice(t *testing.T) {
	src := []byte{1, 2}
	buf := New(src)

	c := buf.ByteSlice()
	c[0] = 9
	if src[0] != 1 || buf.Data()[0] != 1 {
		t.Fatalf("ByteSlice() returned shared storage")
	}
	if buf.Cloned() {
		t.Fatalf("ByteSlice() must not promote the buffer")
	}
}

func TestNewDetachesOnFirstAppend(t *testing.T) {
	src := []byte{5, 6}
	buf := New(src)

	buf.Append(nil)
	if &buf.Data()[0] == &src[0] {
		t.Fatalf("Append kept reading the borrowed source")
	}
	if !bytes.Equal(buf.Data(), src) || !buf.Cloned() {
		t.Fatalf("Data() = %v, cloned = %v, want %v and true", buf.Data(), buf.Cloned(), src)
	}
}
