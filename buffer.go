package fixstr

import (
	"io"
	"math"
)

// Buffer is a growable Sink. Its storage grows to the next power of two
// when a write needs more room and is never released by Clear.
//
// The zero value is an empty buffer ready to use. Assigning a Buffer shares
// its storage; use Clone for an independent copy.
type Buffer struct {
	b []byte
}

// Len returns the number of bytes in use.
func (b *Buffer) Len() int { return len(b.b) }

// Cap returns how many bytes fit before the next reallocation.
func (b *Buffer) Cap() int { return max(cap(b.b)-1, 0) }

// MaxLen returns the largest length a Buffer can reach.
func (b *Buffer) MaxLen() int { return math.MaxInt - 1 }

// Empty reports whether the buffer has no bytes.
func (b *Buffer) Empty() bool { return len(b.b) == 0 }

// Bytes returns a writable view of the content, valid until the next
// mutation.
func (b *Buffer) Bytes() []byte { return b.b }

// Data returns the content followed by its NUL terminator.
func (b *Buffer) Data() []byte {
	if cap(b.b) == 0 {
		b.grow(1)
		b.terminate()
	}
	return b.b[: len(b.b)+1 : len(b.b)+1]
}

func (b *Buffer) String() string { return string(b.b) }

func (b Buffer) appendTo(s Sink) { s.Append(b.b) }

// Clear empties the buffer and keeps its storage.
func (b *Buffer) Clear() {
	b.b = b.b[:0]
	b.terminate()
}

// Reserve makes room for at least n bytes, rounding the storage up to a
// power of two.
func (b *Buffer) Reserve(n int) {
	if n+1 > cap(b.b) {
		b.grow(n + 1)
	}
}

// Resize sets the length to n, growing the storage as needed. New bytes are
// zero or left over from earlier content. Negative n is ignored.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		return
	}
	b.Reserve(n)
	b.b = b.b[:n]
	b.terminate()
}

// Append adds p to the content.
func (b *Buffer) Append(p []byte) {
	b.Reserve(len(b.b) + len(p))
	b.b = append(b.b, p...)
	b.terminate()
}

// AppendString adds s to the content.
func (b *Buffer) AppendString(s string) {
	b.Reserve(len(b.b) + len(s))
	b.b = append(b.b, s...)
	b.terminate()
}

// AppendByte adds c to the content.
func (b *Buffer) AppendByte(c byte) {
	b.Reserve(len(b.b) + 1)
	b.b = append(b.b, c)
	b.terminate()
}

// Write appends p. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.Append(p)
	return len(p), nil
}

// WriteTo writes the content to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.b)
	return int64(n), err
}

// Clone returns a buffer holding a copy of the content.
func (b *Buffer) Clone() Buffer {
	var out Buffer
	out.Append(b.b)
	return out
}

func (b *Buffer) grow(n int) {
	nb := make([]byte, len(b.b), nearestPowerOf2(uint64(n)))
	copy(nb, b.b)
	b.b = nb
}

func (b *Buffer) terminate() {
	if cap(b.b) > len(b.b) {
		b.b[:len(b.b)+1][len(b.b)] = 0
	}
}

func nearestPowerOf2(n uint64) uint64 {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
