package fixstr

import (
	"bytes"
	"fmt"
	"io"
)

// Storage constrains the inline backing array of a [String]. P is a pointer
// to the array type A, and Bytes exposes the whole array, including the
// trailing byte reserved for the NUL terminator.
//
// Custom capacities are declared the same way the predefined ones are:
//
//	type name32 [32 + 1]byte
//
//	func (a *name32) Bytes() []byte { return a[:] }
//
//	type Name = fixstr.String[name32, *name32]
type Storage[A any] interface {
	*A
	Bytes() []byte
}

type (
	short      [68 + 1]byte
	medium     [252 + 1]byte
	long       [1020 + 1]byte
	page       [4092 + 1]byte
	doublePage [8188 + 1]byte
	large      [65532 + 1]byte
)

func (a *short) Bytes() []byte      { return a[:] }
func (a *medium) Bytes() []byte     { return a[:] }
func (a *long) Bytes() []byte       { return a[:] }
func (a *page) Bytes() []byte       { return a[:] }
func (a *doublePage) Bytes() []byte { return a[:] }
func (a *large) Bytes() []byte      { return a[:] }

// Predefined fixed-capacity strings.
type (
	Short      = String[short, *short]           // 68 bytes
	Medium     = String[medium, *medium]         // 252 bytes
	Long       = String[long, *long]             // 1020 bytes
	Page       = String[page, *page]             // 4092 bytes
	DoublePage = String[doublePage, *doublePage] // 8188 bytes
	Large      = String[large, *large]           // 65532 bytes
)

// String is a byte string stored inline in an array of capacity N+1, where
// N is its maximum length. The byte following the content is always NUL.
//
// The zero value is an empty string ready to use. Copying a String copies
// its storage. Operations that would exceed the capacity keep as many bytes
// as fit and drop the rest; compare Len with Cap to detect it.
type String[A any, P Storage[A]] struct {
	n int
	a A
}

// From returns a fixed string of type F holding s, truncated to the
// capacity of F.
//
//	name := fixstr.From[fixstr.Short]("test")
func From[F any, PF interface {
	*F
	AssignString(string)
}](s string) F {
	var f F
	PF(&f).AssignString(s)
	return f
}

func (s *String[A, P]) raw() []byte { return P(&s.a).Bytes() }

// Len returns the number of bytes in use.
func (s *String[A, P]) Len() int { return s.n }

// Cap returns the fixed capacity N.
func (s *String[A, P]) Cap() int { return len(s.raw()) - 1 }

// MaxLen is the same as Cap; a fixed string never grows.
func (s *String[A, P]) MaxLen() int { return s.Cap() }

// Empty reports whether the string has no bytes.
func (s *String[A, P]) Empty() bool { return s.n == 0 }

// Clear empties the string.
func (s *String[A, P]) Clear() {
	s.n = 0
	s.raw()[0] = 0
}

// Reserve does nothing; the storage is preallocated.
func (s *String[A, P]) Reserve(int) {}

// Bytes returns a writable view of the content. It aliases the inline
// storage and is valid until the next mutation.
func (s *String[A, P]) Bytes() []byte { return s.raw()[:s.n:s.n] }

// Data returns the content followed by its NUL terminator.
func (s *String[A, P]) Data() []byte { return s.raw()[: s.n+1 : s.n+1] }

func (s String[A, P]) appendTo(dst Sink) { dst.Append(s.Bytes()) }

// String returns a copy of the content.
func (s *String[A, P]) String() string { return string(s.raw()[:s.n]) }

// Assign replaces the content with b truncated to the capacity.
func (s *String[A, P]) Assign(b []byte) {
	s.n = 0
	s.Append(b)
}

// AssignString replaces the content with str truncated to the capacity.
func (s *String[A, P]) AssignString(str string) {
	s.n = 0
	s.AppendString(str)
}

// Append adds as many bytes of b as fit in the remaining capacity.
func (s *String[A, P]) Append(b []byte) {
	buf := s.raw()
	s.n += copy(buf[s.n:len(buf)-1], b)
	buf[s.n] = 0
}

// AppendString adds as many bytes of str as fit in the remaining capacity.
func (s *String[A, P]) AppendString(str string) {
	buf := s.raw()
	s.n += copy(buf[s.n:len(buf)-1], str)
	buf[s.n] = 0
}

// AppendByte adds c unless the string is full.
func (s *String[A, P]) AppendByte(c byte) {
	buf := s.raw()
	if s.n >= len(buf)-1 {
		return
	}
	buf[s.n] = c
	s.n++
	buf[s.n] = 0
}

// Pop removes the last byte. It does nothing on an empty string.
func (s *String[A, P]) Pop() {
	if s.n == 0 {
		return
	}
	s.n--
	s.raw()[s.n] = 0
}

// Resize sets the length to n. Bytes between the old and the new length keep
// whatever the storage held. Values of n outside [0, Cap] are ignored.
func (s *String[A, P]) Resize(n int) {
	buf := s.raw()
	if n < 0 || n > len(buf)-1 {
		return
	}
	s.n = n
	buf[n] = 0
}

// At returns the byte at index i, or ErrOutOfRange when i is not below Len.
// Bytes()[i] is the unchecked form.
func (s *String[A, P]) At(i int) (byte, error) {
	if i < 0 || i >= s.n {
		return 0, fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, s.n)
	}
	return s.raw()[i], nil
}

// SetAt overwrites the byte at index i.
func (s *String[A, P]) SetAt(i int, c byte) error {
	if i < 0 || i >= s.n {
		return fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, s.n)
	}
	s.raw()[i] = c
	return nil
}

// Front returns the first byte. It panics on an empty string.
func (s *String[A, P]) Front() byte { return s.Bytes()[0] }

// Back returns the last byte. It panics on an empty string.
func (s *String[A, P]) Back() byte { return s.Bytes()[s.n-1] }

// Compare compares the content with b lexicographically and returns -1, 0
// or +1.
func (s *String[A, P]) Compare(b []byte) int { return compareText(s.Bytes(), b) }

// CompareString is Compare for a string operand.
func (s *String[A, P]) CompareString(str string) int { return compareText(s.Bytes(), str) }

// Equal reports whether the content equals b.
func (s *String[A, P]) Equal(b []byte) bool { return bytes.Equal(s.Bytes(), b) }

// EqualString reports whether the content equals str.
func (s *String[A, P]) EqualString(str string) bool { return compareText(s.Bytes(), str) == 0 }

// Less reports whether the content sorts before b.
func (s *String[A, P]) Less(b []byte) bool { return s.Compare(b) < 0 }

func compareText[S Text](a []byte, b S) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// IndexByte returns the index of the first c, or Npos.
func (s *String[A, P]) IndexByte(c byte) int { return s.IndexByteFrom(c, 0) }

// IndexByteFrom returns the index of the first c at or after from, or Npos.
func (s *String[A, P]) IndexByteFrom(c byte, from int) int {
	from = max(from, 0)
	if from >= s.n {
		return Npos
	}
	i := bytes.IndexByte(s.raw()[from:s.n], c)
	if i < 0 {
		return Npos
	}
	return from + i
}

// LastIndexByte returns the index of the last c, or Npos.
func (s *String[A, P]) LastIndexByte(c byte) int { return s.LastIndexByteFrom(c, s.n-1) }

// LastIndexByteFrom returns the index of the last c at or before from, or Npos.
func (s *String[A, P]) LastIndexByteFrom(c byte, from int) int {
	if from >= s.n {
		from = s.n - 1
	}
	if from < 0 {
		return Npos
	}
	return bytes.LastIndexByte(s.raw()[:from+1], c)
}

// Substr returns the n bytes starting at pos. Both are clamped to the content.
func (s *String[A, P]) Substr(pos, n int) String[A, P] {
	var out String[A, P]
	pos = min(max(pos, 0), s.n)
	n = min(max(n, 0), s.n-pos)
	out.Append(s.raw()[pos : pos+n])
	return out
}

// Hash returns a polynomial hash of the content suitable for map sharding.
func (s *String[A, P]) Hash() uint64 {
	var h uint64
	for _, c := range s.raw()[:s.n] {
		h = h*101 + uint64(c)
	}
	return h
}

// Write appends p. It returns io.ErrShortWrite when p did not fit.
func (s *String[A, P]) Write(p []byte) (int, error) {
	before := s.n
	s.Append(p)
	if n := s.n - before; n < len(p) {
		return n, io.ErrShortWrite
	}
	return len(p), nil
}

// WriteString appends str. It returns io.ErrShortWrite when str did not fit.
func (s *String[A, P]) WriteString(str string) (int, error) {
	before := s.n
	s.AppendString(str)
	if n := s.n - before; n < len(str) {
		return n, io.ErrShortWrite
	}
	return len(str), nil
}

// WriteTo writes the content to w.
func (s *String[A, P]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}
