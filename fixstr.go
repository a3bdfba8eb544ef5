package fixstr

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrOutOfRange = errors.New("index out of range")
	ErrSyntax     = errors.New("invalid decimal syntax")
	ErrRange      = errors.New("value out of range")
)

// Npos is returned by the index lookups when nothing is found.
const Npos = -1

// Sink is the capability every Texter writes into: an appendable byte
// sequence that can be resized in place and viewed as a writable slice.
//
// Implementations keep a NUL byte at Bytes()[Len()] after every mutation.
// A fixed-capacity Sink ignores Resize requests beyond MaxLen, leaving Len
// unchanged; a growable Sink reallocates. Append operations never fail;
// bytes that do not fit are dropped.
type Sink interface {
	Len() int
	Cap() int
	MaxLen() int
	Bytes() []byte
	Data() []byte
	Resize(n int)
	Reserve(n int)
	Append(b []byte)
	AppendString(s string)
	AppendByte(c byte)
	Clear()
}

// Text is any byte-based string type accepted by the matching, splitting
// and parsing helpers.
type Text interface {
	~string | ~[]byte
}

// Target constrains a Texter's type parameters: P must be a pointer to T
// implementing Sink. Only byte sequences satisfy it.
type Target[T any] interface {
	*T
	Sink
}
