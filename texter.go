package fixstr

import (
	"fmt"
	"io"
)

// Texter appends the text form of values to a Sink it owns. T is the sink
// type itself, so fixed-capacity texters live entirely inline.
//
// Writes never fail. On a fixed-capacity target a numeric value is written
// only if the longest possible form of its type still fits; otherwise it is
// dropped whole. Strings are truncated to the remaining room.
//
// The zero value is an empty texter ready to use.
type Texter[T any, P Target[T]] struct {
	s T
}

// Predefined texters.
type (
	BufferTexter     = Texter[Buffer, *Buffer]
	ShortTexter      = Texter[Short, *Short]
	MediumTexter     = Texter[Medium, *Medium]
	LongTexter       = Texter[Long, *Long]
	PageTexter       = Texter[Page, *Page]
	DoublePageTexter = Texter[DoublePage, *DoublePage]
	LargeTexter      = Texter[Large, *Large]
)

func (t *Texter[T, P]) sink() P { return P(&t.s) }

// Target returns the owned sink.
func (t *Texter[T, P]) Target() P { return t.sink() }

// Bytes returns a view of the text written so far.
func (t *Texter[T, P]) Bytes() []byte { return t.sink().Bytes() }

// Data returns the text followed by its NUL terminator.
func (t *Texter[T, P]) Data() []byte { return t.sink().Data() }

// String returns a copy of the text written so far.
func (t *Texter[T, P]) String() string { return string(t.sink().Bytes()) }

// Len returns the length of the text.
func (t *Texter[T, P]) Len() int { return t.sink().Len() }

// Empty reports whether nothing has been written.
func (t *Texter[T, P]) Empty() bool { return t.sink().Len() == 0 }

// Cap returns the current capacity of the target.
func (t *Texter[T, P]) Cap() int { return t.sink().Cap() }

// Filled reports whether the target has reached its maximum length.
func (t *Texter[T, P]) Filled() bool {
	s := t.sink()
	return s.Len() == s.MaxLen()
}

// Clear resets the length to zero and keeps the storage.
func (t *Texter[T, P]) Clear() { t.sink().Clear() }

// Reserve makes room for n bytes. Growable targets round up to a power of
// two; fixed targets ignore it.
func (t *Texter[T, P]) Reserve(n int) {
	if n <= t.sink().Cap() {
		return
	}
	t.sink().Reserve(n)
}

// Clone returns a texter holding a copy of the text. Fixed-capacity
// texters may also be copied by assignment; Buffer-backed ones share
// storage when assigned.
func (t *Texter[T, P]) Clone() Texter[T, P] {
	var out Texter[T, P]
	out.sink().Append(t.Bytes())
	return out
}

// WriteTo writes the text to w.
func (t *Texter[T, P]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.Bytes())
	return int64(n), err
}

// Write appends p, returning io.ErrShortWrite if it was truncated.
func (t *Texter[T, P]) Write(p []byte) (int, error) {
	s := t.sink()
	before := s.Len()
	s.Append(p)
	if n := s.Len() - before; n < len(p) {
		return n, io.ErrShortWrite
	}
	return len(p), nil
}

// Print appends each argument in order. Supported are bool, byte (written
// as a character), string, []byte, every integer width, float32 and
// float64 (DefaultPrecision digits), [Appender] values such as [Zero],
// [Fixed] and [Quote], anything with a Bytes() []byte method, fixed
// strings, buffers and texters by value or pointer, errors and
// fmt.Stringer. Anything else is written with fmt's %v.
//
// Note that a rune literal such as ' ' is an int32 and prints as a number.
func (t *Texter[T, P]) Print(args ...any) *Texter[T, P] {
	s := t.sink()
	for _, arg := range args {
		appendValue(s, arg)
	}
	return t
}

// Format appends a structured block of name/value pairs:
//
//	t.Format("x", -1, "y", -2) // " { x:'-1' y:'-2' }"
//
// rest holds further alternating names and values; a trailing name without
// a value is written with an empty value.
func (t *Texter[T, P]) Format(name string, value any, rest ...any) *Texter[T, P] {
	s := t.sink()
	s.AppendString(" { ")
	appendField(s, name, value)
	for i := 0; i < len(rest); i += 2 {
		var v any = ""
		if i+1 < len(rest) {
			v = rest[i+1]
		}
		appendField(s, rest[i], v)
	}
	s.AppendByte('}')
	return t
}

// Quoted appends v between single quotes.
func (t *Texter[T, P]) Quoted(v any) *Texter[T, P] {
	Quote{Value: v}.AppendTo(t.sink())
	return t
}

// Bool appends "true" or "false".
func (t *Texter[T, P]) Bool(x bool) *Texter[T, P] {
	appendBool(t.sink(), x)
	return t
}

// Byte appends a single character.
func (t *Texter[T, P]) Byte(c byte) *Texter[T, P] {
	t.sink().AppendByte(c)
	return t
}

// Str appends s unchanged.
func (t *Texter[T, P]) Str(s string) *Texter[T, P] {
	t.sink().AppendString(s)
	return t
}

// Text appends the bytes of another texter or fixed string.
func (t *Texter[T, P]) Text(b interface{ Bytes() []byte }) *Texter[T, P] {
	t.sink().Append(b.Bytes())
	return t
}

// Int appends x in decimal.
func (t *Texter[T, P]) Int(x int) *Texter[T, P] { return t.Int64(int64(x)) }

// Uint appends x in decimal.
func (t *Texter[T, P]) Uint(x uint) *Texter[T, P] { return t.Uint64(uint64(x)) }

// Int32 appends x in decimal.
func (t *Texter[T, P]) Int32(x int32) *Texter[T, P] {
	appendInt32(t.sink(), x)
	return t
}

// Uint32 appends x in decimal.
func (t *Texter[T, P]) Uint32(x uint32) *Texter[T, P] {
	appendUint32(t.sink(), x)
	return t
}

// Int64 appends x in decimal.
func (t *Texter[T, P]) Int64(x int64) *Texter[T, P] {
	appendInt64(t.sink(), x)
	return t
}

// Uint64 appends x in decimal.
func (t *Texter[T, P]) Uint64(x uint64) *Texter[T, P] {
	appendUint64(t.sink(), x)
	return t
}

// Float32 appends x with DefaultPrecision fractional digits.
func (t *Texter[T, P]) Float32(x float32) *Texter[T, P] {
	appendFloat(t.sink(), float64(x), DefaultPrecision)
	return t
}

// Float64 appends x with DefaultPrecision fractional digits.
func (t *Texter[T, P]) Float64(x float64) *Texter[T, P] {
	appendFloat(t.sink(), x, DefaultPrecision)
	return t
}

// FixedFloat appends x with exactly precision fractional digits.
func (t *Texter[T, P]) FixedFloat(x float64, precision int) *Texter[T, P] {
	appendFloat(t.sink(), x, precision)
	return t
}

// ZeroInt32 appends x zero-padded to width.
func (t *Texter[T, P]) ZeroInt32(x int32, width int) *Texter[T, P] {
	if b := reserve(t.sink(), MaxInt32Len); b != nil {
		shrink(t.sink(), MaxInt32Len-PutInt32Width(b, x, width))
	}
	return t
}

// ZeroUint32 appends x zero-padded to width.
func (t *Texter[T, P]) ZeroUint32(x uint32, width int) *Texter[T, P] {
	if b := reserve(t.sink(), MaxUint32Len); b != nil {
		shrink(t.sink(), MaxUint32Len-PutUint32Width(b, x, width))
	}
	return t
}

// ZeroInt64 appends x zero-padded to width.
func (t *Texter[T, P]) ZeroInt64(x int64, width int) *Texter[T, P] {
	appendInt64Width(t.sink(), x, width)
	return t
}

// ZeroUint64 appends x zero-padded to width.
func (t *Texter[T, P]) ZeroUint64(x uint64, width int) *Texter[T, P] {
	appendUint64Width(t.sink(), x, width)
	return t
}

// reserve grows s by n bytes and returns the new region, or nil when the
// sink refused to grow.
func reserve(s Sink, n int) []byte {
	old := s.Len()
	want := old + n
	s.Resize(want)
	if s.Len() != want {
		return nil
	}
	return s.Bytes()[old:want]
}

// shrink gives back the unused tail of a reservation.
func shrink(s Sink, unused int) {
	s.Resize(s.Len() - unused)
}

func appendBool(s Sink, x bool) {
	if x {
		s.AppendString("true")
		return
	}
	s.AppendString("false")
}

func appendUint32(s Sink, x uint32) {
	if b := reserve(s, MaxUint32Len); b != nil {
		shrink(s, MaxUint32Len-PutUint32(b, x))
	}
}

func appendInt32(s Sink, x int32) {
	if b := reserve(s, MaxInt32Len); b != nil {
		shrink(s, MaxInt32Len-PutInt32(b, x))
	}
}

func appendUint64(s Sink, x uint64) {
	if b := reserve(s, MaxUint64Len); b != nil {
		shrink(s, MaxUint64Len-PutUint64(b, x))
	}
}

func appendInt64(s Sink, x int64) {
	if b := reserve(s, MaxInt64Len); b != nil {
		shrink(s, MaxInt64Len-PutInt64(b, x))
	}
}

func appendUint64Width(s Sink, x uint64, width int) {
	if b := reserve(s, MaxUint64Len); b != nil {
		shrink(s, MaxUint64Len-PutUint64Width(b, x, width))
	}
}

func appendInt64Width(s Sink, x int64, width int) {
	if b := reserve(s, MaxInt64Len); b != nil {
		shrink(s, MaxInt64Len-PutInt64Width(b, x, width))
	}
}

func appendFloat(s Sink, x float64, precision int) {
	if b := reserve(s, MaxFloatLen); b != nil {
		shrink(s, MaxFloatLen-PutFloat(b, x, precision))
	}
}

func appendField(s Sink, name, value any) {
	appendValue(s, name)
	s.AppendString(":'")
	appendValue(s, value)
	s.AppendString("' ")
}

// contentAppender is implemented with value receivers by String, Buffer and
// Texter so that copies passed through an interface still print as text.
type contentAppender interface {
	appendTo(s Sink)
}

func (t Texter[T, P]) appendTo(s Sink) { s.Append(P(&t.s).Bytes()) }

func appendValue(s Sink, v any) {
	switch v := v.(type) {
	case nil:
		s.AppendString("nil")
	case bool:
		appendBool(s, v)
	case string:
		s.AppendString(v)
	case []byte:
		s.Append(v)
	case byte:
		s.AppendByte(v)
	case int8:
		appendInt32(s, int32(v))
	case int16:
		appendInt32(s, int32(v))
	case int32:
		appendInt32(s, v)
	case int:
		appendInt64(s, int64(v))
	case int64:
		appendInt64(s, v)
	case uint16:
		appendUint32(s, uint32(v))
	case uint32:
		appendUint32(s, v)
	case uint:
		appendUint64(s, uint64(v))
	case uint64:
		appendUint64(s, v)
	case float32:
		appendFloat(s, float64(v), DefaultPrecision)
	case float64:
		appendFloat(s, v, DefaultPrecision)
	case Appender:
		v.AppendTo(s)
	case interface{ Bytes() []byte }:
		s.Append(v.Bytes())
	case contentAppender:
		v.appendTo(s)
	case error:
		s.AppendString(v.Error())
	case fmt.Stringer:
		s.AppendString(v.String())
	default:
		s.AppendString(fmt.Sprint(v))
	}
}
