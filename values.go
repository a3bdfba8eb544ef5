package fixstr

// Appender is implemented by values that know how to write themselves into
// a Sink. Print hands them the Texter's target directly.
type Appender interface {
	AppendTo(s Sink)
}

// Integer is the set of integer types accepted by [Zero].
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating point types accepted by [Fixed].
type Float interface {
	~float32 | ~float64
}

// Zero prints Value right-justified in Width digits, padded with zeros.
//
//	t.Print(fixstr.Zero[int]{Width: 2, Value: 6}) // "06"
type Zero[T Integer] struct {
	Width int
	Value T
}

// AppendTo implements Appender.
func (z Zero[T]) AppendTo(s Sink) {
	if isSigned[T]() {
		appendInt64Width(s, int64(z.Value), z.Width)
		return
	}
	appendUint64Width(s, uint64(z.Value), z.Width)
}

func isSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// Fixed prints Value with exactly Precision fractional digits.
//
//	t.Print(fixstr.Fixed[float64]{Precision: 2, Value: 189.887}) // "189.89"
type Fixed[T Float] struct {
	Precision int
	Value     T
}

// AppendTo implements Appender.
func (f Fixed[T]) AppendTo(s Sink) {
	appendFloat(s, float64(f.Value), f.Precision)
}

// Quote wraps a value printed between single quotes.
type Quote struct {
	Value any
}

// Quoted returns v wrapped for quoting.
func Quoted(v any) Quote { return Quote{Value: v} }

// AppendTo implements Appender.
func (q Quote) AppendTo(s Sink) {
	s.AppendByte('\'')
	appendValue(s, q.Value)
	s.AppendByte('\'')
}
