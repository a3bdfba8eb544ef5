package fixstr

import (
	"fmt"
	"math"
)

// Longest decimal forms, used to size write buffers.
const (
	MaxUint32Len = 10
	MaxInt32Len  = MaxUint32Len + 1
	MaxUint64Len = 20
	MaxInt64Len  = 20
	MaxFloatLen  = 1 + MaxUint64Len + 1 + MaxPrecision
	MaxPrecision = 16
)

// DefaultPrecision is the number of fractional digits used for floats
// printed without an explicit precision.
const DefaultPrecision = 6

const digitPairs = "" +
	"00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

var pow10 = [MaxPrecision + 1]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8,
	1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16,
}

// twoTo64 is the first float64 that does not fit in a uint64.
const twoTo64 = 18446744073709551616.0

// PutUint32 writes the decimal form of x to b and returns the number of
// bytes written. It panics if b is shorter than needed; MaxUint32Len bytes
// always suffice.
func PutUint32(b []byte, x uint32) int { return putUint32(b, 0, x) }

// PutInt32 writes the decimal form of x to b, with a leading '-' when
// negative. MaxInt32Len bytes always suffice.
func PutInt32(b []byte, x int32) int {
	if x >= 0 {
		return putUint32(b, 0, uint32(x))
	}
	b[0] = '-'
	return putUint32(b, 1, magnitude32(x))
}

// PutUint64 writes the decimal form of x to b. MaxUint64Len bytes always
// suffice.
func PutUint64(b []byte, x uint64) int { return putUint64(b, 0, x) }

// PutInt64 writes the decimal form of x to b, with a leading '-' when
// negative. MaxInt64Len bytes always suffice.
func PutInt64(b []byte, x int64) int {
	if x >= 0 {
		return putUint64(b, 0, uint64(x))
	}
	b[0] = '-'
	return putUint64(b, 1, magnitude64(x))
}

// PutUint32Width writes x right-justified in a field of width bytes,
// padded with leading zeros. A value with at least width digits is written
// unchanged. Width is clamped to MaxUint32Len.
func PutUint32Width(b []byte, x uint32, width int) int {
	return padZeros(b, PutUint32(b, x), min(width, MaxUint32Len))
}

// PutInt32Width is PutUint32Width for signed values. The sign counts toward
// the width and the zeros follow it, so -5 in width 3 is "-05".
func PutInt32Width(b []byte, x int32, width int) int {
	width = min(width, MaxInt32Len)
	if x >= 0 {
		return padZeros(b, putUint32(b, 0, uint32(x)), width)
	}
	b[0] = '-'
	return 1 + padZeros(b[1:], putUint32(b, 1, magnitude32(x))-1, width-1)
}

// PutUint64Width is PutUint32Width for 64-bit values. Width is clamped to
// MaxUint64Len.
func PutUint64Width(b []byte, x uint64, width int) int {
	return padZeros(b, PutUint64(b, x), min(width, MaxUint64Len))
}

// PutInt64Width is PutInt32Width for 64-bit values. Width is clamped to
// MaxInt64Len.
func PutInt64Width(b []byte, x int64, width int) int {
	width = min(width, MaxInt64Len)
	if x >= 0 {
		return padZeros(b, putUint64(b, 0, uint64(x)), width)
	}
	b[0] = '-'
	return 1 + padZeros(b[1:], putUint64(b, 1, magnitude64(x))-1, width-1)
}

// PutFloat writes x in fixed-point notation with exactly precision
// fractional digits, rounding half up. A precision of zero writes no decimal
// point. Precision is clamped to MaxPrecision.
//
// NaN is written as "NaN". Infinities, and magnitudes too large for the
// integer part to fit in 64 bits, are written as "INF" or "-INF".
// MaxFloatLen bytes always suffice.
func PutFloat(b []byte, x float64, precision int) int {
	precision = min(max(precision, 0), MaxPrecision)
	if math.IsNaN(x) {
		return copy(b, "NaN")
	}
	i := 0
	if x < 0 {
		b[i] = '-'
		i++
		x = -x
	}
	if x >= twoTo64 {
		return i + copy(b[i:], "INF")
	}
	integer := uint64(x)
	scale := pow10[precision]
	frac := uint64((x-float64(integer))*float64(scale) + 0.5)
	if frac >= scale {
		frac -= scale
		integer++
	}
	i = putUint64(b, i, integer)
	if precision == 0 {
		return i
	}
	b[i] = '.'
	i++
	return i + PutUint64Width(b[i:], frac, precision)
}

func magnitude32(x int32) uint32 {
	if x == math.MinInt32 {
		return 1 << 31
	}
	return uint32(-x)
}

func magnitude64(x int64) uint64 {
	if x == math.MinInt64 {
		return 1 << 63
	}
	return uint64(-x)
}

// padZeros shifts the n digits at the start of b right so they end at
// width, filling the gap with '0'.
func padZeros(b []byte, n, width int) int {
	if n >= width {
		return n
	}
	copy(b[width-n:width], b[:n])
	for i := range width - n {
		b[i] = '0'
	}
	return width
}

func putUint32(b []byte, i int, x uint32) int {
	if x < 100000000 {
		if x == 0 {
			b[i] = '0'
			return i + 1
		}
		return begin8(b, i, x)
	}
	i = begin2(b, i, x/100000000)
	return middle8(b, i, x%100000000)
}

func putUint64(b []byte, i int, x uint64) int {
	switch {
	case x < 100000000:
		if x == 0 {
			b[i] = '0'
			return i + 1
		}
		return begin8(b, i, uint32(x))
	case x < 10000000000000000:
		i = begin8(b, i, uint32(x/100000000))
		return middle8(b, i, uint32(x%100000000))
	default:
		i = begin4(b, i, uint32(x/10000000000000000))
		return middle16(b, i, x%10000000000000000)
	}
}

// The beginN helpers write up to N digits without leading zeros; the
// middleN helpers write exactly N digits.

func begin2(b []byte, i int, n uint32) int {
	if n < 10 {
		b[i] = byte('0' + n)
		return i + 1
	}
	return middle2(b, i, n)
}

func middle2(b []byte, i int, n uint32) int {
	t := n * 2
	b[i] = digitPairs[t]
	b[i+1] = digitPairs[t+1]
	return i + 2
}

func begin4(b []byte, i int, n uint32) int {
	if n < 100 {
		return begin2(b, i, n)
	}
	i = begin2(b, i, n/100)
	return middle2(b, i, n%100)
}

func middle4(b []byte, i int, n uint32) int {
	i = middle2(b, i, n/100)
	return middle2(b, i, n%100)
}

func begin8(b []byte, i int, n uint32) int {
	if n < 10000 {
		return begin4(b, i, n)
	}
	i = begin4(b, i, n/10000)
	return middle4(b, i, n%10000)
}

func middle8(b []byte, i int, n uint32) int {
	i = middle4(b, i, n/10000)
	return middle4(b, i, n%10000)
}

func middle16(b []byte, i int, n uint64) int {
	i = middle8(b, i, uint32(n/100000000))
	return middle8(b, i, uint32(n%100000000))
}

// ParseUint64 parses an unsigned decimal number. It returns ErrSyntax for
// empty input or non-digit bytes and ErrRange on overflow.
func ParseUint64[S Text](s S) (uint64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	var x uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		d := uint64(c - '0')
		if x > (math.MaxUint64-d)/10 {
			return 0, fmt.Errorf("%w: %q", ErrRange, s)
		}
		x = x*10 + d
	}
	return x, nil
}

// ParseInt64 parses a signed decimal number with an optional leading '+'
// or '-'.
func ParseInt64[S Text](s S) (int64, error) {
	neg := false
	start := 0
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		start = 1
	}
	if start == len(s) {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	var u uint64
	for i := start; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		d := uint64(c - '0')
		if u > (1<<63-d)/10 {
			return 0, fmt.Errorf("%w: %q", ErrRange, s)
		}
		u = u*10 + d
	}
	switch {
	case neg && u == 1<<63:
		return math.MinInt64, nil
	case u > math.MaxInt64:
		return 0, fmt.Errorf("%w: %q", ErrRange, s)
	case neg:
		return -int64(u), nil
	}
	return int64(u), nil
}
