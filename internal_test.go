package fixstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestPowerOf2(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in, want uint64
	}{
		"zero":      {in: 0, want: 2},
		"one":       {in: 1, want: 2},
		"two":       {in: 2, want: 2},
		"three":     {in: 3, want: 4},
		"exact":     {in: 1024, want: 1024},
		"above":     {in: 1025, want: 2048},
		"high bits": {in: 1<<40 + 1, want: 1 << 41},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, nearestPowerOf2(tt.in))
		})
	}
}

func TestReserveFixed(t *testing.T) {
	t.Parallel()
	var s Short
	s.AssignString("ab")

	b := reserve(&s, 4)
	assert.Len(t, b, 4)
	assert.Equal(t, 6, s.Len())
	copy(b, "cd")
	shrink(&s, 2)
	assert.Equal(t, "abcd", s.String())

	assert.Nil(t, reserve(&s, 100))
	assert.Equal(t, "abcd", s.String())
}

func TestReserveBuffer(t *testing.T) {
	t.Parallel()
	var b Buffer
	region := reserve(&b, MaxUint64Len)
	assert.Len(t, region, MaxUint64Len)
	n := PutUint64(region, 12345)
	shrink(&b, MaxUint64Len-n)
	assert.Equal(t, "12345", b.String())
	assert.Equal(t, byte(0), b.Data()[5])
}

func TestIsSigned(t *testing.T) {
	t.Parallel()
	assert.True(t, isSigned[int]())
	assert.True(t, isSigned[int8]())
	assert.False(t, isSigned[uint]())
	assert.False(t, isSigned[uintptr]())
}

func TestAppendValueRuneIsNumber(t *testing.T) {
	t.Parallel()
	var b Buffer
	appendValue(&b, ' ')
	appendValue(&b, byte(' '))
	assert.Equal(t, "32 ", b.String())
}
