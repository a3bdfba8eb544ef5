package fixstr_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/fixstr"
)

func TestPutUint64(t *testing.T) {
	t.Parallel()
	values := []uint64{
		0, 1, 9, 10, 99, 100, 999, 1000, 9999, 10000,
		12345678, 99999999, 100000000, 123456789012,
		9999999999999999, 10000000000000000, math.MaxUint32, math.MaxUint64,
	}
	for _, x := range values {
		b := make([]byte, fixstr.MaxUint64Len)
		n := fixstr.PutUint64(b, x)
		assert.Equal(t, strconv.FormatUint(x, 10), string(b[:n]))

		back, err := fixstr.ParseUint64(b[:n])
		require.NoError(t, err)
		assert.Equal(t, x, back)
	}
}

func TestPutInt64(t *testing.T) {
	t.Parallel()
	values := []int64{
		0, 1, -1, 42, -42, 100000000, -100000000,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64,
	}
	for _, x := range values {
		b := make([]byte, fixstr.MaxInt64Len)
		n := fixstr.PutInt64(b, x)
		assert.Equal(t, strconv.FormatInt(x, 10), string(b[:n]))

		back, err := fixstr.ParseInt64(string(b[:n]))
		require.NoError(t, err)
		assert.Equal(t, x, back)
	}
}

func TestPut32(t *testing.T) {
	t.Parallel()
	for _, x := range []uint32{0, 7, 10, 4294967295, 100000000, 99999999} {
		b := make([]byte, fixstr.MaxUint32Len)
		n := fixstr.PutUint32(b, x)
		assert.Equal(t, strconv.FormatUint(uint64(x), 10), string(b[:n]))
	}
	for _, x := range []int32{0, -7, 2147483647, math.MinInt32} {
		b := make([]byte, fixstr.MaxInt32Len)
		n := fixstr.PutInt32(b, x)
		assert.Equal(t, strconv.FormatInt(int64(x), 10), string(b[:n]))
	}
}

func TestPutWidth(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		put  func(b []byte) int
		want string
	}{
		"padded":          {put: func(b []byte) int { return fixstr.PutUint64Width(b, 5, 3) }, want: "005"},
		"wider value":     {put: func(b []byte) int { return fixstr.PutUint64Width(b, 12345, 3) }, want: "12345"},
		"exact":           {put: func(b []byte) int { return fixstr.PutUint64Width(b, 123, 3) }, want: "123"},
		"zero width":      {put: func(b []byte) int { return fixstr.PutUint64Width(b, 0, 0) }, want: "0"},
		"zero padded":     {put: func(b []byte) int { return fixstr.PutUint64Width(b, 0, 4) }, want: "0000"},
		"clamped":         {put: func(b []byte) int { return fixstr.PutUint64Width(b, 1, 50) }, want: "00000000000000000001"},
		"negative":        {put: func(b []byte) int { return fixstr.PutInt64Width(b, -5, 3) }, want: "-05"},
		"negative wider":  {put: func(b []byte) int { return fixstr.PutInt64Width(b, -1234, 3) }, want: "-1234"},
		"positive signed": {put: func(b []byte) int { return fixstr.PutInt64Width(b, 7, 2) }, want: "07"},
		"int64 min": {
			put:  func(b []byte) int { return fixstr.PutInt64Width(b, math.MinInt64, 2) },
			want: "-9223372036854775808",
		},
		"uint32":         {put: func(b []byte) int { return fixstr.PutUint32Width(b, 6, 2) }, want: "06"},
		"uint32 clamped": {put: func(b []byte) int { return fixstr.PutUint32Width(b, 6, 30) }, want: "0000000006"},
		"int32":          {put: func(b []byte) int { return fixstr.PutInt32Width(b, -3, 4) }, want: "-003"},
		"int32 positive": {put: func(b []byte) int { return fixstr.PutInt32Width(b, 42, 5) }, want: "00042"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			b := make([]byte, fixstr.MaxUint64Len)
			n := tt.put(b)
			assert.Equal(t, tt.want, string(b[:n]))
		})
	}
}

func TestPutFloat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		x         float64
		precision int
		want      string
	}{
		"rounded":          {x: 189.887, precision: 2, want: "189.89"},
		"default":          {x: 1.5, precision: fixstr.DefaultPrecision, want: "1.500000"},
		"trailing zeros":   {x: 2, precision: 3, want: "2.000"},
		"negative":         {x: -3.25, precision: 2, want: "-3.25"},
		"negative tiny":    {x: -0.004, precision: 2, want: "-0.00"},
		"carry":            {x: 9.999, precision: 2, want: "10.00"},
		"carry to integer": {x: 0.96, precision: 1, want: "1.0"},
		"leading frac 0":   {x: 1.05, precision: 3, want: "1.050"},
		"no point":         {x: 7.6, precision: 0, want: "8"},
		"zero":             {x: 0, precision: 2, want: "0.00"},
		"negative prec":    {x: 1.25, precision: -4, want: "1"},
		"clamped prec":     {x: 0.5, precision: 40, want: "0.5000000000000000"},
		"nan":              {x: math.NaN(), precision: 2, want: "NaN"},
		"inf":              {x: math.Inf(1), precision: 2, want: "INF"},
		"minus inf":        {x: math.Inf(-1), precision: 2, want: "-INF"},
		"too large":        {x: 1e20, precision: 2, want: "INF"},
		"too small":        {x: -1e300, precision: 2, want: "-INF"},
		"big integer":      {x: 1e15, precision: 1, want: "1000000000000000.0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			b := make([]byte, fixstr.MaxFloatLen)
			n := fixstr.PutFloat(b, tt.x, tt.precision)
			assert.Equal(t, tt.want, string(b[:n]))
		})
	}
}

func TestPutFloatFitsMaxLen(t *testing.T) {
	t.Parallel()
	b := make([]byte, fixstr.MaxFloatLen)
	n := fixstr.PutFloat(b, -18446744073709549568, fixstr.MaxPrecision)
	assert.Equal(t, fixstr.MaxFloatLen, n)
	assert.Equal(t, "-18446744073709549568.0000000000000000", string(b[:n]))
}

func TestParseUint64(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in      string
		want    uint64
		wantErr error
	}{
		"zero":       {in: "0", want: 0},
		"leading 0":  {in: "007", want: 7},
		"max":        {in: "18446744073709551615", want: math.MaxUint64},
		"overflow":   {in: "18446744073709551616", wantErr: fixstr.ErrRange},
		"empty":      {in: "", wantErr: fixstr.ErrSyntax},
		"sign":       {in: "-1", wantErr: fixstr.ErrSyntax},
		"non digit":  {in: "12a", wantErr: fixstr.ErrSyntax},
		"whitespace": {in: " 1", wantErr: fixstr.ErrSyntax},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := fixstr.ParseUint64(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInt64(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in      string
		want    int64
		wantErr error
	}{
		"positive":    {in: "42", want: 42},
		"plus":        {in: "+42", want: 42},
		"negative":    {in: "-42", want: -42},
		"max":         {in: "9223372036854775807", want: math.MaxInt64},
		"min":         {in: "-9223372036854775808", want: math.MinInt64},
		"overflow":    {in: "9223372036854775808", wantErr: fixstr.ErrRange},
		"underflow":   {in: "-9223372036854775809", wantErr: fixstr.ErrRange},
		"huge":        {in: "99999999999999999999999", wantErr: fixstr.ErrRange},
		"empty":       {in: "", wantErr: fixstr.ErrSyntax},
		"sign only":   {in: "-", wantErr: fixstr.ErrSyntax},
		"double sign": {in: "--1", wantErr: fixstr.ErrSyntax},
		"decimal dot": {in: "1.5", wantErr: fixstr.ErrSyntax},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := fixstr.ParseInt64(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func BenchmarkPutUint64(b *testing.B) {
	buf := make([]byte, fixstr.MaxUint64Len)
	for i := 0; b.Loop(); i++ {
		fixstr.PutUint64(buf, uint64(i)*2654435761)
	}
}

func BenchmarkStrconvAppendUint(b *testing.B) {
	buf := make([]byte, 0, fixstr.MaxUint64Len)
	for i := 0; b.Loop(); i++ {
		strconv.AppendUint(buf[:0], uint64(i)*2654435761, 10)
	}
}

func BenchmarkPutFloat(b *testing.B) {
	buf := make([]byte, fixstr.MaxFloatLen)
	for b.Loop() {
		fixstr.PutFloat(buf, 189.887, 2)
	}
}
