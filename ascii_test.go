package fixstr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/fixstr"
)

func TestLowerCase(t *testing.T) {
	t.Parallel()
	b := []byte("Hello, WORLD 42!")
	out := fixstr.LowerCase(b)
	assert.Equal(t, "hello, world 42!", string(out))
	assert.Equal(t, "hello, world 42!", string(b))

	s := fixstr.From[fixstr.Short]("MiXeD")
	fixstr.LowerCase(s.Bytes())
	assert.Equal(t, "mixed", s.String())
}

func TestIsValidASCII(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want bool
	}{
		"plain":   {in: "plain text\n", want: true},
		"empty":   {in: "", want: true},
		"del":     {in: "\x7f", want: true},
		"high":    {in: "\x80", want: false},
		"unicode": {in: "héllo", want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fixstr.IsValidASCII(tt.in))
			assert.Equal(t, tt.want, fixstr.IsValidASCII([]byte(tt.in)))
		})
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()
	b := []byte("a/b/c")
	assert.Equal(t, "a.b.c", string(fixstr.Replace(b, '/', '.')))
	assert.Equal(t, "a.b.c", string(b))
	assert.Equal(t, "a.b.c", string(fixstr.Replace(b, 'x', 'y')))
}
