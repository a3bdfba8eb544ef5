package fixstr

// LowerCase maps 'A' through 'Z' in b to lower case in place and returns b.
// Other bytes are left alone.
func LowerCase(b []byte) []byte {
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return b
}

// IsValidASCII reports whether every byte of s is below 0x80.
func IsValidASCII[S Text](s S) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Replace substitutes every from byte in b with to, in place, and returns b.
func Replace(b []byte, from, to byte) []byte {
	for i, c := range b {
		if c == from {
			b[i] = to
		}
	}
	return b
}
