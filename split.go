package fixstr

// Split cuts s at every sep and drops empty fragments.
//
//	Split("1,2,,3,", ',') // ["1" "2" "3"]
func Split(s string, sep byte) []string {
	var out []string
	fields(s, sep, false, func(lo, hi int) { out = append(out, s[lo:hi]) })
	return out
}

// SplitStrictly cuts s at every sep and keeps empty fragments, so the
// result always has one more element than s has separators.
//
//	SplitStrictly("1,2,,3,", ',') // ["1" "2" "" "3" ""]
func SplitStrictly(s string, sep byte) []string {
	var out []string
	fields(s, sep, true, func(lo, hi int) { out = append(out, s[lo:hi]) })
	return out
}

// SplitBytes is Split for byte slices. The fragments alias b.
func SplitBytes(b []byte, sep byte) [][]byte {
	var out [][]byte
	fields(b, sep, false, func(lo, hi int) { out = append(out, b[lo:hi:hi]) })
	return out
}

// SplitBytesStrictly is SplitStrictly for byte slices. The fragments alias b.
func SplitBytesStrictly(b []byte, sep byte) [][]byte {
	var out [][]byte
	fields(b, sep, true, func(lo, hi int) { out = append(out, b[lo:hi:hi]) })
	return out
}

// Split cuts the content at every sep into fixed strings of the same
// capacity. With strict set, empty fragments are kept.
func (s *String[A, P]) Split(sep byte, strict bool) []String[A, P] {
	var out []String[A, P]
	b := s.Bytes()
	fields(b, sep, strict, func(lo, hi int) {
		var f String[A, P]
		f.Append(b[lo:hi])
		out = append(out, f)
	})
	return out
}

func fields[S Text](s S, sep byte, strict bool, emit func(lo, hi int)) {
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != sep {
			continue
		}
		if i > start || strict {
			emit(start, i)
		}
		start = i + 1
	}
	if len(s) > start || strict {
		emit(start, len(s))
	}
}
