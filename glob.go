package fixstr

// HasWildcards reports whether s is a pattern rather than a literal: it
// starts with '!' or contains '*' or '?'.
func HasWildcards[S Text](s S) bool {
	if len(s) > 0 && s[0] == '!' {
		return true
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?':
			return true
		}
	}
	return false
}

// Matched reports whether text matches pattern. '*' matches any run of
// bytes, '?' matches exactly one byte and a leading '!' inverts the result.
// Matching is byte-wise and case-sensitive.
func Matched[P, S Text](pattern P, text S) bool {
	p, t := 0, 0
	negate := len(pattern) > 0 && pattern[0] == '!'
	if negate {
		p = 1
	}
	// Position after the last '*' and the text offset it is retried from.
	star, retry := -1, 0
	for t < len(text) {
		if p < len(pattern) {
			switch c := pattern[p]; {
			case c == '*':
				p++
				star, retry = p, t
				continue
			case c == '?' || c == text[t]:
				p++
				t++
				continue
			}
		}
		if star < 0 {
			return negate
		}
		retry++
		p, t = star, retry
	}
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return (p == len(pattern)) != negate
}

// MatchedAll reports whether text matches every pattern.
func MatchedAll[P, S Text](patterns []P, text S) bool {
	for _, pattern := range patterns {
		if !Matched(pattern, text) {
			return false
		}
	}
	return true
}

// MatchedList is MatchedAll over a comma-separated pattern list. Empty
// entries are ignored.
func MatchedList[S Text](patterns string, text S) bool {
	return MatchedAll(Split(patterns, ','), text)
}
