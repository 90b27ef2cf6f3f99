package encoder

import "strings"

// cssNeedsEscape reports whether c can change interpretation inside a CSS
// string: the escape character itself, quotes, and the punctuation that could
// open a function call, a comment, markup or a new declaration.
func cssNeedsEscape(c byte) bool {
	switch c {
	case '\\', '"', '\'', '&', '/', '(', ')', '+', ':', ';', '<', '>', '{', '}':
		return true
	}
	return c < 0x20
}

// cssEscapeExtends reports whether c would be consumed as part of a preceding
// hex escape sequence, requiring the escape to be space-terminated.
func cssEscapeExtends(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	case c == ' ', c == '\t', c == '\n', c == '\f', c == '\r':
		return true
	}
	return false
}

// ForCSSString escapes s for a single- or double-quoted CSS string literal
// using hex escapes, space-terminated where the following character would
// otherwise extend the escape.
func ForCSSString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !cssNeedsEscape(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('\\')
		if c > 0xF {
			b.WriteByte(hexDigits[c>>4])
		}
		b.WriteByte(hexDigits[c&0xF])
		if i+1 < len(s) && cssEscapeExtends(s[i+1]) {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
