package encoder

import "strings"

const hexDigits = "0123456789abcdef"

// ForJSString escapes s for a single- or double-quoted JavaScript string
// literal. Quotes, the backslash, the slash (to break "</script>"), markup
// characters and the bare hyphen are escaped, along with every control
// character and the JS line separators U+2028/U+2029.
func ForJSString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\x27`)
		case '"':
			b.WriteString(`\x22`)
		case '/':
			b.WriteString(`\/`)
		case '-':
			b.WriteString(`\-`)
		case '&':
			b.WriteString(`\x26`)
		case '<':
			b.WriteString(`\x3c`)
		case '>':
			b.WriteString(`\x3e`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				b.WriteString(`\x`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xF])
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
