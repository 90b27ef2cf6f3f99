package xsskit

import (
	"regexp"
	"strings"
)

// CSS token sub-grammars, mirroring the railroad diagrams of
// https://www.w3.org/TR/css-syntax-3/. Matching is anchored and
// case-insensitive: a token is valid iff one alternative consumes it
// entirely. regexp's RE2 engine keeps matching linear on any input.
const (
	cssCtrlChars = `\x00\x08\x0B\x0C\x0E-\x1F`

	// https://www.w3.org/TR/css-syntax-3/#number-token-diagram
	cssNumber = `[+-]?\d*\.?\d*(?:e[+-]?\d+)?`
	// https://www.w3.org/TR/css-syntax-3/#hex-digit-diagram
	cssHexDigits = `#[0-9a-f]*`
	// https://www.w3.org/TR/css-syntax-3/#ident-token-diagram
	cssIdentifier = `-?[a-z_` + cssCtrlChars + `][\w\-` + cssCtrlChars + `]*`
	// https://www.w3.org/TR/css-syntax-3/#string-token-diagram
	cssString = `"(?:[^"^\\\n]|\\")*"|'(?:[^'^\\\n]|\\')*'`
	// https://www.w3.org/TR/css-syntax-3/#dimension-token-diagram
	cssDimension = cssNumber + cssIdentifier
	// https://www.w3.org/TR/css-syntax-3/#percentage-token-diagram
	cssPercent = cssNumber + `%`
	// https://www.w3.org/TR/css-syntax-3/#function-token-diagram
	cssFunction = cssIdentifier + `\((?:(?:` + cssNumber + `)|(?:` + cssIdentifier + `)|(?:\s*)|(?:,))*\)`
	// https://www.w3.org/TR/css-syntax-3/#url-unquoted-diagram
	cssURLUnquoted = `[^"^'()` + cssCtrlChars + `]*`
	// https://www.w3.org/TR/css-syntax-3/#url-token-diagram
	cssURL = `url\((?:(?:` + cssURLUnquoted + `)|(?:` + cssString + `))\)`
)

var (
	// cssTokenRe is the composite grammar for a single CSS value token.
	cssTokenRe = regexp.MustCompile(`(?i)\A(?:` +
		`(?:` + cssNumber + `)` +
		`|(?:` + cssDimension + `)` +
		`|(?:` + cssPercent + `)` +
		`|(?:` + cssHexDigits + `)` +
		`|(?:` + cssIdentifier + `)` +
		`|(?:` + cssString + `)` +
		`|(?:` + cssFunction + `)` +
		`|(?:` + cssURL + `)` +
		`)\z`)

	// jsSchemeRe spots a javascript: scheme smuggled into a token. RE2 has no
	// lookahead, so the quoted-string exclusion is enforced as a separate
	// reject; this also covers unquoted url() payloads.
	jsSchemeRe = regexp.MustCompile(`(?i)javascript\s?:`)

	// Colors in hex or functional notation. Letters are limited to a-f, g, h,
	// l, r and s; keeping x, u and ';' out blocks expression(...), url(...)
	// and escaping the value context.
	cssColorHexFnRe = regexp.MustCompile(`(?i)^[#a-fghlrs(+0-9\-.%,) \t\n\x0B\f\r]+$`)
	// Named color values.
	cssColorNamedRe = regexp.MustCompile(`(?i)^[a-z \t\n\x0B\f\r]+$`)
)

// GetValidStyleToken returns value iff it is a single well-formed CSS value
// token (number, dimension, percentage, hex color, identifier, string,
// function or url), otherwise def. There is no partial sanitization; the
// token is accepted or rejected as a whole.
func (s *Service) GetValidStyleToken(value, def string) string {
	if value == "" {
		return def
	}
	if cssTokenRe.MatchString(value) && !jsSchemeRe.MatchString(value) {
		return value
	}
	s.rejected("style token", value, nil)
	return def
}

// GetValidCSSColor returns the trimmed value iff it is restricted to the
// character set of hex/functional color notation or to a named color,
// otherwise def.
func (s *Service) GetValidCSSColor(value, def string) string {
	if value == "" {
		return def
	}
	color := strings.TrimSpace(value)
	if cssColorHexFnRe.MatchString(color) || cssColorNamedRe.MatchString(color) {
		return color
	}
	s.rejected("css color", value, nil)
	return def
}
