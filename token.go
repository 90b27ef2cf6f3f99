package xsskit

import (
	"regexp"
	"strings"
)

var jsIdentifierRe = regexp.MustCompile(`\A[0-9a-zA-Z_$][0-9a-zA-Z_$.]*\z`)

// GetValidJSToken validates a single JavaScript token. A quoted string
// literal is re-encoded for the JS-string context and re-wrapped in its
// original quotes; a bare token must match the identifier grammar and is
// returned as-is. Anything else yields def.
func (s *Service) GetValidJSToken(value, def string) string {
	token := strings.TrimSpace(value)
	if token == "" {
		return def
	}
	if len(token) > 1 {
		if q := token[0]; (q == '\'' || q == '"') && token[len(token)-1] == q {
			literal := token[1 : len(token)-1]
			return string(q) + s.EncodeForJSString(literal) + string(q)
		}
	}
	if jsIdentifierRe.MatchString(token) {
		return token
	}
	s.rejected("js token", value, nil)
	return def
}

// GetValidMultiLineComment returns value iff it cannot terminate a /* */
// comment early, otherwise def.
func (s *Service) GetValidMultiLineComment(value, def string) string {
	if !strings.Contains(value, "*/") {
		return value
	}
	s.rejected("multi-line comment", value, nil)
	return def
}
