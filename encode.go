package xsskit

import (
	"strings"

	"github.com/dmitrymomot/xsskit/pkg/encoder"
)

// EncodeForHTML escapes value for embedding into HTML body content.
func (s *Service) EncodeForHTML(value string) string {
	return encoder.ForHTML(value)
}

// EncodeForHTMLAttr escapes value for embedding into an HTML attribute value.
func (s *Service) EncodeForHTMLAttr(value string) string {
	return encoder.ForHTMLAttr(value)
}

// EncodeForXML escapes value for embedding into XML element content.
func (s *Service) EncodeForXML(value string) string {
	return encoder.ForXML(value)
}

// EncodeForXMLAttr escapes value for embedding into an XML attribute value.
func (s *Service) EncodeForXMLAttr(value string) string {
	return encoder.ForXMLAttr(value)
}

// EncodeForJSString escapes value for embedding into a JavaScript string
// literal. Encoded bare hyphens are rewritten to their unicode escape so the
// output can never form a "--" sequence that terminates an HTML comment.
func (s *Service) EncodeForJSString(value string) string {
	return strings.ReplaceAll(encoder.ForJSString(value), "\\-", "\\u002D")
}

// EncodeForCSSString escapes value for embedding into a CSS string literal.
func (s *Service) EncodeForCSSString(value string) string {
	return encoder.ForCSSString(value)
}
