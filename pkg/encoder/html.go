package encoder

import "strings"

var htmlBodyReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

var htmlAttrReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
	"`", "&#96;", // IE treats the backtick as a quote character
)

// ForHTML escapes s for HTML body content.
func ForHTML(s string) string {
	return htmlBodyReplacer.Replace(s)
}

// ForHTMLAttr escapes s for an HTML attribute value.
func ForHTMLAttr(s string) string {
	return htmlAttrReplacer.Replace(s)
}
