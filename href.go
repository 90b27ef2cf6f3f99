package xsskit

import (
	"net/url"
	"regexp"
	"strings"
)

// attrUnsafeReplacer percent-encodes the characters that are unsafe in an
// unquoted HTML attribute value. '=' stays as-is so query strings keep
// working.
var attrUnsafeReplacer = strings.NewReplacer(
	`"`, "%22",
	"'", "%27",
	">", "%3E",
	"<", "%3C",
	"`", "%60",
	" ", "%20",
)

// mangleNamespaceRe matches a namespaced path segment prefix such as "/jcr:".
var mangleNamespaceRe = regexp.MustCompile(`/([^:/]+):`)

// GetValidHref validates a URL for use as an href attribute value. The value
// is percent-encoded for unquoted-attribute safety, namespace-mangled and
// then submitted to the filter's URL policy. Any failure yields an empty
// string; GetValidHref never fails.
func (s *Service) GetValidHref(value string) string {
	if value == "" {
		return ""
	}
	href := attrUnsafeReplacer.Replace(value)
	href, err := mangleNamespaces(href)
	if err != nil {
		s.rejected("href", value, err)
		return ""
	}
	if !s.filter.IsValidHref(href) {
		s.rejected("href", value, nil)
		return ""
	}
	return href
}

// mangleNamespaces rewrites each "/ns:name" path segment of an URI to
// "/_ns_name". URIs whose raw path carries no colon pass through unchanged,
// percent-encoding intact. When mangling applies, the path is percent-decoded
// and re-encoded during reassembly while every other component is carried
// over raw.
func mangleNamespaces(href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	rawPath := u.EscapedPath()
	if !strings.Contains(rawPath, ":") {
		return href, nil
	}

	mangled := mangleNamespaceRe.ReplaceAllString(rawPath, "/_${1}_")
	decoded, err := url.PathUnescape(mangled)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if u.Scheme != "" && u.Host != "" {
		b.WriteString(u.Scheme)
		b.WriteString("://")
		if u.User != nil {
			b.WriteString(u.User.String())
			b.WriteByte('@')
		}
		b.WriteString(u.Host)
	}
	if decoded != "" {
		b.WriteString((&url.URL{Path: decoded}).EscapedPath())
	}
	if u.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(u.RawQuery)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.EscapedFragment())
	}
	return b.String(), nil
}
