package htmlfilter

import (
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Context identifies the markup context a filter call protects.
type Context int

const (
	// ContextHTML filters HTML content for embedding into HTML; allowlisted
	// markup survives.
	ContextHTML Context = iota
	// ContextPlain strips all markup, leaving escaped text content only.
	ContextPlain
)

// Policy is an immutable markup filter. Construct with New.
type Policy struct {
	html  *bluemonday.Policy
	plain *bluemonday.Policy
	href  *bluemonday.Policy
}

// Option overrides parts of the filter configuration.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithURLSchemes replaces the allowed URL schemes.
func WithURLSchemes(schemes ...string) Option {
	return func(c *Config) {
		if len(schemes) > 0 {
			c.AllowedURLSchemes = schemes
		}
	}
}

// WithRelativeURLs controls whether scheme-less URLs are accepted.
func WithRelativeURLs(allow bool) Option {
	return func(c *Config) { c.AllowRelativeURLs = allow }
}

// New builds a Policy from the default configuration and the given options.
func New(opts ...Option) *Policy {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	htmlPolicy := bluemonday.UGCPolicy()
	applyURLPolicy(htmlPolicy, cfg)
	if cfg.AllowDataURIImages {
		htmlPolicy.AllowDataURIImages()
	}

	// Anchor-only policy for href probing.
	hrefPolicy := bluemonday.NewPolicy()
	hrefPolicy.AllowAttrs("href").OnElements("a")
	applyURLPolicy(hrefPolicy, cfg)

	return &Policy{
		html:  htmlPolicy,
		plain: bluemonday.StrictPolicy(),
		href:  hrefPolicy,
	}
}

func applyURLPolicy(p *bluemonday.Policy, cfg Config) {
	p.RequireParseableURLs(true)
	p.AllowURLSchemes(cfg.AllowedURLSchemes...)
	p.AllowRelativeURLs(cfg.AllowRelativeURLs)
}

// Filter filters source for the given context. Unknown contexts get the
// strictest treatment.
func (p *Policy) Filter(ctx Context, source string) string {
	switch ctx {
	case ContextHTML:
		return p.html.Sanitize(source)
	default:
		return p.plain.Sanitize(source)
	}
}

// FilterHTML is shorthand for Filter(ContextHTML, source).
func (p *Policy) FilterHTML(source string) string {
	return p.html.Sanitize(source)
}

// IsValidHref reports whether href survives the URL policy. The value is
// probed through a minimal anchor element: it is valid when the sanitized
// anchor still carries a non-empty href attribute.
func (p *Policy) IsValidHref(href string) bool {
	if href == "" {
		return false
	}
	probe := `<a href="` + stdhtml.EscapeString(href) + `"></a>`
	return anchorHref(p.href.Sanitize(probe)) != ""
}

// anchorHref extracts the href attribute of the first anchor in fragment.
func anchorHref(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "a" {
				continue
			}
			for _, attr := range tok.Attr {
				if attr.Key == "href" {
					return attr.Val
				}
			}
		}
	}
}
