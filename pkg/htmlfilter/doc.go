// Package htmlfilter provides the allowlist markup filter behind xsskit's
// href validation and HTML filtering, built on bluemonday.
//
// A Policy owns three bluemonday policies: a UGC-style allowlist for HTML
// content embedded into HTML, a strict strip-everything policy for plain-text
// contexts, and a minimal anchor policy used to probe href values against the
// URL rules.
//
// Basic Usage:
//
//	policy := htmlfilter.New()
//
//	safe := policy.FilterHTML(userHTML)
//	ok := policy.IsValidHref("https://example.com/page")
//
// The URL policy is configurable through functional options, environment
// variables (see Config) or a YAML policy file:
//
//	cfg, err := htmlfilter.LoadConfigFile("policy.yaml")
//	if err != nil {
//		// handle error
//	}
//	policy := htmlfilter.New(htmlfilter.WithConfig(cfg))
//
// A Policy is immutable after construction and safe for concurrent use.
package htmlfilter
