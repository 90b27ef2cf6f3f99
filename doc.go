// Package xsskit provides context-aware input validation and output encoding
// for neutralizing cross-site-scripting payloads before untrusted strings are
// embedded into HTML, XML, JavaScript, CSS, JSON or URL output.
//
// Every operation follows the same contract: the caller supplies a raw value
// and a safe fallback, and receives either a value proven safe for the target
// context or the fallback. No operation returns an error or panics; invalid
// input always resolves to the fallback (or an empty string for hrefs).
//
// Key Features:
//
//   - Bounds-checked numeric and CSS dimension validation
//   - CSS token, CSS color and JavaScript token grammars
//   - Namespace-mangling href validation with allowlist filtering
//   - Structural JSON and XML well-formedness checks (XXE-hardened)
//   - Per-context encoders for HTML, HTML attribute, XML, XML attribute,
//     JavaScript string and CSS string output
//
// Basic Usage:
//
//	xss := xsskit.New()
//
//	width := xss.GetValidDimension(r.FormValue("width"), "100")
//	href := xss.GetValidHref(r.FormValue("link"))
//	body := xss.EncodeForHTML(userComment)
//
// Markup filtering and href acceptance are delegated to a Filter, by default
// the bluemonday-backed policy from pkg/htmlfilter. A custom Filter can be
// injected for testing or to change the allowlist:
//
//	xss := xsskit.New(
//		xsskit.WithFilter(customFilter),
//		xsskit.WithLogger(logger),
//	)
//
// Thread Safety:
//
// A Service is immutable after construction. All grammars are compiled once
// at package initialization and every operation is a pure function over its
// input, so a single Service can be shared by any number of goroutines.
package xsskit
