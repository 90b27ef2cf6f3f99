// Package encoder provides the low-level character-escaping primitives for
// each output context supported by xsskit: HTML body, HTML attribute, XML
// body, XML attribute, JavaScript string literal and CSS string literal.
//
// Each function is a pure transform over its input and escapes exactly the
// characters that can change interpretation in its context, leaving
// everything else untouched. Already-safe ASCII alphanumeric input passes
// through unchanged; encoding is not idempotent, so applying an encoder to
// already-encoded input double-escapes it by design of the contract, not by
// accident.
//
// The functions are stateless and safe for concurrent use.
package encoder
