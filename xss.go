package xsskit

import (
	"log/slog"

	"github.com/dmitrymomot/xsskit/pkg/htmlfilter"
)

// Filter is the markup-filtering capability consumed by the service. It owns
// the tag/attribute allowlist; the service never inspects markup itself.
//
// Implementations must be safe for concurrent use. The default implementation
// is htmlfilter.Policy.
type Filter interface {
	// IsValidHref reports whether the given href value survives the filter's
	// URL policy unchanged.
	IsValidHref(href string) bool

	// FilterHTML filters HTML content intended for an HTML context, removing
	// any markup the policy disallows. It never fails; unusable input yields
	// an empty string.
	FilterHTML(source string) string
}

// Service validates and encodes untrusted strings for embedding into HTML,
// XML, JavaScript, CSS, JSON and URL contexts. The zero value is not usable;
// construct with New.
type Service struct {
	filter Filter
	log    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithFilter sets the markup filter used by GetValidHref and FilterHTML.
// Nil filters are ignored.
func WithFilter(f Filter) Option {
	return func(s *Service) {
		if f != nil {
			s.filter = f
		}
	}
}

// WithLogger sets the logger for validation-failure diagnostics. Failures log
// at warn level with a generic message; the offending input is only logged at
// debug level. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates an immutable Service. Without options it filters markup through
// htmlfilter's default policy and logs through slog.Default.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.filter == nil {
		s.filter = htmlfilter.New()
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// rejected records a validation failure. Raw input stays out of warn-level
// logs so payloads do not leak into primary log streams.
func (s *Service) rejected(validator, input string, err error) {
	s.log.Warn("input failed validation", slog.String("validator", validator))
	if err != nil {
		s.log.Debug("rejected input",
			slog.String("validator", validator),
			slog.String("input", input),
			slog.String("error", err.Error()))
	} else {
		s.log.Debug("rejected input",
			slog.String("validator", validator),
			slog.String("input", input))
	}
}
