package remark

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-slidemacro/pkg/macro"
)

// Sanitizer cleans macro output before it is spliced into the document.
type Sanitizer interface {
	Sanitize(markup string) string
}

// Option configures an Expander.
type Option func(*config)

type config struct {
	registry    *macro.Registry
	sanitizer   Sanitizer
	passthrough bool
	logger      zerolog.Logger
}

// WithRegistry overrides the default built-in macro registry.
func WithRegistry(reg *macro.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.registry = reg
		}
	}
}

// WithSanitizer runs every macro result through s.
func WithSanitizer(s Sanitizer) Option {
	return func(cfg *config) {
		cfg.sanitizer = s
	}
}

// WithPassthroughUnknown leaves tokens naming unregistered macros untouched
// instead of failing the expansion.
func WithPassthroughUnknown() Option {
	return func(cfg *config) {
		cfg.passthrough = true
	}
}

// WithLogger sets the logger used for per-invocation debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
