package theme

import "github.com/opencode-ai/themekit/internal/metrics"

// Option configures a Registry.
type Option func(*Registry)

// WithStrictAttributes makes lookups of undefined attributes fail with
// ErrUnknownAttribute instead of resolving to #000000.
func WithStrictAttributes() Option {
	return func(r *Registry) {
		r.strict = true
	}
}

// WithMetrics records registry activity in m.
func WithMetrics(m *metrics.Registry) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}
