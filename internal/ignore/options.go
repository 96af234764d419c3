package ignore

import "github.com/bethropolis/rcat/internal/logger"

// Option configures a Matcher.
type Option func(*Matcher)

// WithDotfiles keeps paths that have a segment starting with '.'.
func WithDotfiles(include bool) Option {
	return func(m *Matcher) {
		m.ignoreHidden = !include
	}
}

func WithLogger(l logger.Interface) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithDisabled turns the matcher off entirely; nothing is ignored.
func WithDisabled(disabled bool) Option {
	return func(m *Matcher) {
		m.disabled = disabled
	}
}
