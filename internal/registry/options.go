package registry

import "log/slog"

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report informational outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithIDCollisions lets Update rename an entity onto an identifier that is
// already taken. Lookups then resolve to the first entity inserted.
func WithIDCollisions() Option {
	return func(r *Registry) {
		r.allowIDCollisions = true
	}
}

// WithOrphanedEnrollments keeps a removed student's entries in every
// course mapping instead of dropping them.
func WithOrphanedEnrollments() Option {
	return func(r *Registry) {
		r.orphanEnrollments = true
	}
}
