package glprog

import "log/slog"

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger for a single context, overriding the
// package-wide logger from SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithStrictAttributes makes BindLayout fail with ErrAttributeNotFound when a
// layout attribute is not active in the program. By default the attribute is
// skipped and a warning is logged.
func WithStrictAttributes(strict bool) Option {
	return func(c *Context) { c.strictAttributes = strict }
}
