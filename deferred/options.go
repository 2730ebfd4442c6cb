package deferred

import (
	"io"
	"log/slog"
)

const (
	defaultLookupCacheSize     = 128
	defaultAutoCommitMultiplier = 4
)

var defaultOptions = options{
	lookupCacheSize:      defaultLookupCacheSize,
	autoCommitMultiplier: defaultAutoCommitMultiplier,
	logger:               slog.New(slog.NewTextHandler(io.Discard, nil)),
}

type options struct {
	lookupCacheSize      int
	autoCommitMultiplier int
	logger               *slog.Logger
}

// Option configures a List at construction time.
type Option func(o *options)

// WithLookupCache sets the capacity of the point-lookup memoization
// cache. size <= 0 disables it entirely; disabling it must never
// change any observable Get/Set/Insert/Remove result, only latency.
func WithLookupCache(size int) Option {
	return func(o *options) {
		o.lookupCacheSize = size
	}
}

// WithAutoCommitMultiplier sets how many multiples of the tree's
// HeightBound()+1 the pending node count may reach before Commit runs
// automatically. A multiplier of 0 disables auto-commit; the caller
// is then responsible for calling Commit.
func WithAutoCommitMultiplier(multiplier int) Option {
	return func(o *options) {
		o.autoCommitMultiplier = multiplier
	}
}

// WithLogger sets the structured logger used for auto-commit,
// poisoning, and mutation events. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
