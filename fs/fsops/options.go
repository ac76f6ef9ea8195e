package fsops

import (
	"crypto/rand"
	"io"
	"log/slog"
)

// DefaultMaxSymlinkDepth is the number of symbolic links Status and
// Canonical expand before failing with CodeTooManySymlinks.
const DefaultMaxSymlinkDepth = 40

// Options contains configuration for an FS.
type Options struct {
	// Logger receives one debug record per failed operation and per
	// successful mutation. If nil, records are discarded.
	Logger *slog.Logger

	// MaxSymlinkDepth bounds symbolic link expansion in Status and
	// Canonical. Values below 1 select DefaultMaxSymlinkDepth.
	MaxSymlinkDepth int

	// Random supplies the entropy consumed by UniquePath. If nil,
	// crypto/rand is used.
	Random io.Reader
}

// Option is a functional option for configuring an FS.
type Option func(*Options)

// WithLogger sets the logger used for operation records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithMaxSymlinkDepth sets the symbolic link expansion bound.
func WithMaxSymlinkDepth(depth int) Option {
	return func(o *Options) {
		o.MaxSymlinkDepth = depth
	}
}

// WithRandom sets the entropy source for UniquePath. Tests use it to make
// generated names deterministic.
func WithRandom(r io.Reader) Option {
	return func(o *Options) {
		o.Random = r
	}
}

func newOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.MaxSymlinkDepth < 1 {
		o.MaxSymlinkDepth = DefaultMaxSymlinkDepth
	}
	if o.Random == nil {
		o.Random = rand.Reader
	}
	return o
}
