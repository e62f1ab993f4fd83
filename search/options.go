package search

import (
	"context"

	"github.com/rs/zerolog"
)

// Option configures a search.
type Option func(*Options)

// Options holds search configuration. Use DefaultOptions and the With*
// helpers rather than building it by hand.
type Options struct {
	// Ctx allows cancellation; checked every cancelCheckMask+1 expansions.
	// Defaults to context.Background(), i.e. run to completion.
	Ctx context.Context

	// Workers > 1 fans the search out by start node. 0 and 1 mean sequential.
	Workers int

	// Validate runs matrix.ValidateDistance (or Network.Validate in Solve)
	// before searching. Default true.
	Validate bool

	// Logger receives per-start debug events and per-search info events.
	// Defaults to a no-op logger.
	Logger zerolog.Logger
}

// DefaultOptions returns sequential, validating, silent options.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  0,
		Validate: true,
		Logger:   zerolog.Nop(),
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallel sets the number of concurrent start-node workers.
func WithParallel(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// WithValidation toggles up-front validation of the distance matrix.
func WithValidation(on bool) Option {
	return func(o *Options) {
		o.Validate = on
	}
}

// WithLogger installs a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.Workers < 0 {
		return o, ErrBadWorkers
	}

	return o, nil
}
