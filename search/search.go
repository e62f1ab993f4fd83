package search

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hamroute/matrix"
	"github.com/katalvlaran/hamroute/route"
)

// MinCost returns the cheapest Hamiltonian path over dist.
//
// Errors:
//   - ErrNilMatrix, matrix.ErrNonSquare for malformed input.
//   - matrix validation sentinels when validation is on (default).
//   - ErrMissingEdge when validation is off and a branch reaches a
//     missing connection.
//   - ctx.Err() when the context is cancelled.
func MinCost(dist matrix.Matrix, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	return run(dist, minimize, o)
}

// MaxCost returns the most expensive Hamiltonian path over dist.
// Errors as for MinCost.
func MaxCost(dist matrix.Matrix, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	return run(dist, maximize, o)
}

// Extremes runs MinCost then MaxCost with the same options, validating
// the matrix at most once.
func Extremes(dist matrix.Matrix, opts ...Option) (lo, hi Result, err error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, Result{}, err
	}
	if lo, err = run(dist, minimize, o); err != nil {
		return Result{}, Result{}, err
	}
	o.Validate = false
	if hi, err = run(dist, maximize, o); err != nil {
		return Result{}, Result{}, err
	}

	return lo, hi, nil
}

// Solve is the top-level driver: it validates net (unless disabled), runs
// both extrema and maps the winning paths back to location labels.
func Solve(net *route.Network, opts ...Option) (Summary, error) {
	if net == nil || net.Dist == nil || net.Locations == nil {
		return Summary{}, route.ErrNilNetwork
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Summary{}, err
	}
	if o.Validate {
		if err = net.Validate(); err != nil {
			return Summary{}, err
		}
	}

	var s Summary
	s.Locations = net.Locations.Labels()
	s.Min, s.Max, err = Extremes(net.Dist, append(opts[:len(opts):len(opts)], WithValidation(false))...)
	if err != nil {
		return Summary{}, err
	}
	if s.MinRoute, err = net.Route(s.Min.Path); err != nil {
		return Summary{}, err
	}
	if s.MaxRoute, err = net.Route(s.Max.Path); err != nil {
		return Summary{}, err
	}

	return s, nil
}

// run validates, prefetches and dispatches to the sequential or parallel
// driver. An empty matrix yields the zero Result.
func run(dist matrix.Matrix, obj objective, o Options) (Result, error) {
	if dist == nil {
		return Result{}, ErrNilMatrix
	}
	if o.Validate {
		if err := matrix.ValidateDistance(dist); err != nil {
			return Result{}, err
		}
	}
	sp, err := prefetch(dist)
	if err != nil {
		return Result{}, err
	}
	if sp.n == 0 {
		return Result{}, nil
	}

	var res Result
	if o.Workers > 1 {
		res, err = runParallel(sp, obj, o)
	} else {
		res, err = runSequential(sp, obj, o)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s search: %w", obj, err)
	}
	o.Logger.Info().
		Str("objective", obj.String()).
		Int("locations", sp.n).
		Uint64("cost", uint64(res.Cost)).
		Ints("path", res.Path).
		Int("expanded", res.Expanded).
		Msg("search finished")

	return res, nil
}

// runSequential folds over start nodes with one walker, so the incumbent
// found from earlier starts keeps pruning later ones.
func runSequential(sp *space, obj objective, o Options) (Result, error) {
	wk := newWalker(sp, obj, o.Ctx, nil)
	var s int
	for s = 0; s < sp.n; s++ {
		if err := o.Ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := wk.root(s); err != nil {
			return Result{}, err
		}
		o.Logger.Debug().
			Str("objective", obj.String()).
			Int("start", s).
			Uint64("best", uint64(wk.bestCost)).
			Msg("start node exhausted")
	}

	return wk.result(), nil
}

// runParallel runs one walker per start node on at most o.Workers
// goroutines and folds the per-start results.
func runParallel(sp *space, obj objective, o Options) (Result, error) {
	var (
		g, ctx  = errgroup.WithContext(o.Ctx)
		results = make([]Result, sp.n)
		b       *bound
	)
	if obj == minimize {
		b = newBound()
	}
	g.SetLimit(o.Workers)

	var s int
	for s = 0; s < sp.n; s++ {
		start := s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			wk := newWalker(sp, obj, ctx, b)
			if err := wk.root(start); err != nil {
				return err
			}
			results[start] = wk.result()
			o.Logger.Debug().
				Str("objective", obj.String()).
				Int("start", start).
				Bool("found", wk.found).
				Uint64("best", uint64(wk.bestCost)).
				Msg("start node exhausted")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var (
		best     Result
		expanded int
		r        Result
	)
	for _, r = range results {
		expanded += r.Expanded
		if better(obj, r, best) {
			best = r
		}
	}
	best.Expanded = expanded

	return best, nil
}
