// Depth-first Hamiltonian path engine.
//
// space is the read-only problem (N and the prefetched cost buffer), shared
// by every walker. walker is one goroutine's search state: visited set,
// current path and incumbent. The sequential run uses a single walker for
// all start nodes so its incumbent carries across starts; the parallel run
// uses one walker per start and a shared atomic bound for pruning.
//
// A visited bit is set before descending into a neighbour and cleared on
// return, so sibling branches never observe each other's tentative state.

package search

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/hamroute/matrix"
)

// cancelCheckMask makes cancellation checks sparse (every 4096 expansions).
const cancelCheckMask = 4095

// space is the read-only search problem.
type space struct {
	n int
	w []matrix.Cost // w[u*n+v]
}

// at is a fast accessor into the dense cost buffer.
func (s *space) at(u, v int) matrix.Cost { return s.w[u*s.n+v] }

// prefetch copies dist into a flat buffer to keep interface calls out of
// the hot loop. The matrix must be square.
func prefetch(dist matrix.Matrix) (*space, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, err
	}
	var (
		n    = dist.Rows()
		sp   = &space{n: n, w: make([]matrix.Cost, n*n)}
		i, j int
		c    matrix.Cost
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if c, err = dist.At(i, j); err != nil {
				return nil, err
			}
			sp.w[i*n+j] = c
		}
	}

	return sp, nil
}

// bound is the best complete min-cost shared between parallel walkers.
// It only ever decreases.
type bound struct{ v atomic.Uint64 }

func newBound() *bound {
	b := &bound{}
	b.v.Store(math.MaxUint64)
	return b
}

func (b *bound) load() matrix.Cost { return matrix.Cost(b.v.Load()) }

// lower publishes c if it improves the bound.
func (b *bound) lower(c matrix.Cost) {
	for {
		old := b.v.Load()
		if uint64(c) >= old || b.v.CompareAndSwap(old, uint64(c)) {
			return
		}
	}
}

// walker holds one search thread's mutable state.
type walker struct {
	sp    *space
	obj   objective
	ctx   context.Context
	bound *bound // shared min bound; nil for maximize

	visited  *bitset.BitSet
	path     []int
	expanded int

	found    bool
	bestCost matrix.Cost
	bestPath []int
}

func newWalker(sp *space, obj objective, ctx context.Context, b *bound) *walker {
	wk := &walker{
		sp:       sp,
		obj:      obj,
		ctx:      ctx,
		bound:    b,
		visited:  bitset.New(uint(sp.n)),
		path:     make([]int, sp.n),
		bestPath: make([]int, sp.n),
	}
	if obj == minimize {
		wk.bestCost = math.MaxUint64
	}

	return wk
}

// root runs the search from a single start node.
func (wk *walker) root(start int) error {
	wk.visited.Set(uint(start))
	wk.path[0] = start
	err := wk.dfs(start, 1, 0)
	wk.visited.Clear(uint(start))

	return err
}

// admit reports whether a partial path of cost c is still worth extending.
// Costs never decrease along a path, so once a partial min path is no
// cheaper than the incumbent nothing below it can win. The shared bound
// admits ties so every worker still finds its own lexicographically first
// optimum; the fold breaks ties by start node.
func (wk *walker) admit(c matrix.Cost) bool {
	if wk.obj == maximize {
		return true
	}
	if c >= wk.bestCost {
		return false
	}

	return wk.bound == nil || c <= wk.bound.load()
}

// commit offers a complete path of cost c as the new incumbent.
func (wk *walker) commit(c matrix.Cost) {
	better := !wk.found
	if wk.found {
		if wk.obj == minimize {
			better = c < wk.bestCost
		} else {
			better = c > wk.bestCost
		}
	}
	if !better {
		return
	}
	wk.found = true
	wk.bestCost = c
	copy(wk.bestPath, wk.path)
	if wk.bound != nil {
		wk.bound.lower(c)
	}
}

// cancelled performs a sparse context check.
func (wk *walker) cancelled() error {
	if wk.expanded&cancelCheckMask != 0 {
		return nil
	}

	return wk.ctx.Err()
}

// dfs extends the current path from last. depth is the number of nodes
// already on the path; cost is the running total.
func (wk *walker) dfs(last, depth int, cost matrix.Cost) error {
	wk.expanded++
	if err := wk.cancelled(); err != nil {
		return err
	}

	// Terminal case: every node is on the path.
	if depth == wk.sp.n {
		wk.commit(cost)
		return nil
	}

	var (
		v    int
		c    matrix.Cost
		next matrix.Cost
		ok   bool
	)
	for v = 0; v < wk.sp.n; v++ {
		if wk.visited.Test(uint(v)) {
			continue
		}
		c = wk.sp.at(last, v)
		if c == matrix.NoEdge {
			return fmt.Errorf("%d->%d: %w", last, v, ErrMissingEdge)
		}
		if next, ok = matrix.AddCost(cost, c); !ok {
			return fmt.Errorf("%d->%d: %w", last, v, ErrCostOverflow)
		}
		if !wk.admit(next) {
			continue
		}
		wk.visited.Set(uint(v))
		wk.path[depth] = v
		if err := wk.dfs(v, depth+1, next); err != nil {
			return err
		}
		wk.visited.Clear(uint(v))
	}

	return nil
}

// result snapshots the incumbent.
func (wk *walker) result() Result {
	if !wk.found {
		return Result{Expanded: wk.expanded}
	}

	return Result{Cost: wk.bestCost, Path: slices.Clone(wk.bestPath), Expanded: wk.expanded}
}

// better reports whether a beats b under obj, breaking cost ties by the
// lexicographically smaller path.
func better(obj objective, a, b Result) bool {
	if a.Path == nil {
		return false
	}
	if b.Path == nil {
		return true
	}
	if a.Cost != b.Cost {
		if obj == minimize {
			return a.Cost < b.Cost
		}
		return a.Cost > b.Cost
	}

	return slices.Compare(a.Path, b.Path) < 0
}
