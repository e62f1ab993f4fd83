package route

import (
	"fmt"

	"github.com/katalvlaran/hamroute/matrix"
	"github.com/katalvlaran/hamroute/registry"
)

// Build registers every location in conns (first-seen order, From before
// To) and fills a symmetric distance matrix from the same list. When a pair
// appears more than once the last connection wins.
//
// Contract:
//   - labels must be non-empty;
//   - From != To;
//   - Cost > 0.
//
// An empty conns yields an empty Network (zero locations, 0×0 matrix).
//
// Complexity: O(E) registration + O(N²) allocation + O(E) fill.
func Build(conns []Connection) (*Network, error) {
	locs := registry.New[string]()

	var (
		i int
		c Connection
	)
	// Stage 1: reject connections the matrix cannot represent.
	for i, c = range conns {
		if c.From == "" || c.To == "" {
			return nil, fmt.Errorf("connection %d: %w", i, ErrEmptyLocation)
		}
		if c.From == c.To {
			return nil, fmt.Errorf("connection %d (%s): %w", i, c.From, ErrSelfConnection)
		}
		if c.Cost == matrix.NoEdge {
			return nil, fmt.Errorf("connection %d (%s-%s): %w", i, c.From, c.To, ErrZeroCost)
		}
		locs.Add(c.From)
		locs.Add(c.To)
	}

	// Stage 2: size the matrix from the registry.
	dist, err := matrix.NewSquare(locs.Len())
	if err != nil {
		return nil, err
	}

	// Stage 3: connections are bi-directional.
	var from, to int
	for _, c = range conns {
		if from, err = locs.Get(c.From); err != nil {
			return nil, err
		}
		if to, err = locs.Get(c.To); err != nil {
			return nil, err
		}
		if err = dist.SetSymmetric(from, to, c.Cost); err != nil {
			return nil, err
		}
	}

	return &Network{Locations: locs, Dist: dist}, nil
}

// Len returns the number of distinct locations.
func (n *Network) Len() int {
	if n == nil {
		return 0
	}

	return n.Locations.Len()
}

// Validate checks the matrix invariants search relies on, that every pair
// of locations is directly connected and that no full path can overflow a
// Cost. A missing pair is reported with its labels.
func (n *Network) Validate() error {
	if n == nil || n.Dist == nil || n.Locations == nil {
		return ErrNilNetwork
	}
	if err := matrix.ValidateSquare(n.Dist); err != nil {
		return err
	}
	if err := matrix.ValidateZeroDiagonal(n.Dist); err != nil {
		return err
	}
	if err := matrix.ValidateSymmetric(n.Dist); err != nil {
		return err
	}
	if i, j, missing := matrix.MissingPair(n.Dist); missing {
		a, _ := n.Locations.Label(i)
		b, _ := n.Locations.Label(j)
		return fmt.Errorf("no connection between %s and %s: %w", a, b, matrix.ErrIncompleteGraph)
	}

	return matrix.ValidateCostRange(n.Dist)
}

// PathCost sums the direct costs along path (a sequence of location ids).
// A step across a missing connection returns matrix.ErrIncompleteGraph; a
// total that does not fit in a Cost returns matrix.ErrCostOverflow.
func (n *Network) PathCost(path []int) (matrix.Cost, error) {
	if n == nil || n.Dist == nil {
		return 0, ErrNilNetwork
	}
	var (
		total matrix.Cost
		c     matrix.Cost
		err   error
		k     int
		ok    bool
	)
	for k = 1; k < len(path); k++ {
		if c, err = n.Dist.At(path[k-1], path[k]); err != nil {
			return 0, err
		}
		if c == matrix.NoEdge {
			return 0, fmt.Errorf("step %d (%d->%d): %w", k, path[k-1], path[k], matrix.ErrIncompleteGraph)
		}
		if total, ok = matrix.AddCost(total, c); !ok {
			return 0, fmt.Errorf("step %d (%d->%d): %w", k, path[k-1], path[k], matrix.ErrCostOverflow)
		}
	}

	return total, nil
}

// Route maps a path of location ids back to labels.
func (n *Network) Route(path []int) ([]string, error) {
	if n == nil || n.Locations == nil {
		return nil, ErrNilNetwork
	}
	out := make([]string, len(path))
	var (
		k   int
		err error
	)
	for k = range path {
		if out[k], err = n.Locations.Label(path[k]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
