package search

import (
	"errors"

	"github.com/katalvlaran/hamroute/matrix"
)

var (
	// ErrMissingEdge indicates the search tried to step between two
	// locations with no direct connection.
	ErrMissingEdge = errors.New("search: missing edge")

	// ErrCostOverflow indicates a path total that no longer fits in a
	// matrix.Cost. It is matrix.ErrCostOverflow, so either name matches.
	ErrCostOverflow = matrix.ErrCostOverflow

	// ErrNilMatrix indicates a nil distance matrix.
	ErrNilMatrix = errors.New("search: distance matrix is nil")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("search: worker count must be >= 0")
)

// Result is the outcome of one extremum search.
type Result struct {
	// Cost is the total cost of the best path. 0 for N ≤ 1.
	Cost matrix.Cost

	// Path is the visiting order (location ids) of the best path, len == N.
	// Nil when there are no locations.
	Path []int

	// Expanded is the number of search states visited (diagnostic only;
	// it differs between sequential and parallel runs).
	Expanded int
}

// Summary is the outcome of Solve: both extrema plus their labelled routes.
type Summary struct {
	// Locations lists labels ordered by id.
	Locations []string

	Min      Result
	MinRoute []string

	Max      Result
	MaxRoute []string
}

// objective selects which extremum a walker is looking for.
type objective int

const (
	minimize objective = iota
	maximize
)

func (o objective) String() string {
	if o == minimize {
		return "min"
	}

	return "max"
}
