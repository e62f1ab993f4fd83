// Package search finds the cheapest and the most expensive Hamiltonian
// paths over a distance matrix.
//
// A Hamiltonian path visits every location exactly once; there is no
// return to the origin. Both searches are exhaustive depth-first
// enumerations seeded from every start node:
//
//   - MinCost prunes a branch as soon as its partial cost is no longer
//     strictly below the best complete path found so far (branch-and-bound;
//     valid because costs are non-negative).
//   - MaxCost cannot prune and explores every permutation.
//
// Neighbours are tried in ascending index order, so the reported Path is
// the lexicographically smallest optimal visiting order. Parallel runs
// (WithParallel) fan out by start node and fold to the same Result.
//
// The searches assume a complete graph. By default the matrix is validated
// up front (matrix.ValidateDistance); with WithValidation(false) a missing
// connection is only discovered when a branch tries to cross it, and the
// whole search aborts with ErrMissingEdge. Path totals are added with an
// overflow check; a total that does not fit in a matrix.Cost aborts the
// search with ErrCostOverflow (rejected up front by validation).
//
// Complexity:
//   - Time:   O(N·(N−1)!) worst case for both searches.
//   - Memory: O(N²) for the prefetched matrix + O(N) per walker.
//
// Intended for puzzle-sized inputs (N ≲ 10).
package search
