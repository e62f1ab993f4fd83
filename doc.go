// Package hamroute finds the cheapest and the most expensive route that
// visits every location of an undirected, fully connected network exactly
// once (an open Hamiltonian path, no return to the start).
//
// What is inside?
//
//	registry/ — label → dense id, first-seen order
//	matrix/   — Cost, the Matrix interface, Dense and structural validators
//	route/    — edge-list parser, Connection, Network (registry + matrix)
//	search/   — depth-first MinCost (branch-and-bound) / MaxCost (exhaustive),
//	            Extremes, Solve; optional start-node parallelism
//	builder/  — deterministic generators for complete and path networks
//	cmd/hamroute — CLI: solve and generate
//
// Quick example:
//
//	London to Dublin = 464
//	London to Belfast = 518
//	Dublin to Belfast = 141
//
// yields 605 (London → Dublin → Belfast) and 982 (Dublin → London → Belfast).
//
//	go install github.com/katalvlaran/hamroute/cmd/hamroute@latest
package hamroute
