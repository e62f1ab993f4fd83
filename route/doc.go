// Package route turns a list of labelled connections into the dense model
// the path search works on.
//
// A Connection names two locations and the cost of travelling between them
// in either direction. Build registers every location in first-seen order,
// allocates an N×N matrix.Dense and writes each cost at both (from,to) and
// (to,from). The result is a Network: the registry plus the matrix.
//
// Parse reads the plain-text form, one connection per line:
//
//	London to Dublin = 464
//	London to Belfast = 518
//	Dublin to Belfast = 141
//
// Errors:
//
//	ErrSyntax          - a line does not match "<from> to <to> = <cost>".
//	ErrEmptyLocation   - a connection has an empty label.
//	ErrSelfConnection  - a connection links a location to itself.
//	ErrZeroCost        - a connection has cost 0 (reserved for "no edge").
//	ErrNilNetwork      - a method was called on a nil *Network.
package route
