package route

import (
	"errors"

	"github.com/katalvlaran/hamroute/matrix"
	"github.com/katalvlaran/hamroute/registry"
)

// Sentinel errors for connection parsing and network construction.
var (
	// ErrSyntax indicates a malformed connection line.
	ErrSyntax = errors.New("route: syntax error")

	// ErrEmptyLocation indicates a connection with an empty From or To label.
	ErrEmptyLocation = errors.New("route: empty location")

	// ErrSelfConnection indicates a connection whose endpoints are equal.
	ErrSelfConnection = errors.New("route: self connection")

	// ErrZeroCost indicates a connection with cost 0, which would be
	// indistinguishable from a missing connection in the matrix.
	ErrZeroCost = errors.New("route: zero cost connection")

	// ErrNilNetwork indicates that a nil *Network was used.
	ErrNilNetwork = errors.New("route: network is nil")
)

// Connection is an undirected, weighted edge between two locations.
type Connection struct {
	From string      `json:"from" yaml:"from"`
	To   string      `json:"to" yaml:"to"`
	Cost matrix.Cost `json:"cost" yaml:"cost"`
}

// Reverse returns the same connection with its endpoints swapped.
func (c Connection) Reverse() Connection {
	return Connection{From: c.To, To: c.From, Cost: c.Cost}
}

// Network is the dense model of a connection list: a registry of location
// labels and a symmetric distance matrix indexed by registry ids.
// A Network is read-only once Build returns it.
type Network struct {
	// Locations maps labels to matrix indices.
	Locations *registry.Registry[string]

	// Dist holds the direct cost between every pair of locations,
	// matrix.NoEdge where no connection was given.
	Dist *matrix.Dense
}
