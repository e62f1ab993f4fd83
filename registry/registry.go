// Package registry assigns dense zero-based integer ids to location labels.
//
// Ids are handed out in first-seen order, so a Registry built from the same
// sequence of labels always produces the same numbering. Search code indexes
// slices and matrices by these ids instead of hashing strings in hot loops.
//
// Complexity:
//   - Add, Get, Contains: O(1) amortized.
//   - Label: O(1).
//   - Labels: O(n) (copy).
//
// Errors:
//   - ErrUnknownLocation  if Get is called with a label never passed to Add.
//   - ErrIDOutOfRange     if Label is called with id ∉ [0, Len()).
package registry

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownLocation indicates a lookup of a label that was never registered.
	// It signals that the edge list and the registry population are out of sync.
	ErrUnknownLocation = errors.New("registry: unknown location")

	// ErrIDOutOfRange indicates a reverse lookup with an id outside [0, Len()).
	ErrIDOutOfRange = errors.New("registry: id out of range")
)

// Registry is a bijective mapping from labels to ids in [0, Len()).
// The zero value is not usable; call New.
type Registry[K comparable] struct {
	ids    map[K]int // label -> id
	labels []K       // id -> label
}

// New returns an empty Registry.
func New[K comparable]() *Registry[K] {
	return &Registry[K]{ids: make(map[K]int)}
}

// Add registers label and returns its id. Adding a label twice is a no-op
// that returns the id assigned the first time.
func (r *Registry[K]) Add(label K) int {
	if id, ok := r.ids[label]; ok {
		return id
	}
	id := len(r.labels)
	r.ids[label] = id
	r.labels = append(r.labels, label)

	return id
}

// Get returns the id previously assigned to label.
func (r *Registry[K]) Get(label K) (int, error) {
	id, ok := r.ids[label]
	if !ok {
		return 0, fmt.Errorf("%v: %w", label, ErrUnknownLocation)
	}

	return id, nil
}

// MustGet is like Get but panics on an unknown label. Use it only where the
// label is known to have been registered by the same caller.
func (r *Registry[K]) MustGet(label K) int {
	id, err := r.Get(label)
	if err != nil {
		panic(err)
	}

	return id
}

// Contains reports whether label has been registered.
func (r *Registry[K]) Contains(label K) bool {
	_, ok := r.ids[label]
	return ok
}

// Len returns the number of distinct labels registered so far.
func (r *Registry[K]) Len() int { return len(r.ids) }

// Label returns the label registered under id.
func (r *Registry[K]) Label(id int) (K, error) {
	if id < 0 || id >= len(r.labels) {
		var zero K
		return zero, fmt.Errorf("id %d (len %d): %w", id, len(r.labels), ErrIDOutOfRange)
	}

	return r.labels[id], nil
}

// Labels returns all labels ordered by id. The returned slice is a copy.
func (r *Registry[K]) Labels() []K {
	return slices.Clone(r.labels)
}
