package disjoint

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateElement is returned by New when the universe repeats an element.
	ErrDuplicateElement = errors.New("disjoint: duplicate element in universe")

	// ErrElementNotFound indicates that an element is not part of the universe.
	ErrElementNotFound = errors.New("disjoint: element not found")

	// ErrAlreadyMerged indicates that Merge was asked to join a subset with itself.
	ErrAlreadyMerged = errors.New("disjoint: elements already in the same subset")
)

// SubsetID identifies a subset. It is stable between merges: two elements
// share a SubsetID iff they are in the same subset, but a Merge may change
// the ID of the merged subset.
type SubsetID int

// Set is a partition of a fixed universe into disjoint subsets.
//
// Elements are addressed through dense slots assigned in universe order, so
// all results are deterministic for a given universe and sequence of merges.
// A Set is not safe for concurrent mutation.
type Set[T comparable] struct {
	slot   map[T]int // element → slot
	elems  []T       // slot → element
	parent []int     // parent slot; roots point to themselves
	rank   []int     // upper bound on tree height, meaningful for roots only
	count  int       // number of subsets
}

// New creates a Set in which every element of universe is its own subset.
//
// Returns ErrDuplicateElement if universe contains a repeat.
// Complexity: O(n).
func New[T comparable](universe []T) (*Set[T], error) {
	n := len(universe)
	s := &Set[T]{
		slot:   make(map[T]int, n),
		elems:  make([]T, n),
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i, e := range universe {
		if _, dup := s.slot[e]; dup {
			return nil, fmt.Errorf("disjoint: New(%v): %w", e, ErrDuplicateElement)
		}
		s.slot[e] = i
		s.elems[i] = e
		s.parent[i] = i
	}

	return s, nil
}

// root walks parent links up to the representative slot. No compression.
func (s *Set[T]) root(i int) int {
	for s.parent[i] != i {
		i = s.parent[i]
	}

	return i
}

// lookup maps an element to its slot.
func (s *Set[T]) lookup(e T) (int, error) {
	i, ok := s.slot[e]
	if !ok {
		return 0, fmt.Errorf("disjoint: %v: %w", e, ErrElementNotFound)
	}

	return i, nil
}

// Find returns the identifier of the subset containing e.
// Find never mutates the Set.
func (s *Set[T]) Find(e T) (SubsetID, error) {
	i, err := s.lookup(e)
	if err != nil {
		return 0, err
	}

	return SubsetID(s.root(i)), nil
}

// Connected reports whether a and b are in the same subset.
func (s *Set[T]) Connected(a, b T) (bool, error) {
	ra, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := s.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Merge unions the subsets containing a and b.
//
// Errors:
//   - ErrElementNotFound if either element is unknown.
//   - ErrAlreadyMerged   if a and b are already in the same subset; nothing changes.
//
// The lower-rank root is attached under the higher-rank one; on a tie the
// subset of b joins the subset of a.
func (s *Set[T]) Merge(a, b T) error {
	ia, err := s.lookup(a)
	if err != nil {
		return err
	}
	ib, err := s.lookup(b)
	if err != nil {
		return err
	}

	ra, rb := s.root(ia), s.root(ib)
	if ra == rb {
		return fmt.Errorf("disjoint: Merge(%v, %v): %w", a, b, ErrAlreadyMerged)
	}

	switch {
	case s.rank[ra] < s.rank[rb]:
		s.parent[ra] = rb
	case s.rank[ra] > s.rank[rb]:
		s.parent[rb] = ra
	default:
		s.parent[rb] = ra
		s.rank[ra]++
	}
	s.count--

	return nil
}

// Contains reports whether e is part of the universe.
func (s *Set[T]) Contains(e T) bool {
	_, ok := s.slot[e]

	return ok
}

// Len returns the number of elements in the universe.
func (s *Set[T]) Len() int { return len(s.elems) }

// Count returns the current number of subsets.
func (s *Set[T]) Count() int { return s.count }

// Subsets returns a snapshot of the partition. Subsets are ordered by the
// position of their first element in the universe, and elements inside a
// subset keep universe order.
func (s *Set[T]) Subsets() [][]T {
	out := make([][]T, 0, s.count)
	pos := make(map[int]int, s.count) // root slot → index in out
	for i, e := range s.elems {
		r := s.root(i)
		k, ok := pos[r]
		if !ok {
			k = len(out)
			pos[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], e)
	}

	return out
}
