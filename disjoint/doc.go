// Package disjoint implements a disjoint-set (union-find) structure over a
// fixed universe of comparable elements.
//
// What:
//
//   - New(universe) places every element in its own singleton subset.
//   - Find(e) names the subset that currently holds e.
//   - Merge(a, b) unions the subsets holding a and b.
//
// Why:
//
//   - Kruskal's algorithm uses it to reject edges that would close a cycle.
//   - Connected-component bookkeeping without a full graph traversal.
//
// Guarantees:
//
//   - Partition: every element of the universe belongs to exactly one subset
//     at all times; the union of all subsets is the universe.
//   - Find is read-only. Trees are kept shallow by union-by-rank instead of
//     path compression, so repeated Find calls never change any state.
//   - Element count never changes; each successful Merge lowers Count() by one.
//
// Complexity:
//
//   - New:     O(n) time and memory.
//   - Find:    O(log n) (rank bounds tree height).
//   - Merge:   O(log n).
//   - Subsets: O(n log n).
//
// Errors:
//
//   - ErrDuplicateElement  universe contains a repeated element.
//   - ErrElementNotFound   element was never part of the universe.
//   - ErrAlreadyMerged     Merge called on two elements of the same subset.
//     This is a caller bug: check Connected or compare Find results first.
package disjoint
