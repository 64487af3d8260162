// Package algo provides standalone generic algorithms over plain Go slices
// with a caller-supplied ordering function.
//
// The two entry points are deliberately recursive procedures with explicit
// base cases:
//
//   - [Sort] — in-place recursive quicksort (last-element pivot)
//   - [Search] — recursive binary search over an already-sorted slice
//
// Both are generic over any element type; the ordering is supplied as a
// three-way comparison function following the [slices.BinarySearchFunc]
// convention (negative, zero, or positive):
//
//	days := []int{3, 1, 2}
//	_ = algo.Sort(days, func(a, b int) int { return a - b })
//	i, ok := algo.Search(days, 2, func(a, b int) int { return a - b })
//	// i == 1, ok == true
//
// # Caller obligations
//
// Search requires its input sorted non-descending under the same ordering
// function it is given; this is never checked internally, and the result on
// an unsorted slice is meaningless (though always memory-safe). Sort
// mutates its slice in place; concurrent calls on the same slice must be
// serialised by the caller. Disjoint slices are safe to sort concurrently.
//
// # Recursion depth
//
// Search recurses O(log n) deep. Sort's recursion depth is O(n) in the
// worst case (already-sorted or reverse-sorted input, a consequence of the
// last-element pivot), so Sort refuses slices longer than [MaxLen] with
// [ErrTooLarge] rather than risking an uncontrolled stack failure.
package algo
