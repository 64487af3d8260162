package algo

// Search looks for target in s by recursive binary search and returns the
// index of a matching element, or (0, false) when no element compares equal
// to target.
//
// s must already be sorted non-descending under the same cmp passed here;
// that is the caller's obligation and is never verified. On an unsorted
// slice the result is meaningless (but memory-safe). When several elements
// compare equal to target, the returned index is that of whichever one a
// midpoint probe hits first — no first/last guarantee.
//
// Nil and empty slices report (0, false) immediately. Recursion depth is
// O(log n).
func Search[T any](s []T, target T, cmp func(a, b T) int) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return search(s, target, cmp, 0, len(s)-1)
}

// search probes s[lo..hi] inclusive. The bounds crossing (lo > hi) is the
// "not found" base case; each recursive call excludes the midpoint, so the
// range strictly shrinks.
func search[T any](s []T, target T, cmp func(a, b T) int, lo, hi int) (int, bool) {
	if lo > hi {
		return 0, false
	}
	mid := lo + (hi-lo)/2
	switch c := cmp(s[mid], target); {
	case c == 0:
		return mid, true
	case c > 0:
		return search(s, target, cmp, lo, mid-1)
	default:
		return search(s, target, cmp, mid+1, hi)
	}
}
