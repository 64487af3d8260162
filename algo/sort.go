package algo

// MaxLen is the longest slice [Sort] accepts.
//
// Sort's recursion depth degrades to the input length on adversarial
// (already-ordered) input, so input size is bounded up front instead of
// letting a pathological call grow the stack without limit. A slice of a
// million elements is comfortably within a goroutine's maximum stack even
// at full depth.
const MaxLen = 1 << 20

// Sort sorts s in place into non-descending order under cmp, using a
// recursive quicksort with the last element of each sub-range as pivot.
//
// cmp must return a negative number when a orders before b, zero when they
// are equal, and a positive number when a orders after b, and must be
// consistent across calls. The sort is not stable: equal elements may be
// reordered relative to each other.
//
// Nil, empty, and single-element slices are already sorted; Sort returns
// nil without calling cmp. Slices longer than [MaxLen] are rejected with
// [ErrTooLarge] before any element is moved.
//
// Re-sorting an already-sorted slice leaves it element-for-element
// identical (at its worst-case recursion depth, which is why MaxLen
// exists).
func Sort[T any](s []T, cmp func(a, b T) int) error {
	if len(s) > MaxLen {
		return ErrTooLarge
	}
	if len(s) < 2 {
		return nil
	}
	quicksort(s, 0, len(s)-1, cmp)
	return nil
}

// quicksort sorts s[lo..hi] inclusive. Each call places one pivot at its
// final position, so both recursive calls operate on strictly smaller
// ranges; a range of size 0 or 1 is the base case.
func quicksort[T any](s []T, lo, hi int, cmp func(a, b T) int) {
	if lo >= hi {
		return
	}
	p := partition(s, lo, hi, cmp)
	quicksort(s, lo, p-1, cmp)
	quicksort(s, p+1, hi, cmp)
}

// partition partitions s[lo..hi] around the pivot s[hi]: elements comparing
// less than or equal to the pivot are moved left of the running boundary,
// then the pivot is swapped onto the boundary. Returns the pivot's final
// index.
func partition[T any](s []T, lo, hi int, cmp func(a, b T) int) int {
	pivot := s[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if cmp(s[j], pivot) <= 0 {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]
	return i
}
