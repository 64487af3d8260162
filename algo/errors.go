package algo

import "errors"

// ErrTooLarge is returned by [Sort] when the input slice exceeds [MaxLen].
// The slice is left untouched.
//
// Use [errors.Is] for comparisons.
var ErrTooLarge = errors.New("algo: slice exceeds the maximum sortable length")
