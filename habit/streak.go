package habit

import (
	"github.com/AstudilloAriel/tiempo-utils/algo"
)

// Streak returns the length of the unbroken run of completed days ending at
// (and including) ref, walking backward one calendar day at a time.
//
// completed is the set of days on which the habit was completed; it may be
// unordered and may contain duplicates. Streak sorts a private copy and
// never mutates the caller's slice. If ref itself is not in the set the
// streak is 0 — a run only counts when it reaches the reference day.
//
// completed must not exceed [algo.MaxLen] entries (several millennia of
// daily completions); larger inputs report 0.
func Streak(completed []Date, ref Date) int {
	if len(completed) == 0 {
		return 0
	}
	sorted := make([]Date, len(completed))
	copy(sorted, completed)
	if err := algo.Sort(sorted, Date.Compare); err != nil {
		return 0
	}
	return countBack(sorted, ref)
}

// Contains reports whether d is present in sorted, which must be sorted
// non-descending by [Date.Compare] (see [algo.Search] for the caller
// obligation this inherits).
func Contains(sorted []Date, d Date) bool {
	_, ok := algo.Search(sorted, d, Date.Compare)
	return ok
}

// countBack counts consecutive completed days: one for the current day plus
// the run ending the day before. A missing day is the base case and closes
// the run.
func countBack(sorted []Date, day Date) int {
	if !Contains(sorted, day) {
		return 0
	}
	return 1 + countBack(sorted, day.Prev())
}
