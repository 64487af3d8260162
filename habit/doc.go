// Package habit computes completion streaks over calendar dates.
//
// A [Date] is a plain calendar day — no clock time, no time zone — with a
// total ordering and previous-day stepping, so streak arithmetic is immune
// to DST shifts and timestamp noise.
//
// [Streak] counts the unbroken run of completed days walking backward from
// a reference day:
//
//	done := []habit.Date{
//	    {Year: 2024, Month: time.January, Day: 3},
//	    {Year: 2024, Month: time.January, Day: 4},
//	    {Year: 2024, Month: time.January, Day: 5},
//	}
//	habit.Streak(done, done[2]) // → 3
//
// The completed set may arrive unordered and may contain duplicates; Streak
// sorts a private copy (via [algo.Sort]) and probes it with [algo.Search],
// never mutating the caller's slice.
package habit
