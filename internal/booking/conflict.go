// Package booking holds the pure reservation predicates: request validation
// and interval conflict detection. Nothing here performs I/O or keeps state,
// so the functions are safe from any number of concurrent request handlers.
package booking

// Interval is a half-open [Start, End) time range in zero-padded HH:MM form.
// Zero-padded fixed-width times compare correctly as strings.
type Interval struct {
	Start string
	End   string
}

// Overlaps reports whether two half-open intervals intersect. Intervals that
// merely touch (one ends exactly where the other starts) do not overlap, so
// back-to-back bookings never conflict.
func Overlaps(a, b Interval) bool {
	return !(a.End <= b.Start || a.Start >= b.End)
}

// HasConflict reports whether the candidate interval overlaps any existing
// reservation interval for the same room and date. Callers pass intervals
// already scoped to one (room, date); a single overlap rejects the candidate.
func HasConflict(existing []Interval, candidate Interval) bool {
	for _, interval := range existing {
		if Overlaps(interval, candidate) {
			return true
		}
	}
	return false
}
