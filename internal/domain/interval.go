package domain

import (
	"sort"
	"time"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Touching intervals ([9:00,10:00) and [10:00,11:00)) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// MergeIntervals sorts intervals by start time and merges overlapping and
// adjacent ones into a minimal covering set. Zero and negative length
// intervals are dropped: they never overlap anything.
func MergeIntervals(intervals []Interval) []Interval {
	filtered := make([]Interval, 0, len(intervals))
	for _, interval := range intervals {
		if interval.End.After(interval.Start) {
			filtered = append(filtered, interval)
		}
	}

	if len(filtered) == 0 {
		return []Interval{}
	}

	sort.Slice(filtered, func(a, b int) bool {
		return filtered[a].Start.Before(filtered[b].Start)
	})

	merged := make([]Interval, 0, len(filtered))
	merged = append(merged, filtered[0])

	for _, interval := range filtered[1:] {
		last := &merged[len(merged)-1]
		if !interval.Start.After(last.End) {
			if interval.End.After(last.End) {
				last.End = interval.End
			}
			continue
		}
		merged = append(merged, interval)
	}

	return merged
}
