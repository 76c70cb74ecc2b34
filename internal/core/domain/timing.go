package domain

import (
	"slices"
	"time"
)

// ReportThreshold is the duration below which per-artifact timings are
// suppressed from the diagnostic report to avoid noise.
const ReportThreshold = 25 * time.Millisecond

// IndexTiming pairs an artifact with the wall-clock time spent producing its
// index. Cache hits still record a small nonzero duration (the lookup cost);
// the value is diagnostic, not a correctness signal.
type IndexTiming struct {
	Artifact Artifact
	Elapsed  time.Duration
}

// SortTimings orders timings ascending by elapsed duration, in place.
func SortTimings(timings []IndexTiming) {
	slices.SortStableFunc(timings, func(a, b IndexTiming) int {
		switch {
		case a.Elapsed < b.Elapsed:
			return -1
		case a.Elapsed > b.Elapsed:
			return 1
		default:
			return 0
		}
	})
}
