package indexer

import (
	"fmt"
	"slices"
	"time"

	"go.trai.ch/classdex/internal/core/domain"
)

// reportDurations logs how long each artifact took to index, slowest last.
// Formatting the report is wasted work unless debug logging is on.
func (c *Creator) reportDurations(timings []domain.IndexTiming) {
	if !c.logger.DebugEnabled() {
		return
	}
	for _, line := range FormatReport(timings, domain.ReportThreshold) {
		c.logger.Debug(line)
	}
}

// FormatReport renders one line per timing above the threshold, sorted by
// ascending duration. Timings at or below the threshold are noise and are
// dropped.
func FormatReport(timings []domain.IndexTiming, threshold time.Duration) []string {
	sorted := slices.Clone(timings)
	domain.SortTimings(sorted)

	var lines []string
	for _, t := range sorted {
		if t.Elapsed <= threshold {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s took %s", t.Artifact.Coordinate.Key(), t.Elapsed))
	}
	return lines
}
