package intron

import (
	"fmt"
	"sort"
)

// Interval is a genomic span on a single scaffold.  Both endpoints are
// 1-based and inclusive, so the smallest representable span is a single
// base with Start == End.  A well-formed Interval has Start <= End.
type Interval struct {
	Start, End int
}

// Span returns the number of bases covered by the interval.
func (iv Interval) Span() int { return iv.End - iv.Start + 1 }

// Overlaps reports whether iv and other share at least one base.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start <= other.End && iv.End >= other.Start
}

func (iv Interval) valid() bool { return iv.Start <= iv.End }

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d]", iv.Start, iv.End) }

// ScaffoldIntervals groups intervals by scaffold name.
//
// Within each scaffold the intervals must be ordered by ascending Start.
// Classify and Prune assume but do not enforce this order; violating it
// produces undefined overlap semantics.  They deliberately do not re-sort,
// since doing so silently would mask caller bugs.  SortIntervals
// establishes the order explicitly at the ingest boundary.
type ScaffoldIntervals map[string][]Interval

// SortIntervals orders every scaffold's intervals by ascending Start,
// breaking ties by ascending End.  The sort is stable.
func SortIntervals(groups ScaffoldIntervals) {
	for _, ivs := range groups {
		sort.SliceStable(ivs, func(i, j int) bool {
			if ivs[i].Start != ivs[j].Start {
				return ivs[i].Start < ivs[j].Start
			}
			return ivs[i].End < ivs[j].End
		})
	}
}

// TotalSpan returns the total number of bases covered, assuming the
// intervals are disjoint.
func TotalSpan(ivs []Interval) int {
	total := 0
	for _, iv := range ivs {
		total += iv.Span()
	}
	return total
}

// InvalidIntervalError reports an interval whose start exceeds its end.
type InvalidIntervalError struct {
	Scaffold string
	Interval Interval
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("intron: invalid interval %s on scaffold %s: start exceeds end",
		e.Interval, e.Scaffold)
}

// OutOfRangeError reports an interval extending beyond the sequence it is
// applied to.
type OutOfRangeError struct {
	Scaffold string
	Interval Interval
	SeqLen   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("intron: interval %s outside scaffold %s (length %d)",
		e.Interval, e.Scaffold, e.SeqLen)
}

// ConfigurationError reports an unusable option value.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "intron: invalid configuration: " + e.Reason
}
