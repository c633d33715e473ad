package intron

// OverlapPair records the two raw intervals that triggered an overlap
// detection: the predecessor in scan order and the interval that reached
// back into it.  The raw pair is preserved (rather than a merged interval)
// so that downstream consumers can compute overlap ratios.
type OverlapPair struct {
	Prev, Cur Interval
}

// Ratio returns the fraction of the predecessor covered by the overlap,
// (Prev.End - Cur.Start) / (Prev.End - Prev.Start).  ok is false when the
// predecessor is zero-width and the ratio is undefined.
func (p OverlapPair) Ratio() (ratio float64, ok bool) {
	width := p.Prev.End - p.Prev.Start
	if width == 0 {
		return 0, false
	}
	return float64(p.Prev.End-p.Cur.Start) / float64(width), true
}

// Partition is the result of classifying one scaffold's candidate
// intervals.  NonOverlap preserves input order minus the intervals
// reclassified into overlap chains; Overlap is in detection order.
type Partition struct {
	NonOverlap []Interval
	Overlap    []OverlapPair
	// Correction counts the overlap detections whose predecessor was
	// already part of an earlier pair (chains of 3+ mutually overlapping
	// intervals).  It balances the partition invariant:
	//
	//   len(input) == len(NonOverlap) + 2*len(Overlap) - Correction
	Correction int
}

// Classify partitions a scaffold's candidate intervals into intervals that
// do not overlap their neighbors and pairs of intervals that do.
//
// The scan keeps the previous interval and compares each interval against
// it in order.  When the current interval starts at or before the previous
// end, the raw pair is recorded and the predecessor, if it was still
// classified as non-overlapping, is reclassified; a predecessor already
// consumed by an earlier pair increments Partition.Correction instead.
//
// REQUIRES: intervals are ordered by ascending Start (see
// ScaffoldIntervals).  Classify fails with *InvalidIntervalError on a
// malformed interval.  Empty input yields an empty partition, not an error.
func Classify(scaffold string, intervals []Interval, stats *Stats) (Partition, error) {
	var p Partition
	last := Interval{0, 0}
	// prevKept tracks whether last is currently the tail of p.NonOverlap.
	// NonOverlap only ever grows by appending the most recent interval, so
	// a reclassified predecessor is necessarily its last element.
	prevKept := false
	for _, iv := range intervals {
		if !iv.valid() {
			return Partition{}, &InvalidIntervalError{Scaffold: scaffold, Interval: iv}
		}
		if iv.Start <= last.End {
			p.Overlap = append(p.Overlap, OverlapPair{Prev: last, Cur: iv})
			if prevKept {
				p.NonOverlap = p.NonOverlap[:len(p.NonOverlap)-1]
			} else {
				p.Correction++ // predecessor already consumed by the chain
			}
			prevKept = false
		} else {
			p.NonOverlap = append(p.NonOverlap, iv)
			prevKept = true
		}
		last = iv
	}
	if len(intervals) != len(p.NonOverlap)+2*len(p.Overlap)-p.Correction {
		panic("internal error: overlap partition invariant violated")
	}
	stats.Intervals += len(intervals)
	stats.NonOverlap += len(p.NonOverlap)
	stats.OverlapPairs += len(p.Overlap)
	stats.ChainCorrections += p.Correction
	return p, nil
}
