package intron

import (
	"sort"
	"strings"
)

// Anchor marks where an exon span begins in both coordinate systems: Orig
// is the 0-based offset into the original sequence and Pruned the 0-based
// offset into the pruned sequence.
type Anchor struct {
	Orig, Pruned int
}

// CoordMap translates positions in a pruned sequence back to the original
// sequence.  Anchors are strictly increasing in both components; each
// anchor begins an exon span and positions between anchors interpolate
// within that span.
type CoordMap []Anchor

// ToOriginal maps a 0-based position in the pruned sequence back to the
// corresponding 0-based position in the original sequence.  ok is false if
// pruned is negative or the map is empty.
func (m CoordMap) ToOriginal(pruned int) (orig int, ok bool) {
	if pruned < 0 || len(m) == 0 {
		return 0, false
	}
	// First anchor past pruned, then step back to the exon containing it.
	i := sort.Search(len(m), func(i int) bool { return m[i].Pruned > pruned })
	if i == 0 {
		return 0, false
	}
	a := m[i-1]
	return a.Orig + (pruned - a.Pruned), true
}

// PrunedScaffold is a scaffold sequence with qualifying introns excised,
// the coordinate map back to the original sequence, and the intervals that
// were actually cut or deliberately left in place.  It is built once per
// Prune call and never mutated afterwards.
type PrunedScaffold struct {
	Seq string
	Map CoordMap
	// Cut lists the excised introns in excision order.
	Cut []Interval
	// Skipped lists the introns left in place because they exceeded
	// Opts.MaxIntronLength.
	Skipped []Interval
}

// Prune excises the given introns from a scaffold sequence and builds the
// coordinate map from the pruned sequence back to the original.  Introns
// with End-Start > opts.MaxIntronLength are skipped, not excised: their
// bases remain in the output.
//
// An anchor is recorded before each retained (non-empty) exon span, and a
// final anchor plus the trailing exon span is always emitted; for
// intron-free input the result is the unchanged sequence and the single
// anchor {0, 0}, which callers use to detect that no pruning occurred.
//
// REQUIRES: introns are non-overlapping and ordered by ascending Start
// (the NonOverlap half of a Partition satisfies both).  Prune fails with
// *ConfigurationError for a non-positive MaxIntronLength, and with
// *InvalidIntervalError or *OutOfRangeError on malformed input.
func Prune(scaffold, seq string, introns []Interval, opts Opts, stats *Stats) (PrunedScaffold, error) {
	if opts.MaxIntronLength <= 0 {
		return PrunedScaffold{}, &ConfigurationError{Reason: "max intron length must be positive"}
	}
	var (
		ps        PrunedScaffold
		pruned    strings.Builder
		exonBegin = 0
	)
	for _, iv := range introns {
		if !iv.valid() {
			return PrunedScaffold{}, &InvalidIntervalError{Scaffold: scaffold, Interval: iv}
		}
		if iv.Start < 1 || iv.End > len(seq) {
			return PrunedScaffold{}, &OutOfRangeError{Scaffold: scaffold, Interval: iv, SeqLen: len(seq)}
		}
		if iv.End-iv.Start > opts.MaxIntronLength {
			ps.Skipped = append(ps.Skipped, iv)
			stats.SkippedLong++
			continue
		}
		// The exon ends where the current intron begins (iv.Start is
		// 1-based, so iv.Start-1 is the 0-based offset of its first base).
		if exonEnd := iv.Start - 1; exonEnd > exonBegin {
			ps.Map = append(ps.Map, Anchor{Orig: exonBegin, Pruned: pruned.Len()})
			pruned.WriteString(seq[exonBegin:exonEnd])
		}
		exonBegin = iv.End
		ps.Cut = append(ps.Cut, iv)
		stats.Cut++
		stats.BasesRemoved += iv.Span()
	}
	ps.Map = append(ps.Map, Anchor{Orig: exonBegin, Pruned: pruned.Len()})
	pruned.WriteString(seq[exonBegin:])
	ps.Seq = pruned.String()
	return ps, nil
}
