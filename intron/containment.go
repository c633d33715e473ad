package intron

import (
	"sort"

	"github.com/biogo/store/interval"
)

// containerEntry adapts an Interval to the biogo interval tree.  Overlap
// uses closed endpoints on both sides, matching the package's 1-based
// inclusive coordinate convention.
type containerEntry struct {
	iv Interval
	id uintptr
}

func (e containerEntry) Overlap(b interval.IntRange) bool {
	return e.iv.Start <= b.End && e.iv.End >= b.Start
}
func (e containerEntry) ID() uintptr              { return e.id }
func (e containerEntry) Range() interval.IntRange { return interval.IntRange{Start: e.iv.Start, End: e.iv.End} }

// Containment is the result of counting probe intervals against container
// intervals, grouped by scaffold.
type Containment struct {
	// PerScaffold maps each scaffold that had both probes and containers to
	// the number of its probes overlapping at least one container.
	PerScaffold map[string]int
	// Probes is the total number of probe intervals considered, i.e. all
	// probes on scaffolds that had a container group.
	Probes int
	// MissingScaffolds lists, in ascending order, the probe scaffolds that
	// had no container group.  Their probes are skipped and do not count
	// toward Probes.  This condition is diagnostic, not fatal.
	MissingScaffolds []string
}

// Total returns the sum of the per-scaffold counts.
func (c Containment) Total() int {
	total := 0
	for _, n := range c.PerScaffold {
		total += n
	}
	return total
}

// CountContained counts, per scaffold, how many probe intervals have any
// positional overlap with a container interval on the same scaffold
// (probe.Start <= container.End && probe.End >= container.Start).  Probe
// scaffolds without a container group are recorded in MissingScaffolds and
// skipped.
//
// Each container group is indexed in an interval tree, so large groups are
// queried in O(log n) per probe; the counts equal the naive all-pairs
// definition.
func CountContained(containers, probes ScaffoldIntervals) (Containment, error) {
	c := Containment{PerScaffold: make(map[string]int)}
	scaffolds := make([]string, 0, len(probes))
	for scaffold := range probes {
		scaffolds = append(scaffolds, scaffold)
	}
	sort.Strings(scaffolds)
	for _, scaffold := range scaffolds {
		group, ok := containers[scaffold]
		if !ok {
			c.MissingScaffolds = append(c.MissingScaffolds, scaffold)
			continue
		}
		tree := &interval.IntTree{}
		for i, iv := range group {
			if !iv.valid() {
				return Containment{}, &InvalidIntervalError{Scaffold: scaffold, Interval: iv}
			}
			if err := tree.Insert(containerEntry{iv: iv, id: uintptr(i)}, true); err != nil {
				return Containment{}, err
			}
		}
		tree.AdjustRanges()
		count := 0
		for _, iv := range probes[scaffold] {
			if !iv.valid() {
				return Containment{}, &InvalidIntervalError{Scaffold: scaffold, Interval: iv}
			}
			c.Probes++
			if len(tree.Get(containerEntry{iv: iv})) > 0 {
				count++
			}
		}
		c.PerScaffold[scaffold] = count
	}
	return c, nil
}

// RatePerKilobase returns count normalized per 1000 bases of container
// length, or 0 when the container length is 0.
func RatePerKilobase(count, containerBases int) float64 {
	if containerBases == 0 {
		return 0
	}
	return float64(count) * 1000 / float64(containerBases)
}
