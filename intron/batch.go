package intron

import (
	"fmt"
	"sort"
	"sync"

	"github.com/grailbio/base/traverse"
)

// Result is the outcome of classifying and pruning a single scaffold.  Err
// is non-nil when the scaffold's computation failed; the other scaffolds
// of the batch are unaffected.
type Result struct {
	Scaffold  string
	Partition Partition
	Pruned    PrunedScaffold
	Err       error
}

// PruneScaffolds classifies and prunes every scaffold that has candidate
// intervals.  Scaffolds are independent and processed concurrently; within
// a scaffold the overlap scan and the pruning pass stay sequential.  A
// scaffold that fails keeps its error in its Result rather than aborting
// the batch.
//
// REQUIRES: candidate intervals are ordered by ascending Start within each
// scaffold (see ScaffoldIntervals).
func PruneScaffolds(seqs map[string]string, candidates ScaffoldIntervals, opts Opts) (map[string]Result, Stats) {
	scaffolds := make([]string, 0, len(candidates))
	for scaffold := range candidates {
		scaffolds = append(scaffolds, scaffold)
	}
	sort.Strings(scaffolds)

	var (
		mu      sync.Mutex
		results = make(map[string]Result, len(scaffolds))
		stats   Stats
	)
	// Workers only fill their own Result; traverse never sees an error, so
	// one bad scaffold cannot cancel the rest.
	_ = traverse.Each(len(scaffolds), func(i int) error {
		scaffold := scaffolds[i]
		var local Stats
		local.Scaffolds++
		res := Result{Scaffold: scaffold}
		seq, ok := seqs[scaffold]
		if !ok {
			res.Err = fmt.Errorf("intron: no sequence for scaffold %s", scaffold)
		} else if res.Partition, res.Err = Classify(scaffold, candidates[scaffold], &local); res.Err == nil {
			res.Pruned, res.Err = Prune(scaffold, seq, res.Partition.NonOverlap, opts, &local)
		}
		if res.Err != nil {
			local.FailedScaffolds++
		}
		mu.Lock()
		results[scaffold] = res
		stats = stats.Merge(local)
		mu.Unlock()
		return nil
	})
	return results, stats
}

// WithoutCandidates returns the scaffolds that have no candidate intervals
// at all.  Callers copy these through unpruned.
func WithoutCandidates(seqs map[string]string, candidates ScaffoldIntervals) map[string]string {
	out := make(map[string]string)
	for scaffold, seq := range seqs {
		if _, ok := candidates[scaffold]; !ok {
			out[scaffold] = seq
		}
	}
	return out
}
