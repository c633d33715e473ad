package intron

// Stats represents high-level counters accumulated while classifying and
// pruning scaffolds.
type Stats struct {
	// Scaffolds counts the scaffolds processed, whether or not they failed.
	Scaffolds int
	// FailedScaffolds counts the scaffolds whose computation ended with a
	// fatal data error.
	FailedScaffolds int
	// Intervals counts the candidate intervals examined by Classify.
	Intervals int
	// NonOverlap counts the intervals classified as free of overlap.
	NonOverlap int
	// OverlapPairs counts the (previous, current) pairs recorded when an
	// interval overlapped its predecessor.
	OverlapPairs int
	// ChainCorrections counts the overlap detections whose predecessor had
	// already been consumed by an earlier pair, i.e. links in chains of
	// three or more mutually overlapping intervals.
	ChainCorrections int
	// Cut counts the introns actually excised by Prune.
	Cut int
	// SkippedLong counts the introns left in place because they exceeded
	// Opts.MaxIntronLength.
	SkippedLong int
	// BasesRemoved is the total number of excised bases.
	BasesRemoved int
}

// Merge adds the field values of the two Stats objects and creates new Stats.
func (s Stats) Merge(o Stats) Stats {
	s.Scaffolds += o.Scaffolds
	s.FailedScaffolds += o.FailedScaffolds
	s.Intervals += o.Intervals
	s.NonOverlap += o.NonOverlap
	s.OverlapPairs += o.OverlapPairs
	s.ChainCorrections += o.ChainCorrections
	s.Cut += o.Cut
	s.SkippedLong += o.SkippedLong
	s.BasesRemoved += o.BasesRemoved
	return s
}
