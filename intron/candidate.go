package intron

// Candidate is one intron candidate: its position, the gold label from the
// annotation, the classifier's prediction, and whether pruning actually
// excised it.
type Candidate struct {
	Scaffold string
	Interval
	Label      Label
	Prediction Label
	Cut        bool
}

// MarkCuts sets the Cut flag on every candidate whose (scaffold, start,
// end) appears in cuts, joining the two tables on position.  It returns
// the number of candidates marked.
func MarkCuts(candidates []Candidate, cuts ScaffoldIntervals) int {
	cutSet := make(map[string]map[Interval]bool, len(cuts))
	for scaffold, ivs := range cuts {
		set := make(map[Interval]bool, len(ivs))
		for _, iv := range ivs {
			set[iv] = true
		}
		cutSet[scaffold] = set
	}
	marked := 0
	for i := range candidates {
		if cutSet[candidates[i].Scaffold][candidates[i].Interval] {
			candidates[i].Cut = true
			marked++
		}
	}
	return marked
}

// SelectIntervals groups the intervals of the candidates accepted by keep,
// preserving input order within each scaffold.
func SelectIntervals(candidates []Candidate, keep func(Candidate) bool) ScaffoldIntervals {
	out := make(ScaffoldIntervals)
	for _, c := range candidates {
		if keep(c) {
			out[c.Scaffold] = append(out[c.Scaffold], c.Interval)
		}
	}
	return out
}
