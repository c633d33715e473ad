package intron

import (
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestPruneScaffolds(t *testing.T) {
	seqs := map[string]string{
		"s1": "ABCDEFGHIJKLMNOP",
		"s2": "QRSTUVWXYZ",
		"s3": "AAAA",
	}
	candidates := ScaffoldIntervals{
		"s1": {{5, 10}},
		"s2": {{1, 3}, {2, 6}}, // overlapping pair, nothing to cut
	}
	results, stats := PruneScaffolds(seqs, candidates, DefaultOpts)
	assert.EQ(t, len(results), 2)

	r1 := results["s1"]
	assert.NoError(t, r1.Err)
	expect.EQ(t, r1.Pruned.Seq, "ABCDKLMNOP")

	r2 := results["s2"]
	assert.NoError(t, r2.Err)
	expect.EQ(t, len(r2.Partition.Overlap), 1)
	expect.EQ(t, r2.Pruned.Seq, seqs["s2"])

	expect.EQ(t, stats.Scaffolds, 2)
	expect.EQ(t, stats.Cut, 1)
	expect.EQ(t, stats.FailedScaffolds, 0)
}

// A scaffold that fails keeps its error in its own Result; the rest of the
// batch completes.
func TestPruneScaffoldsIsolatesFailures(t *testing.T) {
	seqs := map[string]string{
		"good": "ABCDEFGHIJKLMNOP",
		"bad":  "ABCD",
	}
	candidates := ScaffoldIntervals{
		"good":    {{5, 10}},
		"bad":     {{2, 100}},
		"missing": {{1, 2}},
	}
	results, stats := PruneScaffolds(seqs, candidates, DefaultOpts)
	assert.EQ(t, len(results), 3)
	assert.NoError(t, results["good"].Err)
	expect.EQ(t, results["good"].Pruned.Seq, "ABCDKLMNOP")

	_, ok := results["bad"].Err.(*OutOfRangeError)
	expect.True(t, ok)
	expect.NotNil(t, results["missing"].Err)
	expect.EQ(t, stats.FailedScaffolds, 2)
}

func TestWithoutCandidates(t *testing.T) {
	seqs := map[string]string{"s1": "ACGT", "s2": "TTTT", "s3": "GGGG"}
	candidates := ScaffoldIntervals{"s1": {{1, 2}}}
	out := WithoutCandidates(seqs, candidates)
	expect.EQ(t, out, map[string]string{"s2": "TTTT", "s3": "GGGG"})
}
