package intron

import (
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestCountContainedDisjoint(t *testing.T) {
	containers := ScaffoldIntervals{"s1": {{10, 20}, {30, 40}}}
	probes := ScaffoldIntervals{"s1": {{1, 5}, {22, 28}, {50, 60}}}
	c, err := CountContained(containers, probes)
	assert.NoError(t, err)
	expect.EQ(t, c.PerScaffold["s1"], 0)
	expect.EQ(t, c.Probes, 3)
	expect.EQ(t, len(c.MissingScaffolds), 0)
}

func TestCountContainedInside(t *testing.T) {
	containers := ScaffoldIntervals{"s1": {{10, 20}}}
	probes := ScaffoldIntervals{"s1": {{12, 14}}}
	c, err := CountContained(containers, probes)
	assert.NoError(t, err)
	expect.EQ(t, c.PerScaffold["s1"], 1)
	expect.EQ(t, c.Total(), 1)
}

// A probe overlapping several containers still counts once.
func TestCountContainedCountsProbesNotPairs(t *testing.T) {
	containers := ScaffoldIntervals{"s1": {{10, 20}, {30, 40}}}
	probes := ScaffoldIntervals{"s1": {{15, 35}}}
	c, err := CountContained(containers, probes)
	assert.NoError(t, err)
	expect.EQ(t, c.PerScaffold["s1"], 1)
}

// Endpoints are inclusive: touching at a single base is an overlap.
func TestCountContainedInclusiveEndpoints(t *testing.T) {
	containers := ScaffoldIntervals{"s1": {{10, 20}}}
	probes := ScaffoldIntervals{"s1": {{20, 25}, {21, 25}, {5, 10}, {5, 9}}}
	c, err := CountContained(containers, probes)
	assert.NoError(t, err)
	expect.EQ(t, c.PerScaffold["s1"], 2)
}

func TestCountContainedMissingScaffold(t *testing.T) {
	containers := ScaffoldIntervals{"s1": {{10, 20}}}
	probes := ScaffoldIntervals{
		"s1": {{12, 14}},
		"s2": {{1, 5}, {7, 9}},
	}
	c, err := CountContained(containers, probes)
	assert.NoError(t, err)
	expect.EQ(t, c.MissingScaffolds, []string{"s2"})
	// s2's probes are skipped entirely.
	expect.EQ(t, c.Probes, 1)
	_, ok := c.PerScaffold["s2"]
	expect.False(t, ok)
}

func TestCountContainedInvalidInterval(t *testing.T) {
	_, err := CountContained(
		ScaffoldIntervals{"s1": {{20, 10}}},
		ScaffoldIntervals{"s1": {{1, 5}}})
	_, ok := err.(*InvalidIntervalError)
	expect.True(t, ok)
}

// The tree-backed counts must equal the naive all-pairs definition.
func TestCountContainedMatchesNaive(t *testing.T) {
	var containers, probes []Interval
	// Deterministic spread of interval shapes and sizes.
	for i := 0; i < 40; i++ {
		start := (i*37)%199 + 1
		containers = append(containers, Interval{start, start + (i*13)%29})
	}
	for i := 0; i < 60; i++ {
		start := (i*53)%211 + 1
		probes = append(probes, Interval{start, start + (i*7)%17})
	}
	naive := 0
	for _, p := range probes {
		for _, cv := range containers {
			if p.Overlaps(cv) {
				naive++
				break
			}
		}
	}
	c, err := CountContained(
		ScaffoldIntervals{"s1": containers},
		ScaffoldIntervals{"s1": probes})
	assert.NoError(t, err)
	expect.EQ(t, c.PerScaffold["s1"], naive)
}

func TestRatePerKilobase(t *testing.T) {
	expect.EQ(t, RatePerKilobase(3, 1500), 2.0)
	expect.EQ(t, RatePerKilobase(0, 1500), 0.0)
	expect.EQ(t, RatePerKilobase(5, 0), 0.0)
}
