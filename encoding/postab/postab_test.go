package postab_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/mycoseq/bio/encoding/postab"
	"github.com/mycoseq/bio/intron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0644))
	return path
}

func TestReadIntervals(t *testing.T) {
	ctx := vcontext.Background()
	dir, err := ioutil.TempDir("", "postab")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	// Out-of-order rows are sorted per scaffold on read.
	path := writeFile(t, dir, "exons.tsv",
		"scaffold\tstart\tend\n"+
			"s1\t20\t30\n"+
			"s1\t5\t10\n"+
			"s2\t1\t4\n")
	groups, err := postab.ReadIntervals(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, intron.ScaffoldIntervals{
		"s1": {{Start: 5, End: 10}, {Start: 20, End: 30}},
		"s2": {{Start: 1, End: 4}},
	}, groups)
}

func TestReadIntervalsGzip(t *testing.T) {
	ctx := vcontext.Background()
	dir, err := ioutil.TempDir("", "postab")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "exons.tsv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("scaffold\tstart\tend\ns1\t5\t10\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	groups, err := postab.ReadIntervals(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, intron.ScaffoldIntervals{"s1": {{Start: 5, End: 10}}}, groups)
}

func TestReadIntervalsInvalid(t *testing.T) {
	ctx := vcontext.Background()
	dir, err := ioutil.TempDir("", "postab")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := writeFile(t, dir, "bad.tsv", "scaffold\tstart\tend\ns1\t30\t20\n")
	_, err = postab.ReadIntervals(ctx, path)
	require.Error(t, err)
	_, ok := err.(*intron.InvalidIntervalError)
	assert.True(t, ok)
}

func TestReadCandidates(t *testing.T) {
	ctx := vcontext.Background()
	dir, err := ioutil.TempDir("", "postab")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := writeFile(t, dir, "candidates.tsv",
		"scaffold\tstart\tend\tlabel\tprediction\n"+
			"s1\t5\t10\t1\t1\n"+
			"s1\t20\t30\t-1\t1\n")
	candidates, err := postab.ReadCandidates(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []intron.Candidate{
		{Scaffold: "s1", Interval: intron.Interval{Start: 5, End: 10}, Label: intron.Positive, Prediction: intron.Positive},
		{Scaffold: "s1", Interval: intron.Interval{Start: 20, End: 30}, Label: intron.Negative, Prediction: intron.Positive},
	}, candidates)
}

func TestWriteReadIntervals(t *testing.T) {
	ctx := vcontext.Background()
	dir, err := ioutil.TempDir("", "postab")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	groups := intron.ScaffoldIntervals{
		"s1": {{Start: 5, End: 10}, {Start: 20, End: 30}},
		"s2": {{Start: 1, End: 4}},
	}
	path := filepath.Join(dir, "cuts.tsv")
	require.NoError(t, postab.WriteIntervals(ctx, path, []string{"s1", "s2"}, groups))

	got, err := postab.ReadIntervals(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, groups, got)
}

func TestWriteReadCandidates(t *testing.T) {
	ctx := vcontext.Background()
	dir, err := ioutil.TempDir("", "postab")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	candidates := []intron.Candidate{
		{Scaffold: "s1", Interval: intron.Interval{Start: 5, End: 10}, Label: intron.Positive, Prediction: intron.Positive, Cut: true},
		{Scaffold: "s2", Interval: intron.Interval{Start: 3, End: 9}, Label: intron.Negative, Prediction: intron.Negative},
	}
	path := filepath.Join(dir, "annotated.tsv")
	require.NoError(t, postab.WriteCandidates(ctx, path, candidates))

	// The cut column is ignored when reading the table back as plain
	// candidates.
	got, err := postab.ReadCandidates(ctx, path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, candidates[0].Interval, got[0].Interval)
	assert.False(t, got[0].Cut)
}

func TestWriteCoordMaps(t *testing.T) {
	ctx := vcontext.Background()
	dir, err := ioutil.TempDir("", "postab")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	maps := map[string]intron.CoordMap{
		"s1": {{Orig: 0, Pruned: 0}, {Orig: 10, Pruned: 4}},
	}
	path := filepath.Join(dir, "coordmap.tsv")
	require.NoError(t, postab.WriteCoordMaps(ctx, path, []string{"s1"}, maps))

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"scaffold\toriginal\tpruned\n"+
			"s1\t0\t0\n"+
			"s1\t10\t4\n",
		string(data))
}
