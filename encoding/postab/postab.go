// Package postab reads and writes scaffold position tables: TSV files
// with a header row in which each record keys a genomic interval by
// scaffold name.  All coordinates on the wire are 1-based inclusive,
// matching the intron package convention.  Gzipped inputs are detected by
// file name and decompressed transparently.
package postab

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
	"github.com/mycoseq/bio/intron"
)

type intervalRow struct {
	Scaffold string `tsv:"scaffold"`
	Start    int64  `tsv:"start"`
	End      int64  `tsv:"end"`
}

type candidateRow struct {
	Scaffold   string `tsv:"scaffold"`
	Start      int64  `tsv:"start"`
	End        int64  `tsv:"end"`
	Label      int64  `tsv:"label"`
	Prediction int64  `tsv:"prediction"`
}

type annotatedRow struct {
	Scaffold   string `tsv:"scaffold"`
	Start      int64  `tsv:"start"`
	End        int64  `tsv:"end"`
	Label      int64  `tsv:"label"`
	Prediction int64  `tsv:"prediction"`
	Cut        int64  `tsv:"cut"`
}

type anchorRow struct {
	Scaffold string `tsv:"scaffold"`
	Original int64  `tsv:"original"`
	Pruned   int64  `tsv:"pruned"`
}

// open returns a reader for path, decompressing gzip inputs, plus a
// closer for all acquired resources.
func open(ctx context.Context, path string) (io.Reader, func() error, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	r := io.Reader(in.Reader(ctx))
	closeFile := func() error { return in.Close(ctx) }
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(r)
		if err != nil {
			_ = in.Close(ctx)
			return nil, nil, errors.E(err, path)
		}
		return gz, func() error {
			err := gz.Close()
			if cerr := closeFile(); err == nil {
				err = cerr
			}
			return err
		}, nil
	}
	return r, closeFile, nil
}

func newReader(r io.Reader) *tsv.Reader {
	tr := tsv.NewReader(r)
	tr.HasHeaderRow = true
	tr.UseHeaderNames = true
	return tr
}

// ReadIntervals reads a scaffold/start/end table and groups the intervals
// by scaffold.  Extra columns are ignored.  Each group is sorted by
// ascending start so the result satisfies the ordering precondition of
// intron.Classify.
func ReadIntervals(ctx context.Context, path string) (intron.ScaffoldIntervals, error) {
	in, closer, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer closer() // nolint: errcheck
	groups := make(intron.ScaffoldIntervals)
	tr := newReader(in)
	var row intervalRow
	for {
		if err := tr.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(err, path)
		}
		iv := intron.Interval{Start: int(row.Start), End: int(row.End)}
		if iv.Start > iv.End {
			return nil, &intron.InvalidIntervalError{Scaffold: row.Scaffold, Interval: iv}
		}
		groups[row.Scaffold] = append(groups[row.Scaffold], iv)
	}
	intron.SortIntervals(groups)
	return groups, nil
}

// ReadCandidates reads a candidate annotation table with scaffold, start,
// end, label and prediction columns.  Extra columns (such as a cut flag or
// the candidate sequence) are ignored.  Rows keep their file order.
func ReadCandidates(ctx context.Context, path string) ([]intron.Candidate, error) {
	in, closer, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer closer() // nolint: errcheck
	var candidates []intron.Candidate
	tr := newReader(in)
	var row candidateRow
	for {
		if err := tr.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(err, path)
		}
		iv := intron.Interval{Start: int(row.Start), End: int(row.End)}
		if iv.Start > iv.End {
			return nil, &intron.InvalidIntervalError{Scaffold: row.Scaffold, Interval: iv}
		}
		candidates = append(candidates, intron.Candidate{
			Scaffold:   row.Scaffold,
			Interval:   iv,
			Label:      intron.Label(row.Label),
			Prediction: intron.Label(row.Prediction),
		})
	}
	return candidates, nil
}

// WriteIntervals writes the interval groups as a scaffold/start/end table.
// Scaffolds are emitted in the given order; intervals keep their group
// order.
func WriteIntervals(ctx context.Context, path string, scaffolds []string, groups intron.ScaffoldIntervals) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	w := tsv.NewRowWriter(out.Writer(ctx))
	for _, scaffold := range scaffolds {
		for _, iv := range groups[scaffold] {
			row := intervalRow{Scaffold: scaffold, Start: int64(iv.Start), End: int64(iv.End)}
			if err := w.Write(&row); err != nil {
				_ = out.Close(ctx)
				return errors.E(err, path)
			}
		}
	}
	er := errors.Once{}
	er.Set(w.Flush())
	er.Set(out.Close(ctx))
	return er.Err()
}

// WriteCandidates writes candidates with their labels, predictions and
// cut flags, the table downstream diagnostics join against.
func WriteCandidates(ctx context.Context, path string, candidates []intron.Candidate) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	w := tsv.NewRowWriter(out.Writer(ctx))
	for _, c := range candidates {
		row := annotatedRow{
			Scaffold:   c.Scaffold,
			Start:      int64(c.Start),
			End:        int64(c.End),
			Label:      int64(c.Label),
			Prediction: int64(c.Prediction),
		}
		if c.Cut {
			row.Cut = 1
		}
		if err := w.Write(&row); err != nil {
			_ = out.Close(ctx)
			return errors.E(err, path)
		}
	}
	er := errors.Once{}
	er.Set(w.Flush())
	er.Set(out.Close(ctx))
	return er.Err()
}

// WriteCoordMaps writes the per-scaffold coordinate maps as a
// scaffold/original/pruned anchor table.  Scaffolds are emitted in the
// given order.
func WriteCoordMaps(ctx context.Context, path string, scaffolds []string, maps map[string]intron.CoordMap) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	w := tsv.NewRowWriter(out.Writer(ctx))
	for _, scaffold := range scaffolds {
		for _, a := range maps[scaffold] {
			row := anchorRow{Scaffold: scaffold, Original: int64(a.Orig), Pruned: int64(a.Pruned)}
			if err := w.Write(&row); err != nil {
				_ = out.Close(ctx)
				return errors.E(err, path)
			}
		}
	}
	er := errors.Once{}
	er.Set(w.Flush())
	er.Set(out.Close(ctx))
	return er.Err()
}
