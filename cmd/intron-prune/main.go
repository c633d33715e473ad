package main

// intron-prune removes predicted intron candidates from an assembly.
//
// The input is a genomic FASTA plus a candidate table with classifier
// labels.  Candidates predicted positive are classified into overlapping
// and non-overlapping groups; the non-overlapping introns are excised
// from their scaffolds.  Outputs are the pruned FASTA, the list of cut
// intervals, the candidate table annotated with a cut column, and a
// coordinate map that translates pruned offsets back to the original
// assembly.
//
// Example:
//
//    intron-prune -fasta=asm.fa -candidates=candidates.tsv \
//      -pruned-output=pruned.fa -cut-output=cuts.tsv \
//      -coord-map-output=coordmap.tsv -candidates-output=annotated.tsv

import (
	"context"
	"flag"
	"io"
	"sort"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/mycoseq/bio/encoding/fasta"
	"github.com/mycoseq/bio/encoding/postab"
	"github.com/mycoseq/bio/intron"
)

// Collection of options set via cmdline flags.
type pruneFlags struct {
	fastaPath      string
	candidatesPath string
	prunedPath     string
	cutPath        string
	coordMapPath   string
	annotatedPath  string
	lineWidth      int
}

func readFASTA(ctx context.Context, path string) *fasta.Scaffolds {
	in, err := file.Open(ctx, path)
	if err != nil {
		log.Panicf("open %v: %v", path, err)
	}
	var r io.Reader = in.Reader(ctx)
	if u, _ := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	sc, err := fasta.Read(r)
	if err != nil {
		log.Panicf("read %v: %v", path, err)
	}
	if err := in.Close(ctx); err != nil {
		log.Panicf("close %v: %v", path, err)
	}
	return sc
}

func writePrunedFASTA(ctx context.Context, flags pruneFlags, sc *fasta.Scaffolds, results map[string]intron.Result) {
	out, err := file.Create(ctx, flags.prunedPath)
	if err != nil {
		log.Panic(err)
	}
	w := fasta.NewWriter(out.Writer(ctx), flags.lineWidth)
	// Scaffolds keep their input order.  Scaffolds without candidates and
	// failed scaffolds pass through unpruned.
	for _, name := range sc.Names() {
		seq, err := sc.Get(name)
		if err != nil {
			log.Panic(err)
		}
		if res, ok := results[name]; ok && res.Err == nil {
			seq = res.Pruned.Seq
		}
		w.Append(name, seq)
	}
	once := errors.Once{}
	once.Set(w.Flush())
	once.Set(out.Close(ctx))
	if err := once.Err(); err != nil {
		log.Panicf("write %v: %v", flags.prunedPath, err)
	}
}

func pruneAssembly(ctx context.Context, flags pruneFlags, opts intron.Opts) {
	sc := readFASTA(ctx, flags.fastaPath)
	log.Printf("Read %d scaffolds from %s", len(sc.Names()), flags.fastaPath)

	candidates, err := postab.ReadCandidates(ctx, flags.candidatesPath)
	if err != nil {
		log.Panicf("read %v: %v", flags.candidatesPath, err)
	}
	log.Printf("Read %d candidates from %s", len(candidates), flags.candidatesPath)

	predicted := intron.SelectIntervals(candidates, func(c intron.Candidate) bool {
		return c.Prediction == intron.Positive
	})
	log.Printf("%d scaffolds have no predicted introns and pass through unpruned",
		len(intron.WithoutCandidates(sc.Sequences(), predicted)))
	results, stats := intron.PruneScaffolds(sc.Sequences(), predicted, opts)

	scaffolds := make([]string, 0, len(results))
	for scaffold := range results {
		scaffolds = append(scaffolds, scaffold)
	}
	sort.Strings(scaffolds)

	cuts := make(intron.ScaffoldIntervals)
	maps := make(map[string]intron.CoordMap)
	var cutScaffolds []string
	for _, scaffold := range scaffolds {
		res := results[scaffold]
		if res.Err != nil {
			log.Error.Printf("%s: %v", scaffold, res.Err)
			continue
		}
		if log.At(log.Debug) {
			for _, pair := range res.Partition.Overlap {
				if ratio, ok := pair.Ratio(); ok {
					log.Debug.Printf("%s: overlap %v %v ratio %.3f", scaffold, pair.Prev, pair.Cur, ratio)
				}
			}
		}
		if len(res.Pruned.Cut) > 0 {
			cuts[scaffold] = res.Pruned.Cut
			cutScaffolds = append(cutScaffolds, scaffold)
		}
		maps[scaffold] = res.Pruned.Map
	}

	nCut := intron.MarkCuts(candidates, cuts)
	log.Printf("Stats: %d of %d candidates cut: %+v", nCut, len(candidates), stats)

	writePrunedFASTA(ctx, flags, sc, results)
	if err := postab.WriteIntervals(ctx, flags.cutPath, cutScaffolds, cuts); err != nil {
		log.Panicf("write %v: %v", flags.cutPath, err)
	}
	if err := postab.WriteCandidates(ctx, flags.annotatedPath, candidates); err != nil {
		log.Panicf("write %v: %v", flags.annotatedPath, err)
	}
	if err := postab.WriteCoordMaps(ctx, flags.coordMapPath, scaffolds, maps); err != nil {
		log.Panicf("write %v: %v", flags.coordMapPath, err)
	}
	if stats.FailedScaffolds > 0 {
		log.Panicf("%d of %d scaffolds failed", stats.FailedScaffolds, stats.Scaffolds)
	}
}

func main() {
	opts := intron.DefaultOpts
	flags := pruneFlags{}
	flag.StringVar(&flags.fastaPath, "fasta", "", "Genomic FASTA file to prune. May be gzip-compressed.")
	flag.StringVar(&flags.candidatesPath, "candidates", "", "TSV table of intron candidates with label and prediction columns.")
	flag.StringVar(&flags.prunedPath, "pruned-output", "./pruned.fa", "FASTA file to store the pruned scaffolds.")
	flag.StringVar(&flags.cutPath, "cut-output", "./cuts.tsv", "TSV file to store the intervals that were excised.")
	flag.StringVar(&flags.coordMapPath, "coord-map-output", "./coordmap.tsv", "TSV file to store the pruned-to-original coordinate maps.")
	flag.StringVar(&flags.annotatedPath, "candidates-output", "./annotated.tsv", "TSV file to store the candidates annotated with a cut column.")
	flag.IntVar(&flags.lineWidth, "line-width", fasta.DefaultLineWidth, "Residues per line in the output FASTA.")
	flag.IntVar(&opts.MaxIntronLength, "max-intron-length", intron.DefaultOpts.MaxIntronLength,
		"Candidates spanning more than this many bases between start and end are kept in place rather than cut.")

	cleanup := grail.Init()
	defer cleanup()
	ctx := vcontext.Background()

	if flags.fastaPath == "" || flags.candidatesPath == "" {
		log.Fatal("both -fasta and -candidates are required")
	}
	pruneAssembly(ctx, flags, opts)
	log.Printf("All done")
}
