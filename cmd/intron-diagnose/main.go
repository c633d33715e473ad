package main

// intron-diagnose reports classifier and cutting quality for an
// intron-prune run.
//
// It compares the candidate labels against the classifier predictions
// (before cutting) and against the intervals that were actually cut
// (after cutting), then measures how often the mistakes fall inside
// annotated exons: a cut that lands in an exon destroys coding
// sequence, so the exon-containment rate is the cost of a false cut.
//
// Example:
//
//    intron-diagnose -exons=exons.tsv -candidates=annotated.tsv \
//      -cuts=cuts.tsv -imbalance-ratio=0.05

import (
	"context"
	"flag"
	"fmt"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/mycoseq/bio/encoding/postab"
	"github.com/mycoseq/bio/intron"
)

type diagnoseFlags struct {
	exonsPath      string
	candidatesPath string
	cutsPath       string
	imbalanceRatio float64
}

// reportContainment counts how many of the selected candidate intervals
// fall inside an annotated exon and prints the proportion plus the rate
// per kilobase of exon sequence.
func reportContainment(name string, exons intron.ScaffoldIntervals, exonBases int,
	candidates []intron.Candidate, keep func(intron.Candidate) bool) {
	probes := intron.SelectIntervals(candidates, keep)
	containment, err := intron.CountContained(exons, probes)
	if err != nil {
		log.Panicf("%s: %v", name, err)
	}
	for _, scaffold := range containment.MissingScaffolds {
		log.Error.Printf("%s: no exons for scaffold %s, skipping its probes", name, scaffold)
	}
	total := containment.Total()
	proportion := 0.0
	if containment.Probes > 0 {
		proportion = float64(total) / float64(containment.Probes)
	}
	fmt.Printf("%s in exons: %d of %d (%.4f), %.4f per 1000bp of exon\n",
		name, total, containment.Probes, proportion,
		intron.RatePerKilobase(total, exonBases))
}

func printConfusion(name string, c intron.Confusion) {
	fmt.Println(name + ":")
	for _, line := range c.Report() {
		fmt.Println(line)
	}
}

func diagnose(ctx context.Context, flags diagnoseFlags) {
	candidates, err := postab.ReadCandidates(ctx, flags.candidatesPath)
	if err != nil {
		log.Panicf("read %v: %v", flags.candidatesPath, err)
	}
	exons, err := postab.ReadIntervals(ctx, flags.exonsPath)
	if err != nil {
		log.Panicf("read %v: %v", flags.exonsPath, err)
	}
	cuts, err := postab.ReadIntervals(ctx, flags.cutsPath)
	if err != nil {
		log.Panicf("read %v: %v", flags.cutsPath, err)
	}
	nCut := intron.MarkCuts(candidates, cuts)
	log.Printf("Read %d candidates (%d cut), exons for %d scaffolds",
		len(candidates), nCut, len(exons))

	labels := make([]intron.Label, len(candidates))
	predictions := make([]intron.Label, len(candidates))
	cutLabels := make([]intron.Label, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
		predictions[i] = c.Prediction
		cutLabels[i] = intron.Negative
		if c.Cut {
			cutLabels[i] = intron.Positive
		}
	}

	before := intron.NewConfusion(labels, predictions)
	printConfusion("Classification", before)
	if flags.imbalanceRatio > 0 {
		fmt.Printf("Adjusted precision (r=%g): %g\n",
			flags.imbalanceRatio, before.AdjustedPrecision(flags.imbalanceRatio))
	}
	after := intron.NewConfusion(labels, cutLabels)
	printConfusion("Cutting", after)

	exonBases := 0
	for _, ivs := range exons {
		exonBases += intron.TotalSpan(ivs)
	}
	reportContainment("false candidates", exons, exonBases, candidates,
		func(c intron.Candidate) bool { return c.Label == intron.Negative })
	reportContainment("false predictions", exons, exonBases, candidates,
		func(c intron.Candidate) bool { return c.Prediction == intron.Positive && c.Label == intron.Negative })
	reportContainment("false cuts", exons, exonBases, candidates,
		func(c intron.Candidate) bool { return c.Cut && c.Label == intron.Negative })
}

func main() {
	flags := diagnoseFlags{}
	flag.StringVar(&flags.exonsPath, "exons", "", "TSV table of annotated exon intervals.")
	flag.StringVar(&flags.candidatesPath, "candidates", "", "TSV table of intron candidates with label and prediction columns.")
	flag.StringVar(&flags.cutsPath, "cuts", "", "TSV table of cut intervals produced by intron-prune.")
	flag.Float64Var(&flags.imbalanceRatio, "imbalance-ratio", intron.DefaultOpts.ImbalanceRatio,
		"True positive-to-negative ratio of the full genome. When >0, precision is rescaled to this class balance.")

	cleanup := grail.Init()
	defer cleanup()
	ctx := vcontext.Background()

	if flags.exonsPath == "" || flags.candidatesPath == "" || flags.cutsPath == "" {
		log.Fatal("-exons, -candidates and -cuts are all required")
	}
	diagnose(ctx, flags)
}
