package intron

import "fmt"

// Confusion is a binary-classification confusion matrix over candidate
// labels.
type Confusion struct {
	TP, FP, TN, FN int
}

// NewConfusion tallies predictions against gold labels.  The two slices
// must have equal length; any label other than Positive counts as
// negative.
func NewConfusion(labels, predictions []Label) Confusion {
	if len(labels) != len(predictions) {
		panic("internal error: labels and predictions differ in length")
	}
	var c Confusion
	for i, label := range labels {
		switch {
		case label == Positive && predictions[i] == Positive:
			c.TP++
		case label == Positive:
			c.FN++
		case predictions[i] == Positive:
			c.FP++
		default:
			c.TN++
		}
	}
	return c
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Accuracy returns (TP+TN) / total, or 0 for an empty matrix.
func (c Confusion) Accuracy() float64 { return ratio(c.TP+c.TN, c.TP+c.FP+c.TN+c.FN) }

// Precision returns TP / (TP+FP), or 0 when nothing was called positive.
func (c Confusion) Precision() float64 { return ratio(c.TP, c.TP+c.FP) }

// Recall returns TP / (TP+FN), or 0 when there are no positives.
func (c Confusion) Recall() float64 { return ratio(c.TP, c.TP+c.FN) }

// AdjustedPrecision corrects Precision for the class imbalance of real
// data: the validation set has a positive/negative ratio v = (TP+FN) /
// (TN+FP), real data a ratio r, so true positives are reweighted by r/v
// and false positives by (1-r)/(1-v).  It returns plain Precision when r
// is not in (0, 1) or the validation set has no negatives.
func (c Confusion) AdjustedPrecision(r float64) float64 {
	if r <= 0 || r >= 1 || c.TN+c.FP == 0 {
		return c.Precision()
	}
	v := float64(c.TP+c.FN) / float64(c.TN+c.FP)
	if v == 0 || v >= 1 {
		return c.Precision()
	}
	tp := r / v * float64(c.TP)
	fp := (1 - r) / (1 - v) * float64(c.FP)
	if tp+fp == 0 {
		return 0
	}
	return tp / (tp + fp)
}

// Report renders the matrix and derived metrics one line per entry, for
// logging.
func (c Confusion) Report() []string {
	return []string{
		fmt.Sprintf(" -TP: %d", c.TP),
		fmt.Sprintf(" -FP: %d", c.FP),
		fmt.Sprintf(" -TN: %d", c.TN),
		fmt.Sprintf(" -FN: %d", c.FN),
		fmt.Sprintf("Accuracy: %g", c.Accuracy()),
		fmt.Sprintf("Precision: %g", c.Precision()),
		fmt.Sprintf("Recall: %g", c.Recall()),
	}
}
