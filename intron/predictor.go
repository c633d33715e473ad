package intron

// Label is a binary classification outcome for a candidate sequence.
type Label int

// Candidate labels, matching the convention of the upstream position
// tables (+1 intron, -1 non-intron).
const (
	Positive Label = 1
	Negative Label = -1
)

// Predictor is the contract through which an externally trained binary
// classifier is consumed.  Model loading, feature extraction, and the
// threading configuration of the underlying ML library are entirely the
// implementation's concern.
type Predictor interface {
	// Predict classifies one candidate sequence.
	Predict(seq string) (Label, error)
}

// ConstLabel is a Predictor that labels every candidate with a fixed
// label.  ConstLabel(Positive) makes the pipeline treat every candidate as
// an intron, which is useful for measuring pruning in isolation.
type ConstLabel Label

// Predict implements Predictor.
func (c ConstLabel) Predict(string) (Label, error) { return Label(c), nil }
