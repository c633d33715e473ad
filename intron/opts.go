package intron

// Opts controls pruning behavior.
type Opts struct {
	// MaxIntronLength bounds the end-start difference of an intron that
	// pruning will excise.  Candidates with End-Start > MaxIntronLength are
	// left in place rather than cut, to avoid chewing large ambiguous
	// regions.
	MaxIntronLength int

	// ImbalanceRatio is the positive/negative class ratio expected in real
	// data, used only by the adjusted-precision diagnostic.  Zero disables
	// the adjustment.
	ImbalanceRatio float64
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	MaxIntronLength: 80, // Go: -max-intron-length
}
