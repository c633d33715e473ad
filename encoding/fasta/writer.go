package fasta

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// DefaultLineWidth is the base count per sequence line used by Write.
const DefaultLineWidth = 80

// Writer emits FASTA records with sequence lines wrapped at a fixed
// width.
type Writer struct {
	w     *bufio.Writer
	width int
	err   error
}

// NewWriter returns a Writer wrapping sequence lines at width bases.  A
// non-positive width selects DefaultLineWidth.
func NewWriter(w io.Writer, width int) *Writer {
	if width <= 0 {
		width = DefaultLineWidth
	}
	return &Writer{w: bufio.NewWriter(w), width: width}
}

// Append writes one named sequence.
func (w *Writer) Append(name, seq string) {
	if w.err != nil {
		return
	}
	w.setErr(w.w.WriteByte('>'))
	w.writeString(name)
	w.setErr(w.w.WriteByte('\n'))
	for start := 0; start < len(seq); start += w.width {
		end := start + w.width
		if end > len(seq) {
			end = len(seq)
		}
		w.writeString(seq[start:end])
		w.setErr(w.w.WriteByte('\n'))
	}
}

// Flush writes any buffered data and returns the first error encountered,
// if any.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return errors.Wrap(w.w.Flush(), "couldn't write FASTA data")
}

func (w *Writer) writeString(s string) {
	_, err := w.w.WriteString(s)
	w.setErr(err)
}

func (w *Writer) setErr(err error) {
	if w.err == nil && err != nil {
		w.err = errors.Wrap(err, "couldn't write FASTA data")
	}
}
