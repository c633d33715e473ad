// Package fasta contains code for reading and writing FASTA files.
// Briefly, FASTA files consist of a number of named sequences whose bases
// may be interrupted by newlines.  For example:
//
// >scaffold_1
// ACGTAC
// GAGGAC
// GCG
// >scaffold_2
// ACGT
//
// Note: Sequence names are defined to be the stretch of characters
// excluding spaces immediately after '>'.  Any text appearing after a
// space is ignored.  For example, '>scaffold_1 partial assembly' becomes
// 'scaffold_1'.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Scaffolds holds the named sequences of one FASTA file in memory.
type Scaffolds struct {
	seqs  map[string]string
	names []string
}

// Read parses all the FASTA data from the given reader.
func Read(r io.Reader) (*Scaffolds, error) {
	s := &Scaffolds{seqs: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1024*1024*300)
	var name string
	var seq strings.Builder
	flush := func() error {
		if seq.Len() == 0 && name == "" {
			return nil
		}
		if name == "" {
			return errors.Errorf("malformed FASTA data: sequence before first header")
		}
		if _, found := s.seqs[name]; found {
			return errors.Errorf("duplicate sequence name %s", name)
		}
		s.seqs[name] = seq.String()
		s.names = append(s.names, name)
		seq.Reset()
		return nil
	}
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			name = strings.Split(line[1:], " ")[0]
			if name == "" {
				return nil, errors.Errorf("malformed FASTA data: empty sequence name")
			}
		} else {
			seq.WriteString(line)
		}
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "couldn't read FASTA data")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the sequence with the given name.
func (s *Scaffolds) Get(name string) (string, error) {
	seq, ok := s.seqs[name]
	if !ok {
		return "", errors.Errorf("sequence not found: %s", name)
	}
	return seq, nil
}

// Len returns the length of the given sequence, or 0 if absent.
func (s *Scaffolds) Len(name string) int { return len(s.seqs[name]) }

// Names returns the sequence names in order of appearance.
func (s *Scaffolds) Names() []string { return s.names }

// Sequences returns the name -> sequence map.  The map is shared, not
// copied; callers must not mutate it.
func (s *Scaffolds) Sequences() map[string]string { return s.seqs }
