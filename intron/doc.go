/*Package intron implements the interval-resolution core of an intron
  pruning pipeline: classification of candidate intron intervals into
  non-overlapping and overlapping groups, excision of qualifying introns
  from scaffold sequences with a coordinate map back to the original
  assembly, and counting of interval containment between two per-scaffold
  interval groupings (used for post-pruning diagnostics).

  All coordinates handed to this package are 1-based inclusive, the
  convention of the upstream position tables.  Coordinate maps produced by
  pruning are 0-based offsets into the respective sequences.
*/
package intron
