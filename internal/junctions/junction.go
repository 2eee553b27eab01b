// Package junctions extracts splice junctions from CIGAR-encoded
// alignments in indexed BAM files.
package junctions

import (
	"fmt"
	"sort"
)

// Junction is one splice junction: a candidate intron with the widest
// flanking anchors seen across all supporting reads.
//
// Start and End are the 0-based half-open intron span on the reference.
// ThickStart and ThickEnd are the outer boundaries of the flanking
// anchors, so ThickStart <= Start <= End <= ThickEnd.
type Junction struct {
	// Chrom is the reference sequence name
	Chrom string

	// Start is where the intron begins on the reference
	Start int

	// End is where the intron ends on the reference
	End int

	// ThickStart is the outermost left anchor boundary seen in any read
	ThickStart int

	// ThickEnd is the outermost right anchor boundary seen in any read
	ThickEnd int

	// Name is assigned at first sighting and kept through merges
	Name string

	// Score is ReadCount rendered as text, kept in sync on every merge
	Score string

	// Strand is "+", "-" or "?" when the aligner left no hint
	Strand string

	// ReadCount is the number of alignments supporting this junction
	ReadCount int

	// HasLeftMinAnchor is set once any supporting read had at least the
	// minimum anchor length to the left of the intron
	HasLeftMinAnchor bool

	// HasRightMinAnchor is the same for the right side
	HasRightMinAnchor bool
}

// key is the canonical identity of a junction within a run.
func (j *Junction) key() string {
	return fmt.Sprintf("%s:%d-%d:%s", j.Chrom, j.Start, j.End, j.Strand)
}

// Anchored reports whether the junction had the minimum anchor length
// on both sides in at least one supporting read.
func (j *Junction) Anchored() bool {
	return j.HasLeftMinAnchor && j.HasRightMinAnchor
}

// BED renders the junction as one BED12 line. The two blocks are the
// flanking anchors; the intron is the gap between them.
func (j *Junction) BED() string {
	return fmt.Sprintf(
		"%s\t%d\t%d\t%s\t%s\t%s\t%d\t%d\t255,0,0\t2\t%d,%d\t0,%d",
		j.Chrom, j.ThickStart, j.ThickEnd, j.Name, j.Score, j.Strand,
		j.ThickStart, j.ThickEnd,
		j.Start-j.ThickStart, j.ThickEnd-j.End,
		j.End-j.ThickStart,
	)
}

// sortJunctions orders junctions ascending by chrom, start, end.
func sortJunctions(js []*Junction) {
	sort.Slice(js, func(i, k int) bool {
		if js[i].Chrom != js[k].Chrom {
			return js[i].Chrom < js[k].Chrom
		}
		if js[i].Start != js[k].Start {
			return js[i].Start < js[k].Start
		}
		return js[i].End < js[k].End
	})
}
