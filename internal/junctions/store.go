package junctions

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/wangdi2014/regtools/config"
)

// ErrFinalized is returned by Insert once the store's sorted view has
// been materialized with Junctions.
var ErrFinalized = errors.New("junction store already finalized")

// Result describes what Insert did with a candidate.
type Result int

const (
	// Rejected means the candidate failed qc and was discarded
	Rejected Result = iota

	// Added means the candidate became a new stored junction
	Added

	// Merged means the candidate's evidence was folded into an
	// existing junction with the same key
	Merged
)

// Store deduplicates candidate junctions by (chrom, start, end, strand)
// and accumulates read support across alignments.
//
// A store is collecting until the first Junctions call finalizes it;
// after that inserts fail with ErrFinalized and the sorted view never
// changes.
type Store struct {
	conf      config.Config
	junctions map[string]*Junction
	sorted    []*Junction
	finalized bool
}

// NewStore returns an empty junction store using the passed thresholds.
func NewStore(conf config.Config) *Store {
	return &Store{
		conf:      conf,
		junctions: make(map[string]*Junction),
	}
}

// Insert runs qc on the candidate and either discards it, stores it as
// a new junction, or merges its evidence into the junction already
// holding its key.
//
// New junctions are named for their insertion order: the n-th distinct
// junction of the run is JUNC followed by n zero-padded to 8 digits.
// Merging bumps the read count, widens the thick boundaries to the
// outermost anchors seen so far, and keeps anchor flags sticky once set.
func (s *Store) Insert(j Junction) (Result, error) {
	if s.finalized {
		return Rejected, ErrFinalized
	}
	if !checkJunction(&j, s.conf) {
		return Rejected, nil
	}

	key := j.key()
	j0, seen := s.junctions[key]
	if !seen {
		j.Name = fmt.Sprintf("JUNC%08d", len(s.junctions)+1)
		j.ReadCount = 1
		j.Score = "1"
		s.junctions[key] = &j
		return Added, nil
	}

	j0.ReadCount++
	j0.Score = strconv.Itoa(j0.ReadCount)
	if j.ThickStart < j0.ThickStart {
		j0.ThickStart = j.ThickStart
	}
	if j.ThickEnd > j0.ThickEnd {
		j0.ThickEnd = j.ThickEnd
	}
	j0.HasLeftMinAnchor = j0.HasLeftMinAnchor || j.HasLeftMinAnchor
	j0.HasRightMinAnchor = j0.HasRightMinAnchor || j.HasRightMinAnchor
	return Merged, nil
}

// Len is the number of distinct junctions stored so far.
func (s *Store) Len() int {
	return len(s.junctions)
}

// Junctions finalizes the store and returns its junctions sorted
// ascending by (chrom, start, end). The sort happens once; repeated
// calls return the same slice.
func (s *Store) Junctions() []*Junction {
	if !s.finalized {
		s.sorted = make([]*Junction, 0, len(s.junctions))
		for _, j := range s.junctions {
			s.sorted = append(s.sorted, j)
		}
		sortJunctions(s.sorted)
		s.finalized = true
	}
	return s.sorted
}
