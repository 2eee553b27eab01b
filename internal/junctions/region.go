package junctions

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is a genomic interval to restrict a scan to. Start and End
// are 0-based half-open; End == 0 means "to the end of the reference".
type Region struct {
	Chrom string
	Start int
	End   int
}

// ParseRegion parses a region argument in "chr" or "chr:start-end"
// format, where start and end are 1-based and inclusive as in samtools.
// An empty argument means the whole file and parses to nil.
func ParseRegion(arg string) (*Region, error) {
	if arg == "" {
		return nil, nil
	}

	chrom, span, bounded := strings.Cut(arg, ":")
	if chrom == "" {
		return nil, fmt.Errorf("invalid region %q: missing reference name", arg)
	}
	if !bounded {
		return &Region{Chrom: chrom}, nil
	}

	rawStart, rawEnd, ok := strings.Cut(span, "-")
	if !ok {
		return nil, fmt.Errorf("invalid region %q: expected chr:start-end", arg)
	}
	start, err := strconv.Atoi(rawStart)
	if err != nil {
		return nil, fmt.Errorf("invalid region %q: bad start: %v", arg, err)
	}
	end, err := strconv.Atoi(rawEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid region %q: bad end: %v", arg, err)
	}
	if start < 1 || end < start {
		return nil, fmt.Errorf("invalid region %q: start must be >= 1 and <= end", arg)
	}

	return &Region{Chrom: chrom, Start: start - 1, End: end}, nil
}
