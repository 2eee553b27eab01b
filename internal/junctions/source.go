package junctions

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// alignmentSource bundles the file handle, BAM reader and BAI index
// for one indexed alignment file. Close releases everything; open
// releases whatever it had already acquired when a later step fails.
type alignmentSource struct {
	f   *os.File
	bf  *bam.Reader
	idx *bam.Index
}

// openAlignments opens path for reading and loads its BAI index from
// path + ".bai". The index is required even for whole-file scans.
func openAlignments(path string) (*alignmentSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open alignment file %s: %v", path, err)
	}

	bf, err := bam.NewReader(f, 1)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to open alignment file %s: %v", path, err)
	}

	ixf, err := os.Open(path + ".bai")
	if err != nil {
		bf.Close()
		f.Close()
		return nil, fmt.Errorf("unable to open alignment index for %s: alignments must be indexed", path)
	}
	idx, err := bam.ReadIndex(ixf)
	ixf.Close()
	if err != nil {
		bf.Close()
		f.Close()
		return nil, fmt.Errorf("unable to open alignment index for %s: %v", path, err)
	}

	return &alignmentSource{f: f, bf: bf, idx: idx}, nil
}

// scan calls fn for every alignment record in reg, or in the whole
// file when reg is nil. Records are only valid during the callback.
func (s *alignmentSource) scan(reg *Region, fn func(*sam.Record)) error {
	if reg == nil {
		return s.scanAll(fn)
	}

	var ref *sam.Reference
	for _, r := range s.bf.Header().Refs() {
		if r.Name() == reg.Chrom {
			ref = r
			break
		}
	}
	if ref == nil {
		return fmt.Errorf("unable to iterate to region %s: unknown reference %q", reg.Chrom, reg.Chrom)
	}

	end := reg.End
	if end == 0 {
		end = ref.Len()
	}
	chunks, err := s.idx.Chunks(ref, reg.Start, end)
	if err != nil {
		return fmt.Errorf("unable to iterate to region %s:%d-%d: %v", reg.Chrom, reg.Start, end, err)
	}

	it, err := bam.NewIterator(s.bf, chunks)
	if err != nil {
		return fmt.Errorf("unable to iterate to region %s:%d-%d: %v", reg.Chrom, reg.Start, end, err)
	}
	for it.Next() {
		// Chunks is bin-granular: the iterator can yield reads that share
		// a bin with the region but lie outside it. Keep overlaps only.
		rec := it.Record()
		if rec.Pos >= end || rec.End() <= reg.Start {
			continue
		}
		fn(rec)
	}
	if err := it.Close(); err != nil {
		return fmt.Errorf("unable to iterate to region %s:%d-%d: %v", reg.Chrom, reg.Start, end, err)
	}
	return nil
}

func (s *alignmentSource) scanAll(fn func(*sam.Record)) error {
	for {
		rec, err := s.bf.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("unable to iterate alignments: %v", err)
		}
		fn(rec)
	}
}

// Close releases the BAM reader and the underlying file.
func (s *alignmentSource) Close() error {
	err := s.bf.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}
