package junctions

import (
	"log"
	"os"

	"github.com/biogo/hts/sam"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/wangdi2014/regtools/config"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// xsTag is the aux tag aligners use for the inferred transcription
	// strand of a spliced alignment
	xsTag = sam.NewTag("XS")
)

// Extractor drives one extraction run: it drains an alignment source
// through the CIGAR walker and accumulates junctions in its store.
type Extractor struct {
	conf   config.Config
	path   string
	region *Region
	store  *Store
}

// NewExtractor returns an extractor over the indexed alignments at
// path, restricted to region when it is non-nil.
func NewExtractor(path string, region *Region, conf config.Config) *Extractor {
	return &Extractor{
		conf:   conf,
		path:   path,
		region: region,
		store:  NewStore(conf),
	}
}

// Run scans the alignments and fills the junction store. Failing to
// open, index or iterate the alignment file is fatal for the run; a
// problem with a single alignment's candidates is logged and the scan
// moves on, so one bad record cannot forfeit the rest of the file.
func (e *Extractor) Run() error {
	src, err := openAlignments(e.path)
	if err != nil {
		return err
	}
	defer src.Close()

	return src.scan(e.region, e.collect)
}

// collect derives candidate junctions from one alignment record and
// inserts them into the store.
func (e *Extractor) collect(rec *sam.Record) {
	if rec.Ref == nil {
		return // unmapped
	}
	walkCigar(rec.Ref.Name(), rec.Pos, strandHint(rec), rec.Cigar, func(j Junction) {
		if _, err := e.store.Insert(j); err != nil {
			stderr.Printf("skipping junction from read %s: %v", rec.Name, err)
		}
	})
}

// Store exposes the accumulated junctions.
func (e *Extractor) Store() *Store {
	return e.store
}

// strandHint reads the XS aux tag from an alignment. Absent or
// unreadable hints degrade to "?".
func strandHint(rec *sam.Record) string {
	aux := rec.AuxFields.Get(xsTag)
	if aux == nil {
		return "?"
	}
	switch v := aux.Value().(type) {
	case byte:
		if v == 0 {
			return "?"
		}
		return string(v)
	case string:
		if v == "" {
			return "?"
		}
		return v[:1]
	}
	return "?"
}

// ExtractCmd is the entry point for `regtools junctions extract`.
func ExtractCmd(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		cmd.Help()
		stderr.Fatal("expecting one indexed alignment file")
	}

	if prof, _ := cmd.Flags().GetBool("profile"); prof {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	conf := config.New()
	if err := conf.Validate(); err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	regionArg, err := cmd.Flags().GetString("region")
	if err != nil {
		stderr.Fatal(err)
	}
	region, err := ParseRegion(regionArg)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		stderr.Fatal(err)
	}

	stderr.Printf("Minimum junction anchor length: %d", conf.MinAnchorLength)
	stderr.Printf("Minimum intron length: %d", conf.MinIntronLength)
	stderr.Printf("Maximum intron length: %d", conf.MaxIntronLength)
	stderr.Printf("Alignment: %s", args[0])

	e := NewExtractor(args[0], region, conf)
	if err := e.Run(); err != nil {
		stderr.Fatal(err)
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			stderr.Fatalf("failed to create the output file: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := WriteBED(w, e.store.Junctions()); err != nil {
		stderr.Fatalf("failed to write junctions: %v", err)
	}
}
