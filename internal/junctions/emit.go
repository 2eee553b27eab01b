package junctions

import (
	"bufio"
	"fmt"
	"io"
)

// WriteBED writes one BED12 line per junction to w, keeping the order
// of the passed slice. Junctions without the minimum anchor on both
// sides are suppressed; they still counted as evidence in the store.
func WriteBED(w io.Writer, js []*Junction) error {
	bw := bufio.NewWriter(w)
	for _, j := range js {
		if !j.Anchored() {
			continue
		}
		if _, err := fmt.Fprintln(bw, j.BED()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
