package junctions

import (
	"github.com/wangdi2014/regtools/config"
)

// checkJunction does basic qc on a candidate junction. It reports
// whether the intron length falls within the configured bounds and,
// when it does, sets the candidate's anchor support flags.
func checkJunction(j *Junction, conf config.Config) bool {
	intron := j.End - j.Start
	if intron < conf.MinIntronLength || intron > conf.MaxIntronLength {
		return false
	}
	if j.Start-j.ThickStart >= conf.MinAnchorLength {
		j.HasLeftMinAnchor = true
	}
	if j.ThickEnd-j.End >= conf.MinAnchorLength {
		j.HasRightMinAnchor = true
	}
	return true
}
