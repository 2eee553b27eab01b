package junctions

import (
	"testing"

	"github.com/wangdi2014/regtools/config"
)

func Test_checkJunction(t *testing.T) {
	conf := config.Config{
		MinAnchorLength: 8,
		MinIntronLength: 70,
		MaxIntronLength: 500000,
	}

	tests := []struct {
		name      string
		j         Junction
		want      bool
		wantLeft  bool
		wantRight bool
	}{
		{
			"intron at the minimum length is accepted",
			Junction{Start: 100, End: 170, ThickStart: 90, ThickEnd: 180},
			true, true, true,
		},
		{
			"intron below the minimum is rejected",
			Junction{Start: 100, End: 169, ThickStart: 90, ThickEnd: 180},
			false, false, false,
		},
		{
			"intron at the maximum length is accepted",
			Junction{Start: 100, End: 500100, ThickStart: 90, ThickEnd: 500110},
			true, true, true,
		},
		{
			"intron above the maximum is rejected",
			Junction{Start: 100, End: 500101, ThickStart: 90, ThickEnd: 500111},
			false, false, false,
		},
		{
			"anchor exactly at the threshold counts",
			Junction{Start: 108, End: 208, ThickStart: 100, ThickEnd: 216},
			true, true, true,
		},
		{
			"short anchors pass qc without support flags",
			Junction{Start: 107, End: 207, ThickStart: 100, ThickEnd: 214},
			true, false, false,
		},
		{
			"one-sided anchor support",
			Junction{Start: 110, End: 210, ThickStart: 100, ThickEnd: 215},
			true, true, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkJunction(&tt.j, conf)
			if got != tt.want {
				t.Errorf("checkJunction() = %v, want %v", got, tt.want)
			}
			if tt.j.HasLeftMinAnchor != tt.wantLeft {
				t.Errorf("HasLeftMinAnchor = %v, want %v", tt.j.HasLeftMinAnchor, tt.wantLeft)
			}
			if tt.j.HasRightMinAnchor != tt.wantRight {
				t.Errorf("HasRightMinAnchor = %v, want %v", tt.j.HasRightMinAnchor, tt.wantRight)
			}
		})
	}
}
