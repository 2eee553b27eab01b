package junctions

import (
	"reflect"
	"testing"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    *Region
		wantErr bool
	}{
		{
			"empty means whole file",
			"",
			nil,
			false,
		},
		{
			"bare chromosome",
			"chr1",
			&Region{Chrom: "chr1"},
			false,
		},
		{
			"bounded region is converted to 0-based half-open",
			"chr1:100-200",
			&Region{Chrom: "chr1", Start: 99, End: 200},
			false,
		},
		{
			"single base region",
			"chrX:1-1",
			&Region{Chrom: "chrX", Start: 0, End: 1},
			false,
		},
		{
			"missing end",
			"chr1:100",
			nil,
			true,
		},
		{
			"missing chromosome",
			":100-200",
			nil,
			true,
		},
		{
			"inverted bounds",
			"chr1:200-100",
			nil,
			true,
		},
		{
			"zero start",
			"chr1:0-100",
			nil,
			true,
		},
		{
			"non-numeric bounds",
			"chr1:abc-200",
			nil,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRegion(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRegion() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRegion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
