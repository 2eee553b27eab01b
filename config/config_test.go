package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	c := New()
	if c.MinAnchorLength != 8 {
		t.Errorf("New().MinAnchorLength = %d, want 8", c.MinAnchorLength)
	}
	if c.MinIntronLength != 70 {
		t.Errorf("New().MinIntronLength = %d, want 70", c.MinIntronLength)
	}
	if c.MaxIntronLength != 500000 {
		t.Errorf("New().MaxIntronLength = %d, want 500000", c.MaxIntronLength)
	}

	viper.Set("min-anchor", 12)
	viper.Set("min-intron", 50)
	c = New()
	if c.MinAnchorLength != 12 {
		t.Errorf("New().MinAnchorLength = %d, want 12", c.MinAnchorLength)
	}
	if c.MinIntronLength != 50 {
		t.Errorf("New().MinIntronLength = %d, want 50", c.MinIntronLength)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       Config
		wantErr bool
	}{
		{
			"defaults are valid",
			Default,
			false,
		},
		{
			"negative anchor",
			Config{MinAnchorLength: -1, MinIntronLength: 70, MaxIntronLength: 500000},
			true,
		},
		{
			"zero min intron",
			Config{MinAnchorLength: 8, MinIntronLength: 0, MaxIntronLength: 500000},
			true,
		},
		{
			"max below min",
			Config{MinAnchorLength: 8, MinIntronLength: 70, MaxIntronLength: 69},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
