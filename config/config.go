// Package config is for run wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Default holds the extraction thresholds used when none are set
// on the command line.
var Default = Config{
	MinAnchorLength: 8,
	MinIntronLength: 70,
	MaxIntronLength: 500000,
}

// Config is the set of run-wide junction extraction thresholds.
// It is built once per run and passed by value; nothing mutates it
// after creation.
type Config struct {
	// the minimum anchor length. A junction's anchor flags are set
	// when the matched sequence flanking the intron is at least this long
	MinAnchorLength int `mapstructure:"min-anchor"`

	// the minimum length of an intron for it to be reported
	MinIntronLength int `mapstructure:"min-intron"`

	// the maximum length of an intron for it to be reported
	MaxIntronLength int `mapstructure:"max-intron"`
}

// New returns a new Config struct populated by Viper settings
// and/or command line arguments.
func New() Config {
	c := Default

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return c
}

// Validate checks that the thresholds describe a satisfiable run.
func (c Config) Validate() error {
	if c.MinAnchorLength < 0 {
		return fmt.Errorf("minimum anchor length must be non-negative, got %d", c.MinAnchorLength)
	}
	if c.MinIntronLength < 1 {
		return fmt.Errorf("minimum intron length must be positive, got %d", c.MinIntronLength)
	}
	if c.MaxIntronLength < c.MinIntronLength {
		return fmt.Errorf(
			"maximum intron length (%d) is smaller than the minimum (%d)",
			c.MaxIntronLength, c.MinIntronLength,
		)
	}
	return nil
}
