package config

import (
	"fmt"
	"slices"

	"github.com/leapstack-labs/datatypes/pkg/datatype"
)

var outputModes = []string{"auto", "text", "markdown", "json", "yaml"}

// Validate checks that the configuration names a registered backend and a
// known output mode.
func (c *Config) Validate() error {
	if c.Backend != "" && !datatype.IsRegistered(c.Backend) {
		return fmt.Errorf("unknown backend %q (available: %v)", c.Backend, datatype.List())
	}
	if c.Output != "" && !slices.Contains(outputModes, c.Output) {
		return fmt.Errorf("unknown output format %q (available: %v)", c.Output, outputModes)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", c.Debounce)
	}
	return nil
}
