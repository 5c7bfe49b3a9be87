// Package config loads settings for the datatypes CLI.
//
// Settings come from built-in defaults, a datatypes.yaml file, DATATYPES_*
// environment variables and command-line flags, in increasing order of
// precedence.
package config

import "time"

// Defaults applied before any file, environment or flag is read.
const (
	DefaultBackend     = "generic"
	DefaultOutput      = "auto"
	DefaultConcurrency = 4
	DefaultDebounce    = 200 * time.Millisecond
)

// EnvPrefix is the prefix of environment variables read by the loader.
const EnvPrefix = "DATATYPES_"

// configFileNames are searched in order.
var configFileNames = []string{"datatypes.yaml", "datatypes.yml"}

// Config holds all CLI configuration options.
type Config struct {
	// Backend used when a schema document does not name one.
	Backend string `koanf:"backend"`
	// Output is one of auto, text, markdown, json or yaml.
	Output string `koanf:"output"`
	Verbose bool  `koanf:"verbose"`
	// Concurrency bounds how many schema files are validated at once.
	Concurrency int `koanf:"concurrency"`
	// Debounce is how long validate --watch waits for writes to settle.
	Debounce time.Duration `koanf:"debounce"`
	// Schemas are used by commands that take schema files when none are
	// given on the command line. Relative paths are resolved against the
	// directory of the config file.
	Schemas []string `koanf:"schemas"`
}
