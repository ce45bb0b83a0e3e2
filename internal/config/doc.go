// Package config provides configuration loading for the tidyprep commands.
//
// Configuration is resolved in three layers: struct tag defaults, an optional
// tidyprep.yaml file in the working directory, and TIDYPREP_* environment
// variables, with the environment taking precedence over the file. The
// defaults are complete, so both commands run with no configuration present.
//
// The package also owns the Paths type, which centralizes where output CSV
// files and log files are written.
package config
