/*
Package config provides configuration management for the checker. It handles
environment variables and validation of all configuration parameters.

Environment Variables:

	OVPNCHECK_OUTPUT       Output format: text|json|yaml
	OVPNCHECK_OUTPUT_FILE  Report file path (empty for stdout)
	OVPNCHECK_MODE         Directive scope: any|client|server
	OVPNCHECK_WORKERS      Number of concurrent workers for multi-file runs
	OVPNCHECK_RATE_LIMIT   Rate limit in files per second (0 for unlimited)
	OVPNCHECK_FAIL_FAST    Stop checking a file at its first error
	OVPNCHECK_NO_PROGRESS  Disable progress reporting
	OVPNCHECK_NO_COLOR     Disable colored output
	OVPNCHECK_DEBUG        Include passing lines in the report
	OVPNCHECK_VERBOSE      Verbosity level (number of 'v's)

Default Values:

	Output:    "text"
	Mode:      "any"
	Workers:   Number of CPU cores
	RateLimit: 0 (unlimited)
*/
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application.
type Config struct {
	// Output specifies the report format (text, json, or yaml).
	Output string

	// OutputFile is the path to write the report (empty for stdout).
	OutputFile string

	// Mode restricts directives to one side of the VPN (any, client, server).
	Mode string

	// Workers is the number of concurrent workers for multi-file runs.
	Workers int

	// RateLimit is the maximum number of files checked per second
	// (0 for unlimited).
	RateLimit int

	// FailFast stops checking a file at its first error.
	FailFast bool

	// NoProgress disables progress reporting.
	NoProgress bool

	// NoColor disables colored output.
	NoColor bool

	// Debug includes passing lines in the report and raises log verbosity.
	Debug bool

	// Verbose sets the verbosity level.
	Verbose int
}

// validOutputFormats contains the list of supported report formats.
var validOutputFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// validModes contains the list of supported directive scopes.
var validModes = map[string]bool{
	"any":    true,
	"client": true,
	"server": true,
}

// Load reads configuration from environment variables and validates it.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("output", "text")
	v.SetDefault("mode", "any")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("rate_limit", 0)
	v.SetDefault("fail_fast", false)
	v.SetDefault("no_progress", false)
	v.SetDefault("no_color", false)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("OVPNCHECK")
	v.AutomaticEnv()

	v.BindEnv("output")
	v.BindEnv("output_file")
	v.BindEnv("mode")
	v.BindEnv("workers")
	v.BindEnv("rate_limit")
	v.BindEnv("fail_fast")
	v.BindEnv("no_progress")
	v.BindEnv("no_color")
	v.BindEnv("debug")
	v.BindEnv("verbose")

	// Verbosity may be given as a string of 'v's.
	if verboseStr := v.GetString("verbose"); strings.ContainsRune(verboseStr, 'v') {
		v.Set("verbose", strings.Count(verboseStr, "v"))
	}

	cfg := Config{
		Output:     v.GetString("output"),
		OutputFile: v.GetString("output_file"),
		Mode:       v.GetString("mode"),
		Workers:    v.GetInt("workers"),
		RateLimit:  v.GetInt("rate_limit"),
		FailFast:   v.GetBool("fail_fast"),
		NoProgress: v.GetBool("no_progress"),
		NoColor:    v.GetBool("no_color"),
		Debug:      v.GetBool("debug"),
		Verbose:    v.GetInt("verbose"),
	}

	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers count must be positive")
	}
	maxWorkers := runtime.NumCPU() * 4
	if c.Workers > maxWorkers {
		return fmt.Errorf("workers count cannot exceed system CPU count * 4")
	}

	if !validOutputFormats[c.Output] {
		return fmt.Errorf("invalid output format: must be one of [text json yaml]")
	}

	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode: must be one of [any client server]")
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}

	return nil
}

// String returns a string representation of the configuration.
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Output: %s, OutputFile: %s, Mode: %s, Workers: %d, RateLimit: %d, "+
			"FailFast: %v, NoProgress: %v, NoColor: %v, Debug: %v, Verbose: %d}",
		c.Output, c.OutputFile, c.Mode, c.Workers, c.RateLimit,
		c.FailFast, c.NoProgress, c.NoColor, c.Debug, c.Verbose,
	)
}
