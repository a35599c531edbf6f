/*
Package output provides formatters for check reports in text, JSON, and YAML,
with optional colors and summary statistics.

Basic usage:

	formatter := output.NewFormatter(output.Config{
		Format:    output.FormatText,
		WithStats: true,
	}, log)

	report, err := formatter.Format(reports)
*/
package output

import (
	"fmt"

	"github.com/groland11/openvpn-check-config/pkg/checker"
	"github.com/groland11/openvpn-check-config/pkg/logger"
)

// Format represents the output format type.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Valid reports whether the format is supported.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Config holds formatter configuration.
type Config struct {
	// Format selects the output format.
	Format Format

	// WithStats appends summary statistics per file.
	WithStats bool

	// WithColors enables colored text output.
	WithColors bool

	// ShowOK includes passing lines in text output, matching the
	// checker's debug mode. Errors are always included.
	ShowOK bool
}

// Formatter renders check reports.
type Formatter interface {
	Format(reports []checker.Report) (string, error)
}

type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance.
func NewFormatter(config Config, log logger.Logger) Formatter {
	return &formatter{
		config: config,
		log:    log,
	}
}

// Format renders the reports according to the configured format.
func (f *formatter) Format(reports []checker.Report) (string, error) {
	if len(reports) == 0 {
		msg := "no reports provided for formatting"
		f.log.Error(msg)
		return "", fmt.Errorf("%s", msg)
	}

	f.log.WithFields(logger.Fields{
		"format":    f.config.Format,
		"reports":   len(reports),
		"withStats": f.config.WithStats,
	}).Debug("Starting format operation")

	switch f.config.Format {
	case FormatText:
		return f.formatText(reports)
	case FormatJSON:
		return f.formatJSON(reports)
	case FormatYAML:
		return f.formatYAML(reports)
	default:
		msg := fmt.Sprintf("unsupported format: %s", f.config.Format)
		f.log.Error(msg)
		return "", fmt.Errorf("%s", msg)
	}
}
