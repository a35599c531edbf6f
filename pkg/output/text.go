package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/groland11/openvpn-check-config/pkg/checker"
)

// formatText renders reports in the classic line-per-diagnostic layout.
func (f *formatter) formatText(reports []checker.Report) (string, error) {
	f.log.Debug("Formatting text output")

	var builder strings.Builder

	for i, report := range reports {
		if i > 0 {
			builder.WriteString("\n")
		}
		f.formatTextReport(&builder, &report, len(reports) > 1)
	}

	return builder.String(), nil
}

func (f *formatter) formatTextReport(builder *strings.Builder, report *checker.Report, withHeader bool) {
	if withHeader {
		header := report.File + ":"
		if f.config.WithColors {
			header = color.New(color.Bold).Sprint(header)
		}
		builder.WriteString(header + "\n")
	}

	for _, diag := range report.Diagnostics {
		if diag.Severity == checker.SeverityError {
			line := fmt.Sprintf("%4d ERROR: %s", diag.Line, diag.Message)
			if f.config.WithColors {
				line = color.New(color.FgRed).Sprint(line)
			}
			builder.WriteString(line + "\n")
			continue
		}

		if f.config.ShowOK {
			line := fmt.Sprintf("%4d OK: %s", diag.Line, diag.Raw)
			if f.config.WithColors {
				line = color.New(color.FgGreen).Sprint(line)
			}
			builder.WriteString(line + "\n")
		}
	}

	if f.config.WithStats {
		builder.WriteString(fmt.Sprintf("Stats: %d line(s) with %d error(s)\n",
			report.Stats.Lines, report.Stats.Errors))
	}
}
