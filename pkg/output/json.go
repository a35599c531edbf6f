package output

import (
	"encoding/json"
	"time"

	"github.com/groland11/openvpn-check-config/pkg/checker"
	"github.com/groland11/openvpn-check-config/pkg/logger"
)

// lineDoc represents a single diagnostic in structured output.
type lineDoc struct {
	Line    int    `json:"line" yaml:"line"`
	Keyword string `json:"keyword" yaml:"keyword"`
	Status  string `json:"status" yaml:"status"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Text    string `json:"text" yaml:"text"`
}

// statsDoc represents per-file statistics in structured output.
type statsDoc struct {
	Lines      int     `json:"lines" yaml:"lines"`
	Errors     int     `json:"errors" yaml:"errors"`
	DurationMS float64 `json:"durationMs" yaml:"durationMs"`
}

// reportDoc represents a single file report in structured output.
type reportDoc struct {
	File        string    `json:"file" yaml:"file"`
	Valid       bool      `json:"valid" yaml:"valid"`
	Diagnostics []lineDoc `json:"diagnostics" yaml:"diagnostics"`
	Statistics  *statsDoc `json:"statistics,omitempty" yaml:"statistics,omitempty"`
}

// outputDoc represents the complete structured output.
type outputDoc struct {
	Reports   []reportDoc `json:"reports" yaml:"reports"`
	Valid     bool        `json:"valid" yaml:"valid"`
	Generated time.Time   `json:"generated" yaml:"generated"`
}

func (f *formatter) formatJSON(reports []checker.Report) (string, error) {
	f.log.Debug("Formatting JSON output")

	doc := f.buildDoc(reports)

	bytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")
		return "", err
	}

	return string(bytes), nil
}

func (f *formatter) buildDoc(reports []checker.Report) *outputDoc {
	doc := &outputDoc{
		Reports:   make([]reportDoc, 0, len(reports)),
		Valid:     true,
		Generated: time.Now(),
	}

	for _, report := range reports {
		rd := reportDoc{
			File:        report.File,
			Valid:       report.Valid,
			Diagnostics: make([]lineDoc, 0, len(report.Diagnostics)),
		}

		if !report.Valid {
			doc.Valid = false
		}

		for _, diag := range report.Diagnostics {
			if diag.Severity == checker.SeverityOK && !f.config.ShowOK {
				continue
			}
			rd.Diagnostics = append(rd.Diagnostics, lineDoc{
				Line:    diag.Line,
				Keyword: diag.Keyword,
				Status:  diag.Severity.String(),
				Message: diag.Message,
				Text:    diag.Raw,
			})
		}

		if f.config.WithStats {
			rd.Statistics = &statsDoc{
				Lines:      report.Stats.Lines,
				Errors:     report.Stats.Errors,
				DurationMS: float64(report.Stats.Duration.Microseconds()) / 1000,
			}
		}

		doc.Reports = append(doc.Reports, rd)
	}

	return doc
}
