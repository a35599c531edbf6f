package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goyaml "gopkg.in/yaml.v3"

	"github.com/groland11/openvpn-check-config/pkg/checker"
	"github.com/groland11/openvpn-check-config/pkg/logger"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

func createTestReport() checker.Report {
	return checker.Report{
		File:  "/etc/openvpn/server.conf",
		Valid: false,
		Diagnostics: []checker.Diagnostic{
			{Line: 1, Keyword: "port", Severity: checker.SeverityOK, Raw: "port 1194"},
			{Line: 2, Keyword: "proto", Severity: checker.SeverityError,
				Message: "Invalid enumeration value 'ucp' for keyword 'proto'", Raw: "proto ucp"},
			{Line: 4, Keyword: "servers", Severity: checker.SeverityError,
				Message: "Unknown keyword 'servers'", Raw: "servers 10.0.0.0 255.0.0.0"},
		},
		Stats: checker.Stats{
			Lines:    3,
			Errors:   2,
			Duration: 1500 * time.Microsecond,
		},
	}
}

func TestFormatterText(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		verify func(*testing.T, string)
	}{
		{
			name:   "errors only",
			config: Config{Format: FormatText},
			verify: func(t *testing.T, out string) {
				assert.Contains(t, out, "   2 ERROR: Invalid enumeration value 'ucp' for keyword 'proto'")
				assert.Contains(t, out, "   4 ERROR: Unknown keyword 'servers'")
				assert.NotContains(t, out, "OK:")
				assert.NotContains(t, out, "Stats:")
			},
		},
		{
			name:   "with passing lines",
			config: Config{Format: FormatText, ShowOK: true},
			verify: func(t *testing.T, out string) {
				assert.Contains(t, out, "   1 OK: port 1194")
			},
		},
		{
			name:   "with stats",
			config: Config{Format: FormatText, WithStats: true},
			verify: func(t *testing.T, out string) {
				assert.Contains(t, out, "Stats: 3 line(s) with 2 error(s)")
			},
		},
		{
			name:   "with colors",
			config: Config{Format: FormatText, WithColors: true, ShowOK: true},
			verify: func(t *testing.T, out string) {
				assert.Contains(t, out, "\x1b[31m") // red for errors
				assert.Contains(t, out, "\x1b[32m") // green for passing lines
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.config.WithColors {
				old := color.NoColor
				color.NoColor = false
				defer func() { color.NoColor = old }()
			}

			f := NewFormatter(tt.config, &mockLogger{})
			out, err := f.Format([]checker.Report{createTestReport()})
			require.NoError(t, err)
			tt.verify(t, out)
		})
	}
}

func TestFormatterTextMultipleFiles(t *testing.T) {
	second := createTestReport()
	second.File = "/etc/openvpn/client.conf"

	f := NewFormatter(Config{Format: FormatText}, &mockLogger{})
	out, err := f.Format([]checker.Report{createTestReport(), second})
	require.NoError(t, err)

	assert.Contains(t, out, "/etc/openvpn/server.conf:")
	assert.Contains(t, out, "/etc/openvpn/client.conf:")
}

func TestFormatterJSON(t *testing.T) {
	f := NewFormatter(Config{Format: FormatJSON, WithStats: true}, &mockLogger{})
	out, err := f.Format([]checker.Report{createTestReport()})
	require.NoError(t, err)

	var doc struct {
		Reports []struct {
			File        string `json:"file"`
			Valid       bool   `json:"valid"`
			Diagnostics []struct {
				Line    int    `json:"line"`
				Status  string `json:"status"`
				Message string `json:"message"`
			} `json:"diagnostics"`
			Statistics *struct {
				Lines  int `json:"lines"`
				Errors int `json:"errors"`
			} `json:"statistics"`
		} `json:"reports"`
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	require.Len(t, doc.Reports, 1)
	report := doc.Reports[0]
	assert.Equal(t, "/etc/openvpn/server.conf", report.File)
	assert.False(t, report.Valid)
	assert.False(t, doc.Valid)

	// OK lines are omitted unless ShowOK is set.
	require.Len(t, report.Diagnostics, 2)
	assert.Equal(t, 2, report.Diagnostics[0].Line)
	assert.Equal(t, "ERROR", report.Diagnostics[0].Status)

	require.NotNil(t, report.Statistics)
	assert.Equal(t, 3, report.Statistics.Lines)
	assert.Equal(t, 2, report.Statistics.Errors)
}

func TestFormatterYAML(t *testing.T) {
	f := NewFormatter(Config{Format: FormatYAML, ShowOK: true}, &mockLogger{})
	out, err := f.Format([]checker.Report{createTestReport()})
	require.NoError(t, err)

	var doc struct {
		Reports []struct {
			File        string `yaml:"file"`
			Diagnostics []struct {
				Line   int    `yaml:"line"`
				Status string `yaml:"status"`
			} `yaml:"diagnostics"`
		} `yaml:"reports"`
	}
	require.NoError(t, goyaml.Unmarshal([]byte(out), &doc))

	require.Len(t, doc.Reports, 1)
	assert.Equal(t, "/etc/openvpn/server.conf", doc.Reports[0].File)
	assert.Len(t, doc.Reports[0].Diagnostics, 3)
	assert.Equal(t, "OK", doc.Reports[0].Diagnostics[0].Status)
}

func TestFormatterErrors(t *testing.T) {
	f := NewFormatter(Config{Format: Format("xml")}, &mockLogger{})
	_, err := f.Format([]checker.Report{createTestReport()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	f = NewFormatter(Config{Format: FormatText}, &mockLogger{})
	_, err = f.Format(nil)
	require.Error(t, err)
}

func TestFormatValid(t *testing.T) {
	assert.True(t, FormatText.Valid())
	assert.True(t, FormatJSON.Valid())
	assert.True(t, FormatYAML.Valid())
	assert.False(t, Format("xml").Valid())
}
