/*
Package checker validates OpenVPN configuration files line by line against the
directive table and produces a per-line diagnostic report.

Basic usage:

	chk := checker.New(checker.Config{
		Mode: directive.ScopeAny,
	}, afero.NewOsFs(), directive.Default(), log)

	report, err := chk.CheckFile(ctx, "client.conf")
*/
package checker

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/afero"

	"github.com/groland11/openvpn-check-config/pkg/directive"
	"github.com/groland11/openvpn-check-config/pkg/lexer"
	"github.com/groland11/openvpn-check-config/pkg/logger"
)

// routeTargets are symbolic addresses accepted in route statements.
var routeTargets = map[string]bool{
	"vpn_gateway": true,
	"net_gateway": true,
	"remote_host": true,
}

// Checker validates OpenVPN configuration syntax.
type Checker interface {
	// CheckFile checks a whole configuration file and returns its report.
	// The returned error covers I/O failures only; syntax errors end up
	// in the report.
	CheckFile(ctx context.Context, path string) (Report, error)

	// CheckLine checks a single tokenized line. It returns a *CheckError
	// describing the first violation, or nil when the line is valid.
	CheckLine(line *lexer.Line) error
}

type checker struct {
	config Config
	fs     afero.Fs
	table  directive.Table
	log    logger.Logger
}

// New creates a Checker using the given filesystem and directive table.
func New(config Config, fs afero.Fs, table directive.Table, log logger.Logger) Checker {
	return &checker{
		config: config,
		fs:     fs,
		table:  table,
		log:    log,
	}
}

// CheckFile checks a configuration file line by line.
func (c *checker) CheckFile(ctx context.Context, path string) (Report, error) {
	c.log.WithFields(logger.Fields{
		"path": path,
		"mode": c.config.Mode.String(),
	}).Info("Starting configuration check")

	report := Report{
		File: path,
		Stats: Stats{
			StartTime: time.Now(),
		},
	}

	file, err := c.fs.Open(path)
	if err != nil {
		c.log.WithFields(logger.Fields{
			"error": err,
			"path":  path,
		}).Error("Failed to open configuration file")
		return report, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer file.Close()

	scanner := lexer.NewScanner(file)

	for {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		line, err := scanner.Next()
		if err != nil {
			c.log.WithFields(logger.Fields{
				"error": err,
				"path":  path,
			}).Error("Failed to read configuration file")
			return report, fmt.Errorf("failed to read configuration file: %w", err)
		}
		if line == nil {
			break
		}

		report.Stats.Lines++

		if err := c.CheckLine(line); err != nil {
			c.log.WithFields(logger.Fields{
				"path":  path,
				"line":  line.Number,
				"error": err,
			}).Debug("Line check failed")

			report.Stats.Errors++
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				Line:     line.Number,
				Keyword:  line.Tokens[0],
				Severity: SeverityError,
				Message:  err.Error(),
				Raw:      line.Raw,
			})

			if c.config.FailFast {
				break
			}
			continue
		}

		report.Diagnostics = append(report.Diagnostics, Diagnostic{
			Line:     line.Number,
			Keyword:  line.Tokens[0],
			Severity: SeverityOK,
			Raw:      line.Raw,
		})
	}

	report.Stats.EndTime = time.Now()
	report.Stats.Duration = report.Stats.EndTime.Sub(report.Stats.StartTime)
	report.Valid = report.Stats.Errors == 0

	c.log.WithFields(logger.Fields{
		"path":     path,
		"lines":    report.Stats.Lines,
		"errors":   report.Stats.Errors,
		"duration": report.Stats.Duration,
		"valid":    report.Valid,
	}).Info("Configuration check completed")

	return report, nil
}

// CheckLine validates a single configuration line.
func (c *checker) CheckLine(line *lexer.Line) error {
	words := line.Tokens
	keyword := words[0]

	spec, ok := c.table.Lookup(keyword)
	if !ok {
		return errUnknownKeyword(keyword)
	}

	if spec.Scope != directive.ScopeAny &&
		c.config.Mode != directive.ScopeAny &&
		spec.Scope != c.config.Mode {
		return errWrongMode(keyword, c.config.Mode.String())
	}

	if len(words)-1 < spec.Required {
		return errArgumentCount(keyword)
	}

	for i := 1; i < len(words); i++ {
		word := words[i]

		if len(spec.Args) == 0 {
			return errNoArguments(keyword)
		}
		if i > len(spec.Args) {
			return errOptionalArgument(keyword)
		}
		if !printable(word) {
			return errUnprintable(keyword)
		}

		switch spec.Args[i-1] {
		case directive.String:
			// A quoted string swallows the rest of the line.
			return c.checkString(keyword, line.Rest)

		case directive.Route:
			return c.checkRoute(keyword, words[1:])

		case directive.IPNet:
			if i+1 >= len(words) {
				return errMissingNetworkPart(keyword)
			}
			if err := checkNetwork(keyword, words[i], words[i+1]); err != nil {
				return err
			}

		case directive.IPSubnet:
			// Netmask already validated together with the preceding
			// network address.

		case directive.Int:
			if !numeric(word) {
				return errInvalidInt(keyword, word)
			}

		case directive.ASCII:
			if !ascii(word) {
				return errInvalidASCII(keyword, word)
			}

		case directive.Bool:
			if !boolean(word) {
				return errInvalidBool(keyword, word)
			}

		case directive.Enum:
			if err := c.checkEnum(spec, i-1, word); err != nil {
				return err
			}

		case directive.IPAddr:
			if !ipv4(word) {
				return errInvalidIP(keyword, word)
			}
		}
	}

	return nil
}

// checkString validates a quoted-string argument covering the rest of the line.
// The whole remainder must be enclosed in double quotes with no quotes inside.
func (c *checker) checkString(keyword, rest string) error {
	if !strings.HasPrefix(rest, `"`) || !strings.HasSuffix(rest, `"`) ||
		len(rest) < 3 || strings.Contains(rest[1:len(rest)-1], `"`) {
		return errStringFormat(keyword)
	}
	return nil
}

// checkRoute validates the argument list of a route statement:
// network, then optional netmask, gateway and metric.
func (c *checker) checkRoute(keyword string, args []string) error {
	if len(args) > 4 {
		return errOptionalArgument(keyword)
	}

	if !ipv4(args[0]) && !routeTargets[args[0]] {
		return errInvalidIP(keyword, args[0])
	}

	if len(args) >= 2 && !netmask(args[1]) {
		return errInvalidNetwork(keyword)
	}

	if len(args) >= 3 && !ipv4(args[2]) && !routeTargets[args[2]] {
		return errInvalidIP(keyword, args[2])
	}

	if len(args) == 4 && !numeric(args[3]) {
		return errInvalidInt(keyword, args[3])
	}

	return nil
}

// checkEnum matches a word against the anchored value patterns for its position.
func (c *checker) checkEnum(spec directive.Spec, pos int, word string) error {
	if pos >= len(spec.Values) || len(spec.Values[pos]) == 0 {
		return errNoEnumValues(spec.Name)
	}

	for _, pattern := range spec.Values[pos] {
		re, err := regexp.Compile("^" + pattern + "$")
		if err != nil {
			c.log.WithFields(logger.Fields{
				"keyword": spec.Name,
				"pattern": pattern,
				"error":   err,
			}).Warn("Skipping invalid enum pattern")
			continue
		}
		if re.MatchString(word) {
			return nil
		}
	}

	return errInvalidEnum(spec.Name, word)
}

// checkNetwork validates an IPv4 network address and its netmask.
// The netmask must be contiguous and the address must have no host bits set.
func checkNetwork(keyword, addr, mask string) error {
	ip := parseIPv4(addr)
	if ip == nil {
		return errInvalidNetwork(keyword)
	}

	maskIP := parseIPv4(mask)
	if maskIP == nil {
		return errInvalidNetwork(keyword)
	}

	ipMask := net.IPMask(maskIP)
	if _, bits := ipMask.Size(); bits == 0 {
		return errInvalidNetwork(keyword)
	}

	if !ip.Mask(ipMask).Equal(ip) {
		return errInvalidNetwork(keyword)
	}

	return nil
}

func printable(word string) bool {
	for _, r := range word {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func numeric(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func ascii(word string) bool {
	for _, r := range word {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func boolean(word string) bool {
	switch word {
	case "0", "1", "true", "false", "yes", "no":
		return true
	}
	return false
}

// parseIPv4 parses a dotted-quad IPv4 address. IPv6 notation, including
// IPv4-mapped forms like ::ffff:10.0.0.1, is rejected.
func parseIPv4(word string) net.IP {
	if strings.Contains(word, ":") {
		return nil
	}
	ip := net.ParseIP(word)
	if ip == nil {
		return nil
	}
	return ip.To4()
}

func ipv4(word string) bool {
	return parseIPv4(word) != nil
}

func netmask(word string) bool {
	maskIP := parseIPv4(word)
	if maskIP == nil {
		return false
	}
	_, bits := net.IPMask(maskIP).Size()
	return bits != 0
}
