/*
Package progress renders a single-line progress display on stderr for runs
covering several configuration files. The display is suppressed automatically
when stderr is not a terminal.
*/
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/groland11/openvpn-check-config/pkg/logger"
)

// Status carries the current state of a multi-file check.
type Status struct {
	// Current is the number of files already checked.
	Current int

	// Total is the number of files in the run.
	Total int

	// CurrentItem is the file being checked.
	CurrentItem string
}

// Config holds progress display configuration.
type Config struct {
	// NoColor disables colored output.
	NoColor bool

	// RefreshRate is the render interval. Defaults to 100ms.
	RefreshRate time.Duration

	// Writer is the output destination. Defaults to os.Stderr.
	Writer io.Writer
}

// Progress defines the interface for the progress display.
type Progress interface {
	// Start begins rendering with an initial message.
	Start(message string)

	// Update replaces the displayed status.
	Update(status Status)

	// Complete finishes rendering with a success message.
	Complete(message string)

	// Error finishes rendering with an error message.
	Error(message string)

	// Stop halts rendering and clears the line.
	Stop()
}

var spinnerFrames = []string{"|", "/", "-", "\\"}

type progress struct {
	config Config
	log    logger.Logger
	writer io.Writer

	mu       sync.Mutex
	status   Status
	message  string
	active   bool
	enabled  bool
	frame    int
	stopChan chan struct{}
	doneChan chan struct{}
}

// New creates a new progress display.
func New(config Config, log logger.Logger) Progress {
	if config.RefreshRate == 0 {
		config.RefreshRate = 100 * time.Millisecond
	}

	writer := config.Writer
	enabled := false
	if writer == nil {
		writer = os.Stderr
		enabled = term.IsTerminal(int(os.Stderr.Fd()))
	} else {
		enabled = true
	}

	return &progress{
		config:  config,
		log:     log,
		writer:  writer,
		enabled: enabled,
	}
}

func (p *progress) Start(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.active {
		return
	}

	p.log.WithFields(logger.Fields{
		"message": message,
	}).Debug("Starting progress display")

	p.message = message
	p.active = true
	p.stopChan = make(chan struct{})
	p.doneChan = make(chan struct{})

	go p.renderLoop()
}

func (p *progress) Update(status Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = status
	if p.active {
		p.render()
	}
}

func (p *progress) Complete(message string) {
	p.finish(message, false)
}

func (p *progress) Error(message string) {
	p.finish(message, true)
}

func (p *progress) Stop() {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	p.active = false
	close(p.stopChan)
	p.mu.Unlock()

	<-p.doneChan

	p.mu.Lock()
	p.clearLine()
	p.mu.Unlock()
}

func (p *progress) finish(message string, failed bool) {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	p.active = false
	close(p.stopChan)
	p.mu.Unlock()

	<-p.doneChan

	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearLine()

	if p.config.NoColor {
		fmt.Fprintln(p.writer, message)
		return
	}

	if failed {
		color.New(color.FgRed).Fprintln(p.writer, message)
	} else {
		color.New(color.FgGreen).Fprintln(p.writer, message)
	}
}

func (p *progress) renderLoop() {
	defer close(p.doneChan)

	ticker := time.NewTicker(p.config.RefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.mu.Lock()
			if p.active {
				p.frame = (p.frame + 1) % len(spinnerFrames)
				p.render()
			}
			p.mu.Unlock()
		}
	}
}

// render draws the current line. Callers must hold the mutex.
func (p *progress) render() {
	spinner := spinnerFrames[p.frame]
	if !p.config.NoColor {
		spinner = color.New(color.FgCyan).Sprint(spinner)
	}

	line := fmt.Sprintf("\r%s %s", spinner, p.message)
	if p.status.Total > 0 {
		line += fmt.Sprintf(" (%d/%d)", p.status.Current, p.status.Total)
	}
	if p.status.CurrentItem != "" {
		line += " " + p.status.CurrentItem
	}

	fmt.Fprint(p.writer, line+strings.Repeat(" ", 4))
}

// clearLine wipes the progress line. Callers must hold the mutex.
func (p *progress) clearLine() {
	if p.enabled {
		fmt.Fprint(p.writer, "\r"+strings.Repeat(" ", 79)+"\r")
	}
}
