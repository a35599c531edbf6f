/*
Package app provides the application container for the checker CLI. It wires
the logger, checker, worker pool, progress display, and output formatting, and
coordinates a check run over one or more configuration files.

Usage:

	application := app.New(cfg)
	defer application.Shutdown()

	if err := application.Run(paths); err != nil {
	    // ErrChecksFailed means syntax errors were found
	}
*/
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/afero"

	"github.com/groland11/openvpn-check-config/internal/config"
	"github.com/groland11/openvpn-check-config/pkg/checker"
	"github.com/groland11/openvpn-check-config/pkg/directive"
	"github.com/groland11/openvpn-check-config/pkg/logger"
	"github.com/groland11/openvpn-check-config/pkg/output"
	"github.com/groland11/openvpn-check-config/pkg/progress"
	"github.com/groland11/openvpn-check-config/pkg/worker"
)

// ErrChecksFailed is returned by Run when at least one configuration file
// contains syntax errors. The diagnostics have already been written.
var ErrChecksFailed = errors.New("configuration check failed")

// App represents the main application container.
type App struct {
	config *config.Config
	log    logger.Logger
	fs     afero.Fs

	checker   checker.Checker
	formatter output.Formatter
	progress  progress.Progress

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

// fileResult pairs a report with the I/O error that prevented it, if any.
type fileResult struct {
	report checker.Report
	err    error
}

// New creates a new application instance.
func New(cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		config: cfg,
		fs:     afero.NewOsFs(),
		ctx:    ctx,
		cancel: cancel,
	}

	app.initLogger()
	app.initComponents()
	app.setupSignalHandling()

	app.log.WithFields(logger.Fields{
		"mode":    cfg.Mode,
		"output":  cfg.Output,
		"workers": cfg.Workers,
	}).Debug("Application initialized")

	return app
}

// Run checks the given configuration files and writes the report.
func (a *App) Run(paths []string) error {
	a.log.WithFields(logger.Fields{
		"files":  len(paths),
		"mode":   a.config.Mode,
		"output": a.config.Output,
	}).Info("Starting configuration check")

	ctx, cancel := context.WithTimeout(a.ctx, 10*time.Minute)
	defer cancel()

	results, err := a.checkAll(ctx, paths)
	if err != nil {
		return err
	}

	reports := make([]checker.Report, 0, len(results))
	var ioErrs []error
	for _, result := range results {
		if result.err != nil {
			ioErrs = append(ioErrs, result.err)
			continue
		}
		reports = append(reports, result.report)
	}

	if len(reports) > 0 {
		formatted, err := a.formatter.Format(reports)
		if err != nil {
			return fmt.Errorf("output formatting failed: %w", err)
		}

		if err := a.writeOutput(formatted, a.config.OutputFile); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	errorCount := 0
	for _, report := range reports {
		errorCount += report.Stats.Errors
	}

	a.log.WithFields(logger.Fields{
		"files":    len(paths),
		"errors":   errorCount,
		"ioErrors": len(ioErrs),
	}).Info("Configuration check completed")

	if len(ioErrs) > 0 {
		return ioErrs[0]
	}
	if errorCount > 0 {
		return ErrChecksFailed
	}

	return nil
}

// checkAll runs the checker over all paths, concurrently when there is more
// than one file. Results are returned in argument order.
func (a *App) checkAll(ctx context.Context, paths []string) ([]fileResult, error) {
	if len(paths) == 1 {
		report, err := a.checkOne(ctx, paths[0])
		return []fileResult{{report: report, err: err}}, nil
	}

	pool, err := worker.NewPool(worker.Config{
		Workers:   a.config.Workers,
		RateLimit: a.config.RateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	if err := pool.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start worker pool: %w", err)
	}
	defer func() {
		if err := pool.Stop(); err != nil {
			a.log.WithFields(logger.Fields{
				"error": err,
			}).Warn("Error stopping worker pool")
		}
	}()

	a.progress.Start("Checking configurations")
	defer a.progress.Stop()

	var done atomic.Int32
	total := len(paths)

	for i, path := range paths {
		id, p := i, path
		err := pool.Submit(worker.Task{
			ID: id,
			Execute: func(ctx context.Context) (worker.Result, error) {
				report, err := a.checkOne(ctx, p)

				a.progress.Update(progress.Status{
					Current:     int(done.Add(1)),
					Total:       total,
					CurrentItem: p,
				})

				return worker.Result{
					ID:   id,
					Data: fileResult{report: report, err: err},
				}, nil
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to submit check task: %w", err)
		}
	}

	poolResults, err := pool.Wait()
	if err != nil {
		return nil, fmt.Errorf("error waiting for workers: %w", err)
	}

	results := make([]fileResult, 0, len(poolResults))
	for _, poolResult := range poolResults {
		results = append(results, poolResult.Data.(fileResult))
	}

	return results, nil
}

// checkOne checks a single configuration file, logging I/O failures.
func (a *App) checkOne(ctx context.Context, path string) (checker.Report, error) {
	report, err := a.checker.CheckFile(ctx, path)
	if err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"path":  path,
		}).Error("Failed to check configuration file")
	}
	return report, err
}

// Shutdown performs a graceful shutdown of the application.
func (a *App) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancel()
	a.progress.Stop()

	a.log.Debug("Shutdown complete")
}

// initLogger initializes the application logger.
func (a *App) initLogger() {
	verbosity := a.config.Verbose
	if a.config.Debug && verbosity < 1 {
		verbosity = 1
	}

	a.log = logger.NewLogger(logger.Config{
		Verbosity: verbosity,
	})
}

// initComponents initializes all application components.
func (a *App) initComponents() {
	a.checker = checker.New(checker.Config{
		Mode:     directive.ParseScope(a.config.Mode),
		FailFast: a.config.FailFast,
	}, a.fs, directive.Default(), a.log)

	a.formatter = output.NewFormatter(output.Config{
		Format:     output.Format(a.config.Output),
		WithStats:  a.config.Verbose > 0,
		WithColors: !a.config.NoColor && a.config.OutputFile == "",
		ShowOK:     a.config.Debug,
	}, a.log)

	if a.config.NoProgress {
		a.progress = noProgress{}
	} else {
		a.progress = progress.New(progress.Config{
			NoColor:     a.config.NoColor,
			RefreshRate: 100 * time.Millisecond,
		}, a.log)
	}
}

// writeOutput writes the formatted report to the given destination.
func (a *App) writeOutput(content string, outputPath string) error {
	if outputPath == "" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}

	if err := afero.WriteFile(a.fs, outputPath, []byte(content), 0644); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"path":  outputPath,
		}).Error("Failed to write report file")
		return err
	}

	a.log.WithFields(logger.Fields{
		"path": outputPath,
	}).Info("Report written")
	return nil
}

// noProgress is a progress display that renders nothing.
type noProgress struct{}

func (noProgress) Start(string)           {}
func (noProgress) Update(progress.Status) {}
func (noProgress) Complete(string)        {}
func (noProgress) Error(string)           {}
func (noProgress) Stop()                  {}
