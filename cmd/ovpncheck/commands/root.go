/*
Package commands implements the CLI command structure for the checker.
The root command checks the given configuration files; a version
subcommand prints build information.
*/
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groland11/openvpn-check-config/cmd/ovpncheck/app"
	"github.com/groland11/openvpn-check-config/internal/config"
	"github.com/groland11/openvpn-check-config/internal/version"
)

// options holds the command-line flag values and the resolved configuration.
type options struct {
	cfg *config.Config

	outputFormat string
	outputFile   string
	mode         string
	workers      int
	rateLimit    int
	failFast     bool
	noColor      bool
	noProgress   bool
	debug        bool
	verbosity    int
	showVersion  bool
}

// NewRootCommand creates the root command for the application.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ovpncheck [flags] <config>...",
		Short: "Check OpenVPN configuration files for syntax errors",
		Long: `ovpncheck validates the syntax of OpenVPN configuration files (client or
server mode) and reports errors with their line numbers. No VPN connection
is established.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Println(version.Version)
				return nil
			}
			if len(args) < 1 {
				return fmt.Errorf("requires at least one configuration file")
			}
			return runCheck(args, opts)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.debug, "debug", "d", false,
		"generate additional debug information")
	rootCmd.Flags().CountVarP(&opts.verbosity, "verbose", "v",
		"increase output verbosity (can be used multiple times)")
	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "V", false,
		"print version information")
	rootCmd.Flags().StringVarP(&opts.outputFormat, "output", "o", "text",
		"output format: text|json|yaml")
	rootCmd.Flags().StringVarP(&opts.outputFile, "file", "f", "",
		"write report to file instead of stdout")
	rootCmd.Flags().StringVarP(&opts.mode, "mode", "m", "any",
		"restrict directives to a mode: any|client|server")
	rootCmd.Flags().BoolVar(&opts.failFast, "fail-fast", false,
		"stop checking a file at its first error")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false,
		"disable colored output")
	rootCmd.Flags().BoolVar(&opts.noProgress, "no-progress", false,
		"disable progress reporting")
	rootCmd.Flags().IntVarP(&opts.workers, "workers", "w", 0,
		"number of concurrent workers for multiple files (default: number of CPUs)")
	rootCmd.Flags().IntVarP(&opts.rateLimit, "rate-limit", "r", 0,
		"rate limit in files per second (0 for unlimited)")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// initialize loads the environment configuration and applies flag overrides.
func initialize(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.outputFormat
	}
	if flags.Changed("file") {
		cfg.OutputFile = opts.outputFile
	}
	if flags.Changed("mode") {
		cfg.Mode = opts.mode
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = opts.rateLimit
	}
	if flags.Changed("fail-fast") {
		cfg.FailFast = opts.failFast
	}
	if opts.noColor {
		cfg.NoColor = true
	}
	if opts.noProgress {
		cfg.NoProgress = true
	}
	if opts.debug {
		cfg.Debug = true
	}
	if opts.verbosity > 0 {
		cfg.Verbose = opts.verbosity
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	opts.cfg = &cfg
	return nil
}

func runCheck(paths []string, opts *options) error {
	application := app.New(opts.cfg)
	defer application.Shutdown()

	return application.Run(paths)
}
