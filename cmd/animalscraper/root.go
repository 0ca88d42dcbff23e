package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"animalscraper/pkg/config"
	"animalscraper/pkg/logger"
	"animalscraper/pkg/ui"

	"github.com/spf13/cobra"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	logFile    string
	baseURL    string
	outputDir  string
	concurrent int
	timeout    time.Duration
	quiet      bool
)

// rootCmd runs a full scrape when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "animalscraper",
	Short: "Index Wikipedia's animal names by collateral adjective and save their images",
	Long: `animalscraper reads the "Terms by species or taxon" table of Wikipedia's
List of animal names, prints every collateral adjective together with the
animals it describes, and downloads the infobox image of each animal.

Images already present in the output directory are not downloaded again.`,
	Example: `  # Scrape with defaults, images land in tmp/images
  animalscraper

  # Only print the adjectives report
  animalscraper adjectives

  # More workers and a shorter request timeout
  animalscraper --concurrent 16 --timeout 20s`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScrape,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.NewPrinter(os.Stderr, false).PrintError("Error", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (default is .animalscraper.yaml or $XDG_CONFIG_HOME/animalscraper/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error, disabled)")
	flags.StringVar(&logFile, "log-file", "logger.log", "log file written next to stdout, empty to disable")
	flags.StringVar(&baseURL, "base-url", "", "Wikipedia origin (default https://en.wikipedia.org)")
	flags.StringVarP(&outputDir, "output", "o", "", "output directory for images (default tmp/images)")
	flags.IntVar(&concurrent, "concurrent", 8, "number of concurrent downloads")
	flags.DurationVar(&timeout, "timeout", 60*time.Second, "timeout of every single request")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors")

	rootCmd.SetVersionTemplate(`animalscraper {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// changedFlags collects the persistent flags set on the command line so they
// override file and environment configuration.
func changedFlags(cmd *cobra.Command) map[string]interface{} {
	flags := make(map[string]interface{})
	set := cmd.Flags()

	if set.Changed("output") {
		flags["output"] = outputDir
	}
	if set.Changed("concurrent") {
		flags["concurrent"] = concurrent
	}
	if set.Changed("timeout") {
		flags["timeout"] = timeout
	}
	if set.Changed("base-url") {
		flags["base-url"] = baseURL
	}
	if set.Changed("log-level") {
		flags["log-level"] = logLevel
	} else if quiet {
		flags["log-level"] = "error"
	}
	if set.Changed("log-file") {
		flags["log-file"] = logFile
	}
	return flags
}

func newPrinter(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), quiet)
}

// setup loads the configuration and builds the logger and printer shared
// by a command.
func setup(cmd *cobra.Command) (*config.Config, logger.Logger, *ui.Printer, error) {
	printer := newPrinter(cmd)

	cfg, err := config.Load(configFile, changedFlags(cmd))
	if err != nil {
		return nil, nil, printer, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.NewWithWriter(&cfg.Logging, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, printer, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log = log.WithField("version", version)

	return cfg, log, printer, nil
}
