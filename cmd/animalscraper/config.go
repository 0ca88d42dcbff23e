package main

import (
	"fmt"
	"os"

	"animalscraper/pkg/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = ".animalscraper.yaml"

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage animalscraper configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (ANIMALSCRAPER_*, also read from .env)
  - Configuration file
  - Default values (lowest priority)`,
}

// initCmd represents the config init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with the default values",
	Long: `Create a configuration file holding every option with its default value.

The file is created as '.animalscraper.yaml' in the current directory unless
a different path is given with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// showCmd represents the config show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// validateCmd represents the config validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective configuration",
	Long: `Load the configuration from all sources and check it.

This command checks:
  - YAML syntax
  - Absolute base URL and list path
  - Worker count and request timeout ranges
  - Output and log directories can be created`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(validateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := configFile
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}

	printer := newPrinter(cmd)
	printer.PrintSuccess("Configuration file created: " + configPath)
	printer.PrintInfo("Next step", "animalscraper config validate --config "+configPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, changedFlags(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	printer := newPrinter(cmd)
	printer.PrintHighlight("Current Configuration")
	fmt.Fprint(cmd.OutOrStdout(), "\n"+string(data))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	if configFile != "" {
		printer.PrintInfo("Validating configuration", configFile)
	}

	cfg, err := config.Load(configFile, changedFlags(cmd))
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := os.MkdirAll(cfg.Output.BaseDirectory, 0755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	printer.PrintSuccess("Configuration is valid")
	printer.PrintInfo("Base URL", cfg.Wikipedia.BaseURL+cfg.Wikipedia.ListPath)
	printer.PrintInfo("Output directory", cfg.Output.BaseDirectory)
	printer.PrintInfo("Concurrent downloads", fmt.Sprintf("%d", cfg.Download.ConcurrentDownloads))
	printer.PrintInfo("Request timeout", cfg.Download.RequestTimeout.String())
	printer.PrintInfo("Log level", cfg.Logging.Level)
	return nil
}
