package main

import (
	"fmt"

	"animalscraper/pkg/scraper"
	"animalscraper/pkg/wikipedia"

	"github.com/spf13/cobra"
)

// scrapeCmd is the explicit form of the root command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Print the adjectives report and download every animal image",
	Long: `Fetch the List of animal names once, print the collateral adjectives report,
then download the infobox image of every animal concurrently.

Failures of single animals are logged and never change the exit status. A list
page without the expected table ends the run with a non-zero exit status.`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, log, printer, err := setup(cmd)
	if err != nil {
		return err
	}

	printer.PrintLogo()
	log.InfoWithFields("animalscraper starting", map[string]interface{}{
		"base_url": cfg.Wikipedia.BaseURL,
		"output":   cfg.Output.BaseDirectory,
		"workers":  cfg.Download.ConcurrentDownloads,
	})

	client := wikipedia.NewClient(cfg.Wikipedia, cfg.Download.RequestTimeout, log)
	s := scraper.New(cfg, client, log)

	if _, err := s.Run(cmd.Context(), printer); err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	printer.PrintSuccess("\n[SCRAPE COMPLETED]")
	return nil
}
