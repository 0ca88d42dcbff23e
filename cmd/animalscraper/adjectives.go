package main

import (
	"fmt"

	"animalscraper/pkg/adjectives"
	"animalscraper/pkg/scraper"
	"animalscraper/pkg/wikipedia"

	"github.com/spf13/cobra"
)

// adjectivesCmd prints the report without downloading images
var adjectivesCmd = &cobra.Command{
	Use:   "adjectives",
	Short: "Print the collateral adjectives report only",
	Long: `Fetch and parse the List of animal names and print every collateral adjective
with the animals sharing it. No images are downloaded.`,
	Args: cobra.NoArgs,
	RunE: runAdjectives,
}

func init() {
	rootCmd.AddCommand(adjectivesCmd)
}

func runAdjectives(cmd *cobra.Command, args []string) error {
	cfg, log, printer, err := setup(cmd)
	if err != nil {
		return err
	}

	client := wikipedia.NewClient(cfg.Wikipedia, cfg.Download.RequestTimeout, log)
	s := scraper.New(cfg, client, log)

	animals, idx, err := s.ProduceCollateralAdjectives(cmd.Context())
	if err != nil {
		return fmt.Errorf("adjectives failed: %w", err)
	}
	if len(animals) == 0 {
		printer.PrintWarning("No animals found")
		return nil
	}

	// the report is this command's output, so quiet does not hide it
	adjectives.Render(cmd.OutOrStdout(), idx)
	printer.PrintInfo("Animals", fmt.Sprintf("%d", len(animals)))
	return nil
}
