// Package scraper runs a full scrape of the Wikipedia list of animal names.
//
// A run fetches the list page once, parses the "Terms by species or taxon"
// table into animals, folds their collateral adjectives into an index that is
// printed and logged, and finally hands every animal to the download pool
// which saves the infobox image of each animal's own page.
//
// Failure policy:
//   - the list page cannot be fetched: the run logs the failure and ends
//     with no animals and no error
//   - the list page has no terms table: the run returns the parse error
//   - anything that goes wrong for one animal stays with that animal
//
// Usage:
//
//	client := wikipedia.NewClient(cfg.Wikipedia, cfg.Download.RequestTimeout, log)
//	s := scraper.New(cfg, client, log)
//	summary, err := s.Run(ctx, ui.NewPrinter(os.Stdout, false))
package scraper
