package parser

import (
	"fmt"
	"strings"

	errs "animalscraper/pkg/errors"
	"animalscraper/pkg/logger"
	"animalscraper/pkg/models"
)

// Parser turns the list page into animals, logging one line per animal
type Parser struct {
	locate TableLocator
	logger logger.Logger
}

// New creates a parser for the terms table of the list page
func New(log logger.Logger) *Parser {
	return NewWithLocator(TermsTable, log)
}

// NewWithLocator creates a parser that finds its table with locate
func NewWithLocator(locate TableLocator, log logger.Logger) *Parser {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Parser{
		locate: locate,
		logger: logger.ForComponent(log, "parser"),
	}
}

// ParseAnimals extracts every animal of the table in row order. A missing
// table is a parse error; individual malformed rows are logged and skipped.
func (p *Parser) ParseAnimals(page string) ([]models.Animal, error) {
	p.logger.Info("Parsing table Terms by species or taxon")

	rows, err := ExtractRowsWith(strings.NewReader(page), p.locate)
	if err != nil {
		return nil, fmt.Errorf("list page does not have the expected layout: %w", err)
	}

	var animals []models.Animal
	skipped := 0
	for i, row := range rows {
		animal, err := ParseRow(row)
		if err != nil {
			if !errs.Is(err, errs.ErrorTypeMalformedRow) {
				return nil, err
			}
			skipped++
			p.logger.WithError(err).WarnWithFields("Skipping malformed row", map[string]interface{}{
				"row": i,
			})
			continue
		}
		if animal == nil {
			continue
		}

		animals = append(animals, *animal)
		logger.ForAnimal(p.logger, animal.Name).Info(fmt.Sprintf("Finish getting data of %s", animal.Name))
	}

	p.logger.InfoWithFields("Parsed terms table", map[string]interface{}{
		"rows":    len(rows),
		"animals": len(animals),
		"skipped": skipped,
	})
	return animals, nil
}
