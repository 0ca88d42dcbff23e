package parser

import (
	"fmt"
	"io"
	"strings"

	errs "animalscraper/pkg/errors"

	"github.com/PuerkitoBio/goquery"
)

const (
	// WikitableClass marks styled Wikipedia tables
	WikitableClass = "wikitable"

	// TermsTableOrdinal is the position of "Terms by species or taxon" among
	// the wikitables of the list page. Positional, not semantic.
	TermsTableOrdinal = 1
)

// TableLocator picks the table of interest from a parsed page
type TableLocator func(doc *goquery.Document) (*goquery.Selection, error)

// FindTableByOrdinalAndClass returns a locator for the table at position
// ordinal (zero based) among all tables carrying class.
func FindTableByOrdinalAndClass(class string, ordinal int) TableLocator {
	return func(doc *goquery.Document) (*goquery.Selection, error) {
		tables := doc.Find("table." + class)
		if tables.Length() <= ordinal {
			return nil, errs.NewParse(fmt.Sprintf(
				"expected at least %d tables of class %q, found %d",
				ordinal+1, class, tables.Length(),
			))
		}
		return tables.Eq(ordinal), nil
	}
}

// TermsTable locates the "Terms by species or taxon" table
var TermsTable = FindTableByOrdinalAndClass(WikitableClass, TermsTableOrdinal)

// ExtractRows parses the list page and returns the rows of the terms table
// in document order.
func ExtractRows(page string) ([]*goquery.Selection, error) {
	return ExtractRowsWith(strings.NewReader(page), TermsTable)
}

// ExtractRowsWith is ExtractRows with a custom table locator
func ExtractRowsWith(r io.Reader, locate TableLocator) ([]*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errs.NewParse(fmt.Sprintf("failed to parse HTML: %v", err))
	}

	table, err := locate(doc)
	if err != nil {
		return nil, err
	}

	tr := table.Find("tr")
	rows := make([]*goquery.Selection, 0, tr.Length())
	tr.Each(func(_ int, row *goquery.Selection) {
		rows = append(rows, row)
	})
	return rows, nil
}
