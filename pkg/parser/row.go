package parser

import (
	"fmt"

	errs "animalscraper/pkg/errors"
	"animalscraper/pkg/models"

	"github.com/PuerkitoBio/goquery"
)

const (
	// nameCell holds the animal link
	nameCell = 0
	// adjectiveCell holds the collateral adjectives
	adjectiveCell = 5
)

// ParseRow turns a table row into an Animal. Rows without data cells
// (headers) return nil, nil.
func ParseRow(row *goquery.Selection) (*models.Animal, error) {
	cells := row.Find("td")
	if cells.Length() == 0 {
		return nil, nil
	}

	link := cells.Eq(nameCell).Find("a").First()
	if link.Length() == 0 {
		return nil, errs.NewMalformedRow("first cell has no link")
	}
	title, ok := link.Attr("title")
	if !ok {
		return nil, errs.NewMalformedRow("animal link has no title")
	}
	href, ok := link.Attr("href")
	if !ok {
		return nil, errs.NewMalformedRow(fmt.Sprintf("link %q has no href", title))
	}

	if cells.Length() <= adjectiveCell {
		return nil, errs.NewMalformedRow(fmt.Sprintf(
			"row for %q has %d cells, collateral adjectives are in cell %d",
			title, cells.Length(), adjectiveCell,
		))
	}

	return &models.Animal{
		Name:                 StripParenthesized(title),
		Href:                 href,
		CollateralAdjectives: SplitAdjectives(CellText(cells.Eq(adjectiveCell), Separator)),
	}, nil
}
