package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// infoboxSelector matches the taxonomy panel of an animal article
const infoboxSelector = "table.infobox.biota"

// LocateImage returns the src of the first image inside the biota infobox.
// A page without the infobox, or an infobox without an image, yields false.
func LocateImage(page string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", false
	}

	img := doc.Find(infoboxSelector).First().Find("img").First()
	src, ok := img.Attr("src")
	if !ok || src == "" {
		return "", false
	}
	return src, true
}
