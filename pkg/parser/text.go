package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Separator marks the boundary between sub-entries of a cell when its
// text is flattened.
const Separator = "<br/>"

// questionMark in the adjective column means "undocumented"
const questionMark = "?"

var (
	insideRoundBrackets  = regexp.MustCompile(`\(.*?\)`)
	insideSquareBrackets = regexp.MustCompile(`\[.*?\]`)
)

// StripParenthesized removes every "(...)" group and trims the result
func StripParenthesized(s string) string {
	return strings.TrimSpace(insideRoundBrackets.ReplaceAllString(s, ""))
}

// StripCitations removes every bracketed citation marker such as "[12]"
func StripCitations(s string) string {
	return insideSquareBrackets.ReplaceAllString(s, "")
}

// CellText flattens a cell to plain text, joining its text nodes with sep
func CellText(cell *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range cell.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, sep)
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}

// SplitAdjectives turns flattened cell text into collateral adjectives.
// Citations are dropped first; a lone "?" yields an empty slice.
func SplitAdjectives(text string) []string {
	text = StripCitations(text)
	if strings.TrimSpace(text) == questionMark {
		return []string{}
	}

	adjectives := []string{}
	for _, piece := range strings.Split(text, Separator) {
		piece = strings.ToLower(strings.TrimSpace(piece))
		if piece == "" {
			continue
		}
		adjectives = append(adjectives, piece)
	}

	// "?" followed by a citation flattens to "?<br/>"
	if len(adjectives) == 1 && adjectives[0] == questionMark {
		return []string{}
	}
	return adjectives
}
