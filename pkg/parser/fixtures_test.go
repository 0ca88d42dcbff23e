package parser

import (
	"fmt"
	"strings"
)

// listPage builds a list page with a leading unrelated wikitable followed by
// the terms table holding rows.
func listPage(rows ...string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html><body>
<table class="wikitable"><tr><th>Unrelated</th></tr><tr><td>noise</td></tr></table>
<table class="wikitable sortable">
<tr><th>Animal</th><th>Young</th><th>Female</th><th>Male</th><th>Collective noun</th><th>Collateral adjective</th><th>Culinary noun</th></tr>
%s
</table>
</body></html>`, strings.Join(rows, "\n"))
}

// animalRow renders one data row with the given link and adjective cell HTML
func animalRow(title, href, adjectives string) string {
	return fmt.Sprintf(
		`<tr><td><a href="%s" title="%s">%s</a></td><td>cub</td><td>queen</td><td>tom</td><td>coalition</td><td>%s</td><td></td></tr>`,
		href, title, title, adjectives,
	)
}
