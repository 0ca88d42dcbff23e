package adjectives

import (
	"io"
	"sort"
	"strings"

	"animalscraper/pkg/logger"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes the index as a table of adjective and animals, sorted by
// adjective.
func Render(w io.Writer, idx *Index) {
	keys := idx.Keys()
	sort.Strings(keys)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Collateral adjective", "Animals"})
	for _, adj := range keys {
		t.AppendRow(table.Row{adj, strings.Join(idx.Names(adj), ", ")})
	}
	t.AppendFooter(table.Row{"adjectives", idx.Len()})
	t.Render()
}

// Log writes one debug line per adjective and an info summary
func Log(log logger.Logger, idx *Index) {
	for _, adj := range idx.Keys() {
		log.DebugWithFields("Collateral adjective", map[string]interface{}{
			"adjective": adj,
			"animals":   idx.Names(adj),
		})
	}
	log.InfoWithFields("Produced collateral adjectives map", map[string]interface{}{
		"adjectives": idx.Len(),
	})
}
