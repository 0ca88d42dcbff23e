package parser

import (
	"strings"
	"testing"

	errs "animalscraper/pkg/errors"
	"animalscraper/pkg/logger"
	"animalscraper/pkg/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRows(t *testing.T) {
	page := listPage(
		animalRow("Cheetah", "/wiki/Cheetah", "feline"),
		animalRow("Cod", "/wiki/Cod", "gadoid<br/>gadine"),
	)

	rows, err := ExtractRows(page)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header row plus two data rows")
	assert.Equal(t, 0, rows[0].Find("td").Length())
	assert.Equal(t, "Cheetah", rows[1].Find("a").Text())
	assert.Equal(t, "Cod", rows[2].Find("a").Text())
}

func TestExtractRowsNeedsSecondWikitable(t *testing.T) {
	page := `<html><body><table class="wikitable"><tr><td>only one</td></tr></table></body></html>`

	rows, err := ExtractRows(page)
	assert.Nil(t, rows)
	require.Error(t, err)
	assert.True(t, errs.IsParse(err))
	assert.Contains(t, err.Error(), "found 1")
}

func TestFindTableByOrdinalAndClass(t *testing.T) {
	page := `<table class="a" id="t0"></table><table class="b" id="t1"></table><table class="a" id="t2"></table>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	table, err := FindTableByOrdinalAndClass("a", 1)(doc)
	require.NoError(t, err)
	id, _ := table.Attr("id")
	assert.Equal(t, "t2", id)

	_, err = FindTableByOrdinalAndClass("b", 1)(doc)
	assert.True(t, errs.IsParse(err))
}

func parseSingleRow(t *testing.T, rowHTML string) (*models.Animal, error) {
	t.Helper()
	rows, err := ExtractRows(listPage(rowHTML))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	return ParseRow(rows[1])
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want models.Animal
	}{
		{
			name: "line break separated adjectives",
			row:  animalRow("Cod", "/wiki/Cod", "gadoid<br/>gadine"),
			want: models.Animal{Name: "Cod", Href: "/wiki/Cod", CollateralAdjectives: []string{"gadoid", "gadine"}},
		},
		{
			name: "parenthesised title",
			row:  animalRow("Bear (animal)", "/wiki/Bear", "ursine"),
			want: models.Animal{Name: "Bear", Href: "/wiki/Bear", CollateralAdjectives: []string{"ursine"}},
		},
		{
			name: "citations stripped",
			row:  animalRow("Cheetah", "/wiki/Cheetah", `Feline<sup class="reference"><a href="#cite_note-1">[1]</a></sup>`),
			want: models.Animal{Name: "Cheetah", Href: "/wiki/Cheetah", CollateralAdjectives: []string{"feline"}},
		},
		{
			name: "question mark means undocumented",
			row:  animalRow("Aardvark", "/wiki/Aardvark", "?"),
			want: models.Animal{Name: "Aardvark", Href: "/wiki/Aardvark", CollateralAdjectives: []string{}},
		},
		{
			name: "question mark with citation",
			row:  animalRow("Albatross", "/wiki/Albatross", "?<sup>[2]</sup>"),
			want: models.Animal{Name: "Albatross", Href: "/wiki/Albatross", CollateralAdjectives: []string{}},
		},
		{
			name: "empty cell",
			row:  animalRow("Alpaca", "/wiki/Alpaca", ""),
			want: models.Animal{Name: "Alpaca", Href: "/wiki/Alpaca", CollateralAdjectives: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSingleRow(t, tt.row)
			require.NoError(t, err)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("ParseRow() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRowHeader(t *testing.T) {
	rows, err := ExtractRows(listPage())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	animal, err := ParseRow(rows[0])
	assert.NoError(t, err)
	assert.Nil(t, animal)
}

func TestParseRowMalformed(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"no link", `<tr><td>Cheetah</td><td></td><td></td><td></td><td></td><td>feline</td></tr>`},
		{"no title", `<tr><td><a href="/wiki/Cheetah">Cheetah</a></td><td></td><td></td><td></td><td></td><td>feline</td></tr>`},
		{"no href", `<tr><td><a title="Cheetah">Cheetah</a></td><td></td><td></td><td></td><td></td><td>feline</td></tr>`},
		{"too few cells", `<tr><td><a href="/wiki/Cheetah" title="Cheetah">Cheetah</a></td><td>cub</td></tr>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			animal, err := parseSingleRow(t, tt.row)
			assert.Nil(t, animal)
			assert.True(t, errs.Is(err, errs.ErrorTypeMalformedRow), "got %v", err)
		})
	}
}

func TestParseAnimals(t *testing.T) {
	log := logger.NewTestLogger()
	page := listPage(
		animalRow("Cheetah", "/wiki/Cheetah", "gadoid<br/>gadine"),
		`<tr><td>broken</td><td></td><td></td><td></td><td></td><td>x</td></tr>`,
		animalRow("Goose (domestic)", "/wiki/Goose", "anserine<br/>Anserous[3]"),
	)

	animals, err := New(log).ParseAnimals(page)
	require.NoError(t, err)

	want := []models.Animal{
		{Name: "Cheetah", Href: "/wiki/Cheetah", CollateralAdjectives: []string{"gadoid", "gadine"}},
		{Name: "Goose", Href: "/wiki/Goose", CollateralAdjectives: []string{"anserine", "anserous"}},
	}
	if diff := cmp.Diff(want, animals); diff != "" {
		t.Errorf("ParseAnimals() mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, log.HasMessage("Finish getting data of Cheetah"))
	assert.True(t, log.HasMessage("Finish getting data of Goose"))
	assert.Len(t, log.GetMessagesByLevel("WARN"), 1, "the broken row is skipped with a warning")
}

func TestParseAnimalsMissingTable(t *testing.T) {
	_, err := New(nil).ParseAnimals("<html><body><p>maintenance</p></body></html>")
	require.Error(t, err)
	assert.True(t, errs.IsParse(err))
}

func TestParsedAnimalsAreClean(t *testing.T) {
	page := listPage(
		animalRow("Ox (cattle)", "/wiki/Ox", " Bovine <br/>  TAURINE [4] <br/>"),
		animalRow("Dog (domestic) (pet)", "/wiki/Dog", "Canine<br/><br/>"),
	)

	animals, err := New(nil).ParseAnimals(page)
	require.NoError(t, err)
	require.Len(t, animals, 2)

	for _, a := range animals {
		assert.NotContains(t, a.Name, "(")
		assert.NotContains(t, a.Name, ")")
		for _, adj := range a.CollateralAdjectives {
			assert.NotEmpty(t, adj)
			assert.Equal(t, strings.ToLower(strings.TrimSpace(adj)), adj)
		}
	}
	assert.Equal(t, "Dog", animals[1].Name)
}
