package models

// Animal is one row of the "Terms by species or taxon" table
type Animal struct {
	// Name is the link title with parenthesised text removed
	Name string `json:"name"`
	// Href is the site-relative path of the animal's article, e.g. /wiki/Cheetah
	Href string `json:"href"`
	// CollateralAdjectives are lowercase and trimmed; empty when the table lists "?"
	CollateralAdjectives []string `json:"collateral_adjectives"`
}

// HasAdjectives reports whether the animal contributes to the adjective index
func (a Animal) HasAdjectives() bool {
	return len(a.CollateralAdjectives) > 0
}
