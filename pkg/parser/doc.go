// Package parser extracts structured data from Wikipedia HTML.
//
// The list page parsing is deliberately positional: the terms table is the
// second table of class "wikitable" (see FindTableByOrdinalAndClass). Swap the
// TableLocator passed to NewWithLocator to use a different strategy without
// touching callers.
//
// Text cleanup (StripParenthesized, StripCitations, SplitAdjectives) is kept as
// pure string functions independent of goquery.
package parser
