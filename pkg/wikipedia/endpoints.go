package wikipedia

import "strings"

const (
	// DefaultBaseURL is the English Wikipedia origin
	DefaultBaseURL = "https://en.wikipedia.org"

	// ListOfAnimalNamesPath is the page holding the "Terms by species or taxon" table
	ListOfAnimalNamesPath = "/wiki/List_of_animal_names"

	// imageScheme is prefixed to protocol-relative image sources
	imageScheme = "http:"
)

// PageURL joins the base URL and a site-relative path such as /wiki/Cheetah
func PageURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}

// ResolveImageURL turns an infobox img src into a fetchable URL.
// Protocol-relative sources (//upload.wikimedia.org/...) get an http: scheme,
// site-relative ones are joined to baseURL and absolute URLs are kept.
func ResolveImageURL(baseURL, src string) string {
	switch {
	case strings.HasPrefix(src, "//"):
		return imageScheme + src
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return src
	case strings.HasPrefix(src, "/"):
		return PageURL(baseURL, src)
	default:
		return imageScheme + "//" + src
	}
}
